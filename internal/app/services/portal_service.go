package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/HoseaMuriira/iruma-portal/internal/app/models"
	"github.com/HoseaMuriira/iruma-portal/internal/app/models/dto"
	"github.com/HoseaMuriira/iruma-portal/internal/pkg/apperrors"
)

// PortalService serves the role-gated resource reads and the public intake
// writes.
type PortalService interface {
	// Profile returns the fresh user row plus the student record when one
	// exists; the student stays nil otherwise.
	Profile(ctx context.Context, userID int64) (*models.User, *models.Student, error)
	// Departments lists all departments in ascending id order.
	Departments(ctx context.Context) ([]*models.Department, error)
	// Students lists all student rows joined with the owning user identity.
	Students(ctx context.Context) ([]*models.StudentListing, error)
	// StudentResults lists a student's results. Student callers may only
	// read their own row; teachers and admins read freely.
	StudentResults(ctx context.Context, caller *models.Session, studentID int64) ([]*models.Result, error)
	// SubmitApplication appends an admissions application.
	SubmitApplication(ctx context.Context, req *dto.ApplicationRequest) error
	// SubmitContact appends a contact message.
	SubmitContact(ctx context.Context, req *dto.ContactRequest) error
}

type portalService struct {
	userRepo       UserStore
	studentRepo    StudentStore
	departmentRepo DepartmentStore
	resultRepo     ResultStore
	intakeRepo     IntakeStore
	logger         zerolog.Logger
}

// NewPortalService creates a new PortalService
func NewPortalService(
	userRepo UserStore,
	studentRepo StudentStore,
	departmentRepo DepartmentStore,
	resultRepo ResultStore,
	intakeRepo IntakeStore,
	logger zerolog.Logger,
) PortalService {
	return &portalService{
		userRepo:       userRepo,
		studentRepo:    studentRepo,
		departmentRepo: departmentRepo,
		resultRepo:     resultRepo,
		intakeRepo:     intakeRepo,
		logger:         logger,
	}
}

func (s *portalService) Profile(ctx context.Context, userID int64) (*models.User, *models.Student, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return user, nil, nil
		}
		return nil, nil, err
	}

	return user, student, nil
}

func (s *portalService) Departments(ctx context.Context) ([]*models.Department, error) {
	return s.departmentRepo.GetAll(ctx)
}

func (s *portalService) Students(ctx context.Context) ([]*models.StudentListing, error) {
	return s.studentRepo.ListWithOwners(ctx)
}

func (s *portalService) StudentResults(ctx context.Context, caller *models.Session, studentID int64) ([]*models.Result, error) {
	if caller == nil {
		return nil, apperrors.ErrUnauthorized
	}

	if caller.Role == models.RoleStudent {
		owned, err := s.studentRepo.IsOwnedBy(ctx, studentID, caller.UserID)
		if err != nil {
			return nil, err
		}
		if !owned {
			return nil, apperrors.NewForbiddenError("Forbidden")
		}
	}

	return s.resultRepo.ListByStudent(ctx, studentID)
}

func (s *portalService) SubmitApplication(ctx context.Context, req *dto.ApplicationRequest) error {
	app := &models.Application{
		FullName: req.FullName,
		Email:    req.Email,
		KCPE:     req.KCPE,
		Notes:    req.Notes,
	}

	if err := s.intakeRepo.CreateApplication(ctx, app); err != nil {
		return err
	}

	s.logger.Info().Int64("applicationID", app.ID).Msg("Admission application received")
	return nil
}

func (s *portalService) SubmitContact(ctx context.Context, req *dto.ContactRequest) error {
	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := s.intakeRepo.CreateContact(ctx, contact); err != nil {
		return err
	}

	s.logger.Info().Int64("contactID", contact.ID).Msg("Contact message received")
	return nil
}
