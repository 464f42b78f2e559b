package services

import (
	"context"

	"github.com/HoseaMuriira/iruma-portal/internal/app/models"
)

// The services depend on narrow store interfaces rather than the concrete
// repositories. The pgx-backed repositories satisfy them in production;
// tests substitute in-memory fakes.

// UserStore is the slice of the user repository the services use.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// SessionStore covers the session lifecycle driven by the auth service.
type SessionStore interface {
	Create(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
}

// StudentStore covers the student reads behind profile, listing and
// ownership checks.
type StudentStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
	ListWithOwners(ctx context.Context) ([]*models.StudentListing, error)
	IsOwnedBy(ctx context.Context, studentID, userID int64) (bool, error)
}

// DepartmentStore lists the department catalogue.
type DepartmentStore interface {
	GetAll(ctx context.Context) ([]*models.Department, error)
}

// ResultStore lists exam results per student.
type ResultStore interface {
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Result, error)
}

// IntakeStore appends the public intake submissions.
type IntakeStore interface {
	CreateApplication(ctx context.Context, app *models.Application) error
	CreateContact(ctx context.Context, contact *models.Contact) error
}
