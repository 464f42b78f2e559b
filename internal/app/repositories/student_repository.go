package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/HoseaMuriira/iruma-portal/internal/app/models"
	"github.com/HoseaMuriira/iruma-portal/internal/pkg/apperrors"
)

// StudentRepository handles database operations for student records
type StudentRepository struct {
	db DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db DB) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create creates a new student record
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (user_id, admission_no, pathway, year)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.UserID, student.AdmissionNo, student.Pathway, student.Year).Scan(&student.ID)
	if err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByUserID retrieves the student record owned by a user, if any.
// A missing row is reported as apperrors.ErrStudentNotFound so callers can
// distinguish "no student record" from a store failure.
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	query := `
		SELECT id, user_id, admission_no, pathway, year
		FROM students
		WHERE user_id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&student.ID,
		&student.UserID,
		&student.AdmissionNo,
		&student.Pathway,
		&student.Year,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// selectListingQuery builds the students listing joined with the owning
// user's identity columns.
func (r *StudentRepository) selectListingQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"s.id", "s.admission_no", "s.pathway", "s.year",
		"u.fullname", "u.email",
	).From("students s").
		Join("users u ON u.id = s.user_id").
		OrderBy("s.id").
		PlaceholderFormat(squirrel.Dollar)
}

// ListWithOwners retrieves all student rows joined with the owning user's
// fullname and email.
func (r *StudentRepository) ListWithOwners(ctx context.Context) ([]*models.StudentListing, error) {
	query, args, err := r.selectListingQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building students query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.StudentListing
	for rows.Next() {
		var student models.StudentListing
		if err := rows.Scan(
			&student.ID,
			&student.AdmissionNo,
			&student.Pathway,
			&student.Year,
			&student.FullName,
			&student.Email,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// IsOwnedBy checks whether the student row belongs to the given user
func (r *StudentRepository) IsOwnedBy(ctx context.Context, studentID, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE id = $1 AND user_id = $2)`,
		studentID, userID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking student ownership: %w", err)
	}

	return exists, nil
}
