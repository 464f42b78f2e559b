package repositories

import (
	"context"
	"fmt"

	"github.com/HoseaMuriira/iruma-portal/internal/app/models"
	"github.com/HoseaMuriira/iruma-portal/internal/pkg/helpers"
)

// IntakeRepository handles the append-only intake tables (applications and
// contacts). Neither table is read back anywhere in the portal.
type IntakeRepository struct {
	db DB
}

// NewIntakeRepository creates a new intake repository
func NewIntakeRepository(db DB) *IntakeRepository {
	return &IntakeRepository{
		db: db,
	}
}

// CreateApplication appends an admissions application with a server timestamp
func (r *IntakeRepository) CreateApplication(ctx context.Context, app *models.Application) error {
	query := `
		INSERT INTO applications (fullname, email, kcpe, notes, created_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		helpers.GetContentNullString(app.FullName),
		helpers.GetContentNullString(app.Email),
		helpers.GetContentNullString(app.KCPE),
		helpers.GetContentNullString(app.Notes),
	).Scan(&app.ID, &app.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// CreateContact appends a contact message with a server timestamp
func (r *IntakeRepository) CreateContact(ctx context.Context, contact *models.Contact) error {
	query := `
		INSERT INTO contacts (name, email, message, created_at)
		VALUES ($1, $2, $3, now())
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		helpers.GetContentNullString(contact.Name),
		helpers.GetContentNullString(contact.Email),
		helpers.GetContentNullString(contact.Message),
	).Scan(&contact.ID, &contact.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating contact: %w", err)
	}

	return nil
}
