package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/HoseaMuriira/iruma-portal/internal/app/models"
)

// ResultRepository handles database operations for exam results
type ResultRepository struct {
	db DB
}

// NewResultRepository creates a new result repository
func NewResultRepository(db DB) *ResultRepository {
	return &ResultRepository{
		db: db,
	}
}

// Create creates a new result row
func (r *ResultRepository) Create(ctx context.Context, result *models.Result) error {
	query := `
		INSERT INTO results (student_id, subject, score, term, year)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		result.StudentID, result.Subject, result.Score, result.Term, result.Year).Scan(&result.ID)
	if err != nil {
		return fmt.Errorf("error creating result: %w", err)
	}

	return nil
}

// ListByStudent retrieves all results for a student
func (r *ResultRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Result, error) {
	query, args, err := squirrel.Select("id", "subject", "score", "term", "year").
		From("results").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building results query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.Result
	for rows.Next() {
		var result models.Result
		if err := rows.Scan(
			&result.ID,
			&result.Subject,
			&result.Score,
			&result.Term,
			&result.Year,
		); err != nil {
			return nil, err
		}
		results = append(results, &result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
