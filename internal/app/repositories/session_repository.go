package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/HoseaMuriira/iruma-portal/internal/app/models"
	"github.com/HoseaMuriira/iruma-portal/internal/pkg/apperrors"
)

// SessionRepository persists server-side session records keyed by the
// opaque cookie token.
type SessionRepository struct {
	db DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db DB) *SessionRepository {
	return &SessionRepository{
		db: db,
	}
}

// Create inserts a session record
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (token, user_id, fullname, email, role, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		session.Token,
		session.UserID,
		session.FullName,
		session.Email,
		session.Role,
		session.ExpiresAt,
	).Scan(&session.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating session: %w", err)
	}

	return nil
}

// Get retrieves a session by token. Expired rows are deleted on sight and
// reported as apperrors.ErrSessionExpired.
func (r *SessionRepository) Get(ctx context.Context, token string) (*models.Session, error) {
	query := `
		SELECT token, user_id, fullname, email, role, created_at, expires_at
		FROM sessions
		WHERE token = $1
	`

	var session models.Session
	err := r.db.QueryRow(ctx, query, token).Scan(
		&session.Token,
		&session.UserID,
		&session.FullName,
		&session.Email,
		&session.Role,
		&session.CreatedAt,
		&session.ExpiresAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("error retrieving session: %w", err)
	}

	if session.Expired(time.Now()) {
		if err := r.Delete(ctx, token); err != nil {
			return nil, err
		}
		return nil, apperrors.ErrSessionExpired
	}

	return &session, nil
}

// Delete removes a session by token. Deleting an unknown token is not an
// error; logout is idempotent.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

// DeleteExpired removes all sessions past their expiry and returns how many
// rows went away.
func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at < now()`)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
