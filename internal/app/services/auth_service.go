package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/HoseaMuriira/iruma-portal/internal/app/models"
	"github.com/HoseaMuriira/iruma-portal/internal/app/models/dto"
	"github.com/HoseaMuriira/iruma-portal/internal/pkg/apperrors"
	"github.com/HoseaMuriira/iruma-portal/internal/pkg/auth"
)

// AuthService handles registration, login and session lifecycle.
type AuthService interface {
	// Register creates a user and establishes a session. The returned token
	// is the opaque value the caller sets as the session cookie.
	Register(ctx context.Context, req *dto.RegisterRequest) (models.PublicUser, string, error)
	// Login verifies credentials and establishes a session. Unknown emails
	// and wrong passwords fail identically.
	Login(ctx context.Context, req *dto.LoginRequest) (models.PublicUser, string, error)
	// Logout destroys the session; unknown or empty tokens are not an error.
	Logout(ctx context.Context, token string) error
	// CurrentUser resolves a token to its session snapshot.
	CurrentUser(ctx context.Context, token string) (*models.Session, error)
}

type authService struct {
	userRepo    UserStore
	sessionRepo SessionStore
	sessionTTL  time.Duration
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo UserStore,
	sessionRepo SessionStore,
	sessionTTL time.Duration,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (models.PublicUser, string, error) {
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return models.PublicUser{}, "", apperrors.NewValidationError("Missing fields")
	}

	if !req.Role.Valid() {
		return models.PublicUser{}, "", fmt.Errorf("%w: %q", apperrors.ErrInvalidRole, req.Role)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return models.PublicUser{}, "", fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}

	// The unique index on users.email is the conflict authority; no
	// pre-check, so double submits race safely.
	if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
		return models.PublicUser{}, "", err
	}

	token, err := s.establishSession(ctx, user)
	if err != nil {
		return models.PublicUser{}, "", err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")
	return user.Public(), token, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (models.PublicUser, string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		// Same failure for unknown email and bad password; no enumeration
		return models.PublicUser{}, "", apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return models.PublicUser{}, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.establishSession(ctx, user)
	if err != nil {
		return models.PublicUser{}, "", err
	}

	s.logger.Debug().Int64("userID", user.ID).Msg("User logged in")
	return user.Public(), token, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessionRepo.Delete(ctx, token)
}

func (s *authService) CurrentUser(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, apperrors.ErrUnauthorized
	}
	return s.sessionRepo.Get(ctx, token)
}

// establishSession writes a session record snapshotting the user's public
// fields. The snapshot stays frozen until the next login.
func (s *authService) establishSession(ctx context.Context, user *models.User) (string, error) {
	session := &models.Session{
		Token:     auth.NewSessionToken(),
		UserID:    user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return "", err
	}

	return session.Token, nil
}
