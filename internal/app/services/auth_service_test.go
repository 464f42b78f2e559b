package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/HoseaMuriira/iruma-portal/internal/app/models"
	"github.com/HoseaMuriira/iruma-portal/internal/app/models/dto"
	"github.com/HoseaMuriira/iruma-portal/internal/pkg/apperrors"
	"github.com/HoseaMuriira/iruma-portal/internal/pkg/auth"
)

// fakeUserStore keeps users in memory keyed by email.
type fakeUserStore struct {
	users  map[string]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User), nextID: 1}
}

func (f *fakeUserStore) add(fullName, email, password string, role models.RoleType) *models.User {
	hash, err := auth.HashPassword(password)
	if err != nil {
		panic(err)
	}
	user := &models.User{
		ID:           f.nextID,
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	f.nextID++
	f.users[email] = user
	return user
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *models.User) (int64, error) {
	if _, exists := f.users[user.Email]; exists {
		return 0, apperrors.ErrEmailAlreadyExists
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.Email] = user
	return user.ID, nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// fakeSessionStore keeps sessions in memory keyed by token.
type fakeSessionStore struct {
	sessions map[string]*models.Session
	deleted  []string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*models.Session)}
}

func (f *fakeSessionStore) Create(_ context.Context, session *models.Session) error {
	f.sessions[session.Token] = session
	return nil
}

func (f *fakeSessionStore) Get(_ context.Context, token string) (*models.Session, error) {
	session, ok := f.sessions[token]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	return session, nil
}

func (f *fakeSessionStore) Delete(_ context.Context, token string) error {
	delete(f.sessions, token)
	f.deleted = append(f.deleted, token)
	return nil
}

func newAuthServiceForTest() (AuthService, *fakeUserStore, *fakeSessionStore) {
	users := newFakeUserStore()
	sessions := newFakeSessionStore()
	svc := NewAuthService(users, sessions, 2*time.Hour, zerolog.Nop())
	return svc, users, sessions
}

func TestLogin_UnknownEmailAndWrongPasswordFailIdentically(t *testing.T) {
	svc, users, _ := newAuthServiceForTest()
	users.add("Jane Student", "student@iruma.test", "Student123!", models.RoleStudent)

	_, _, unknownErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@iruma.test",
		Password: "Student123!",
	})
	_, _, wrongErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "student@iruma.test",
		Password: "not-the-password",
	})

	if !errors.Is(unknownErr, apperrors.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, apperrors.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("failures must be indistinguishable: %q vs %q", unknownErr, wrongErr)
	}
}

func TestLogin_EstablishesSessionSnapshot(t *testing.T) {
	svc, users, sessions := newAuthServiceForTest()
	seeded := users.add("Miss Njoki", "teacher@iruma.test", "Teacher123!", models.RoleTeacher)

	user, token, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "teacher@iruma.test",
		Password: "Teacher123!",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}
	if user.ID != seeded.ID || user.Role != models.RoleTeacher {
		t.Fatalf("unexpected public user: %+v", user)
	}

	session, ok := sessions.sessions[token]
	if !ok {
		t.Fatal("session was not persisted")
	}
	if session.UserID != seeded.ID || session.FullName != "Miss Njoki" ||
		session.Email != "teacher@iruma.test" || session.Role != models.RoleTeacher {
		t.Fatalf("session snapshot mismatch: %+v", session)
	}
	if remaining := time.Until(session.ExpiresAt); remaining < time.Hour || remaining > 3*time.Hour {
		t.Fatalf("expiry not around the configured TTL: %v", remaining)
	}
}

func TestRegister_CreatesUserAndSession(t *testing.T) {
	svc, users, sessions := newAuthServiceForTest()

	user, token, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "New Student",
		Email:    "new@iruma.test",
		Password: "Secret123!",
		Role:     models.RoleStudent,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == 0 || token == "" {
		t.Fatalf("expected a stored user and a token, got id=%d token=%q", user.ID, token)
	}

	stored := users.users["new@iruma.test"]
	if stored == nil {
		t.Fatal("user was not persisted")
	}
	if stored.PasswordHash == "Secret123!" || stored.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}
	if _, ok := sessions.sessions[token]; !ok {
		t.Fatal("registration must establish a session")
	}
}

func TestRegister_InvalidRole(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	_, _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Nope",
		Email:    "nope@iruma.test",
		Password: "Secret123!",
		Role:     "janitor",
	})
	if !errors.Is(err, apperrors.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	_, _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "   ",
		Email:    "blank@iruma.test",
		Password: "Secret123!",
		Role:     models.RoleStudent,
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, users, _ := newAuthServiceForTest()
	users.add("Jane Student", "student@iruma.test", "Student123!", models.RoleStudent)

	_, _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Jane Again",
		Email:    "student@iruma.test",
		Password: "Other123!",
		Role:     models.RoleStudent,
	})
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestLogout_DeletesSession(t *testing.T) {
	svc, users, sessions := newAuthServiceForTest()
	users.add("Jane Student", "student@iruma.test", "Student123!", models.RoleStudent)

	_, token, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "student@iruma.test",
		Password: "Student123!",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := sessions.sessions[token]; ok {
		t.Fatal("session should be gone after logout")
	}
}

func TestLogout_EmptyToken(t *testing.T) {
	svc, _, sessions := newAuthServiceForTest()

	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions.deleted) != 0 {
		t.Fatalf("no delete should be issued for an empty token, got %v", sessions.deleted)
	}
}

func TestCurrentUser_EmptyToken(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	_, err := svc.CurrentUser(context.Background(), "")
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
