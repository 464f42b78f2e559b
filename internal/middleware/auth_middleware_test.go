package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HoseaMuriira/iruma-portal/internal/app/models"
	"github.com/HoseaMuriira/iruma-portal/internal/pkg/apperrors"
)

type stubSessionReader struct {
	sessions map[string]*models.Session
}

func (s *stubSessionReader) Get(_ context.Context, token string) (*models.Session, error) {
	session, ok := s.sessions[token]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	return session, nil
}

func newTestRouter(mw *AuthMiddleware, required models.RoleType) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	group := router.Group("", mw.SessionAuth())
	if required != "" {
		group.Use(mw.RoleRequired(required))
	}
	group.GET("/ping", func(c *gin.Context) {
		session, ok := SessionFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "email": session.Email})
	})
	return router
}

func demoSession(role models.RoleType) *models.Session {
	return &models.Session{
		Token:     "tok-1",
		UserID:    7,
		FullName:  "Jane Student",
		Email:     "student@iruma.test",
		Role:      role,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestSessionAuth_MissingCookie(t *testing.T) {
	mw := NewAuthMiddleware(&stubSessionReader{}, "portal_session")
	router := newTestRouter(mw, "")

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSessionAuth_UnknownToken(t *testing.T) {
	mw := NewAuthMiddleware(&stubSessionReader{sessions: map[string]*models.Session{}}, "portal_session")
	router := newTestRouter(mw, "")

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.AddCookie(&http.Cookie{Name: "portal_session", Value: "nope"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSessionAuth_ValidSession(t *testing.T) {
	reader := &stubSessionReader{sessions: map[string]*models.Session{
		"tok-1": demoSession(models.RoleStudent),
	}}
	mw := NewAuthMiddleware(reader, "portal_session")
	router := newTestRouter(mw, "")

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.AddCookie(&http.Cookie{Name: "portal_session", Value: "tok-1"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRoleRequired(t *testing.T) {
	cases := []struct {
		name     string
		role     models.RoleType
		required models.RoleType
		want     int
	}{
		{"teacher allowed on teacher route", models.RoleTeacher, models.RoleTeacher, http.StatusOK},
		{"admin allowed on teacher route", models.RoleAdmin, models.RoleTeacher, http.StatusOK},
		{"student forbidden on teacher route", models.RoleStudent, models.RoleTeacher, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reader := &stubSessionReader{sessions: map[string]*models.Session{
				"tok-1": demoSession(tc.role),
			}}
			mw := NewAuthMiddleware(reader, "portal_session")
			router := newTestRouter(mw, tc.required)

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.AddCookie(&http.Cookie{Name: "portal_session", Value: "tok-1"})
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}
