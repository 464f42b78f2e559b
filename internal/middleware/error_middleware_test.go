package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/HoseaMuriira/iruma-portal/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperrors.NewValidationError("Missing fields"), http.StatusBadRequest},
		{"invalid role", apperrors.ErrInvalidRole, http.StatusBadRequest},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"no session", apperrors.ErrSessionNotFound, http.StatusUnauthorized},
		{"expired session", apperrors.ErrSessionExpired, http.StatusUnauthorized},
		{"forbidden", apperrors.NewForbiddenError("Forbidden"), http.StatusForbidden},
		{"missing student", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"anything else", errors.New("pool exhausted"), http.StatusInternalServerError},
	}

	gin.SetMode(gin.TestMode)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			HandleAPIError(c, tc.err)

			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestHandleAPIError_HidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	HandleAPIError(c, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Server error") {
		t.Fatalf("body %q missing generic message", body)
	}
	if strings.Contains(body, "10.0.0.5") {
		t.Fatalf("internal detail leaked: %s", body)
	}
}
