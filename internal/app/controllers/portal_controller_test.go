package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HoseaMuriira/iruma-portal/internal/app/models"
	"github.com/HoseaMuriira/iruma-portal/internal/app/models/dto"
	"github.com/HoseaMuriira/iruma-portal/internal/middleware"
	"github.com/HoseaMuriira/iruma-portal/internal/pkg/apperrors"
)

type stubPortalService struct {
	user         *models.User
	student      *models.Student
	departments  []*models.Department
	students     []*models.StudentListing
	results      []*models.Result
	resultsErr   error
	applications []*dto.ApplicationRequest
	contacts     []*dto.ContactRequest

	resultsCaller    *models.Session
	resultsStudentID int64
}

func (s *stubPortalService) Profile(_ context.Context, _ int64) (*models.User, *models.Student, error) {
	return s.user, s.student, nil
}

func (s *stubPortalService) Departments(_ context.Context) ([]*models.Department, error) {
	return s.departments, nil
}

func (s *stubPortalService) Students(_ context.Context) ([]*models.StudentListing, error) {
	return s.students, nil
}

func (s *stubPortalService) StudentResults(_ context.Context, caller *models.Session, studentID int64) ([]*models.Result, error) {
	s.resultsCaller = caller
	s.resultsStudentID = studentID
	if s.resultsErr != nil {
		return nil, s.resultsErr
	}
	return s.results, nil
}

func (s *stubPortalService) SubmitApplication(_ context.Context, req *dto.ApplicationRequest) error {
	s.applications = append(s.applications, req)
	return nil
}

func (s *stubPortalService) SubmitContact(_ context.Context, req *dto.ContactRequest) error {
	s.contacts = append(s.contacts, req)
	return nil
}

func newPortalRouter(svc *stubPortalService, session *models.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	sessions := &stubSessions{sessions: map[string]*models.Session{}}
	if session != nil {
		sessions.sessions[session.Token] = session
	}
	mw := middleware.NewAuthMiddleware(sessions, testCookie)

	controller := NewPortalController(svc)
	router.GET("/api/departments", controller.Departments)
	authed := router.Group("/api", mw.SessionAuth())
	authed.GET("/profile", controller.Profile)
	authed.GET("/students", mw.RoleRequired(models.RoleTeacher), controller.Students)
	authed.GET("/students/:id/results", controller.StudentResults)
	return router
}

func getWithSession(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "tok-1"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func portalSession(role models.RoleType) *models.Session {
	return &models.Session{
		Token:     "tok-1",
		UserID:    7,
		FullName:  "Jane Student",
		Email:     "student@iruma.test",
		Role:      role,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestProfile_WithStudentRecord(t *testing.T) {
	svc := &stubPortalService{
		user:    &models.User{ID: 7, FullName: "Jane Student", Email: "student@iruma.test", Role: models.RoleStudent},
		student: &models.Student{ID: 3, UserID: 7, AdmissionNo: "IR/2025/01", Pathway: "STEM", Year: 2025},
	}
	router := newPortalRouter(svc, portalSession(models.RoleStudent))

	rec := getWithSession(router, "/api/profile")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "IR/2025/01") {
		t.Fatalf("student record missing from body: %s", rec.Body.String())
	}
}

func TestProfile_WithoutStudentRecord(t *testing.T) {
	svc := &stubPortalService{
		user: &models.User{ID: 7, FullName: "Miss Njoki", Email: "teacher@iruma.test", Role: models.RoleTeacher},
	}
	router := newPortalRouter(svc, portalSession(models.RoleTeacher))

	rec := getWithSession(router, "/api/profile")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"student":null`) {
		t.Fatalf("expected null student: %s", rec.Body.String())
	}
}

func TestDepartments_PublicListing(t *testing.T) {
	svc := &stubPortalService{departments: []*models.Department{
		{ID: 1, Name: "Science (STEM)", Description: "Physics, Chemistry, Biology, Mathematics, Computer Studies"},
	}}
	router := newPortalRouter(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/departments", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Science (STEM)") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestProfile_RequiresSession(t *testing.T) {
	router := newPortalRouter(&stubPortalService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestStudents_ForbiddenForStudents(t *testing.T) {
	router := newPortalRouter(&stubPortalService{}, portalSession(models.RoleStudent))

	rec := getWithSession(router, "/api/students")

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestStudents_ListedForTeachers(t *testing.T) {
	svc := &stubPortalService{students: []*models.StudentListing{
		{ID: 3, AdmissionNo: "IR/2025/01", Pathway: "STEM", Year: 2025, FullName: "Jane Student", Email: "student@iruma.test"},
	}}
	router := newPortalRouter(svc, portalSession(models.RoleTeacher))

	rec := getWithSession(router, "/api/students")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Jane Student") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestStudentResults_PassesCallerAndID(t *testing.T) {
	svc := &stubPortalService{results: []*models.Result{
		{ID: 1, Subject: "Mathematics", Score: 84, Term: "Term 1", Year: 2025},
	}}
	router := newPortalRouter(svc, portalSession(models.RoleStudent))

	rec := getWithSession(router, "/api/students/3/results")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.resultsStudentID != 3 {
		t.Fatalf("student id = %d, want 3", svc.resultsStudentID)
	}
	if svc.resultsCaller == nil || svc.resultsCaller.UserID != 7 {
		t.Fatalf("caller session not passed through: %+v", svc.resultsCaller)
	}
}

func TestStudentResults_ForeignStudentForbidden(t *testing.T) {
	svc := &stubPortalService{resultsErr: apperrors.NewForbiddenError("Forbidden")}
	router := newPortalRouter(svc, portalSession(models.RoleStudent))

	rec := getWithSession(router, "/api/students/99/results")

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestStudentResults_BadID(t *testing.T) {
	router := newPortalRouter(&stubPortalService{}, portalSession(models.RoleTeacher))

	rec := getWithSession(router, "/api/students/abc/results")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}
