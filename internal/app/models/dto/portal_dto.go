package dto

import "github.com/HoseaMuriira/iruma-portal/internal/app/models"

// Profile combines the fresh user row with the optional student record.
// Student stays null for users without one.
type Profile struct {
	User    *models.User    `json:"user"`
	Student *models.Student `json:"student"`
}

// ProfileResponse wraps a profile lookup
type ProfileResponse struct {
	OK      bool    `json:"ok"`
	Profile Profile `json:"profile"`
}

// DepartmentsResponse wraps the departments listing
type DepartmentsResponse struct {
	OK          bool                 `json:"ok"`
	Departments []*models.Department `json:"departments"`
}

// StudentsResponse wraps the teacher-facing students listing
type StudentsResponse struct {
	OK       bool                     `json:"ok"`
	Students []*models.StudentListing `json:"students"`
}

// ResultsResponse wraps a student's results listing
type ResultsResponse struct {
	OK      bool             `json:"ok"`
	Results []*models.Result `json:"results"`
}

// ApplicationRequest is the admissions intake form payload. Field names
// match the public form; none are required, the intake is best-effort.
type ApplicationRequest struct {
	FullName string `json:"fullName" form:"fullName"`
	Email    string `json:"email" form:"email"`
	KCPE     string `json:"kcpe" form:"kcpe"`
	Notes    string `json:"notes" form:"notes"`
}

// ContactRequest is the contact intake form payload
type ContactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}
