package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID          int64  `json:"id" db:"id" example:"1"`                        // Unique identifier for the student record
	UserID      int64  `json:"user_id" db:"user_id" example:"3"`              // ID of the owning user account
	AdmissionNo string `json:"admission_no" db:"admission_no" example:"IR/2025/01"` // Admission number
	Pathway     string `json:"pathway" db:"pathway" example:"STEM"`           // Chosen pathway
	Year        int    `json:"year" db:"year" example:"2025"`                 // Year of admission

	// Relation (populated when needed)
	User *User `json:"user,omitempty"`
}

// StudentListing is a student row joined with the owning user's identity,
// as returned by the teacher-facing students listing.
type StudentListing struct {
	ID          int64  `json:"id" db:"id"`
	AdmissionNo string `json:"admission_no" db:"admission_no"`
	Pathway     string `json:"pathway" db:"pathway"`
	Year        int    `json:"year" db:"year"`
	FullName    string `json:"fullname" db:"fullname"`
	Email       string `json:"email" db:"email"`
}
