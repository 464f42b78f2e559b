package models

// Result defines an exam result row belonging to a student
type Result struct {
	ID        int64  `json:"id" db:"id"`
	StudentID int64  `json:"-" db:"student_id"`
	Subject   string `json:"subject" db:"subject"`
	Score     int    `json:"score" db:"score"`
	Term      string `json:"term" db:"term"`
	Year      int    `json:"year" db:"year"`
}
