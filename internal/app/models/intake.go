package models

import "time"

// Application is an admissions intake row. Append-only; no read endpoint.
type Application struct {
	ID        int64     `json:"id" db:"id"`
	FullName  string    `json:"fullname" db:"fullname"`
	Email     string    `json:"email" db:"email"`
	KCPE      string    `json:"kcpe" db:"kcpe"`
	Notes     string    `json:"notes" db:"notes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Contact is a contact-form intake row. Append-only; no read endpoint.
type Contact struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
