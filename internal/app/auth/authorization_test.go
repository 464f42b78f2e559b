package auth

import (
	"testing"

	"github.com/HoseaMuriira/iruma-portal/internal/app/models"
)

func TestAllowed(t *testing.T) {
	cases := []struct {
		name     string
		required models.RoleType
		actual   models.RoleType
		want     bool
	}{
		{"admin passes admin check", models.RoleAdmin, models.RoleAdmin, true},
		{"admin passes teacher check", models.RoleTeacher, models.RoleAdmin, true},
		{"admin passes student check", models.RoleStudent, models.RoleAdmin, true},
		{"teacher passes teacher check", models.RoleTeacher, models.RoleTeacher, true},
		{"teacher fails admin check", models.RoleAdmin, models.RoleTeacher, false},
		{"student fails teacher check", models.RoleTeacher, models.RoleStudent, false},
		{"student passes student check", models.RoleStudent, models.RoleStudent, true},
		{"any valid role passes open check", "", models.RoleStudent, true},
		{"unknown role fails open check", "", "janitor", false},
		{"unknown role fails role check", models.RoleTeacher, "janitor", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Allowed(tc.required, tc.actual); got != tc.want {
				t.Fatalf("Allowed(%q, %q) = %v, want %v", tc.required, tc.actual, got, tc.want)
			}
		})
	}
}
