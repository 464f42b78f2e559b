package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/HoseaMuriira/iruma-portal/internal/app/models"
	"github.com/HoseaMuriira/iruma-portal/internal/app/repositories"
	"github.com/HoseaMuriira/iruma-portal/internal/db"
	"github.com/HoseaMuriira/iruma-portal/internal/pkg/auth"
)

// CreateDefaultDepartments inserts the standing curriculum departments when
// the table is empty. Reruns are no-ops.
func CreateDefaultDepartments(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	departmentRepo := repositories.NewDepartmentRepository(database.Pool)

	count, err := departmentRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("error counting departments: %w", err)
	}
	if count > 0 {
		return nil
	}

	lgr.Info().Msg("Seeding default departments...")

	departments := []*models.Department{
		{Name: "Science (STEM)", Description: "Physics, Chemistry, Biology, Mathematics, Computer Studies"},
		{Name: "Humanities", Description: "Languages, History, Geography, Social Studies"},
		{Name: "Arts & Sports", Description: "Music, Visual Arts, Drama, Athletics"},
	}

	for _, department := range departments {
		if err := departmentRepo.Create(ctx, department); err != nil {
			return fmt.Errorf("error seeding department %q: %w", department.Name, err)
		}
	}

	return nil
}

// CreateDemoAccounts creates the demo admin, teacher and student accounts
// plus a sample student record with one term of results. The admin email is
// the guard; when it exists the whole seed is skipped. The inserts run in a
// single transaction so a half-seeded portal cannot survive a failure.
func CreateDemoAccounts(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	exists, err := repositories.NewUserRepository(database.Pool).EmailExists(ctx, "admin@iruma.test")
	if err != nil {
		return fmt.Errorf("error checking for existing seed: %w", err)
	}
	if exists {
		lgr.Debug().Msg("Demo accounts already seeded, skipping")
		return nil
	}

	lgr.Info().Msg("Seeding demo accounts...")

	err = database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		userRepo := repositories.NewUserRepository(tx)
		studentRepo := repositories.NewStudentRepository(tx)
		resultRepo := repositories.NewResultRepository(tx)

		accounts := []struct {
			fullName string
			email    string
			password string
			role     models.RoleType
		}{
			{"Principal - Iruma", "admin@iruma.test", "Admin123!", models.RoleAdmin},
			{"Miss Njoki", "teacher@iruma.test", "Teacher123!", models.RoleTeacher},
			{"Jane Student", "student@iruma.test", "Student123!", models.RoleStudent},
		}

		var studentUserID int64
		for _, account := range accounts {
			hash, err := auth.HashPassword(account.password)
			if err != nil {
				return fmt.Errorf("error hashing seed password: %w", err)
			}

			user := &models.User{
				FullName:     account.fullName,
				Email:        account.email,
				PasswordHash: hash,
				Role:         account.role,
			}
			id, err := userRepo.CreateUser(ctx, user)
			if err != nil {
				return fmt.Errorf("error creating seed user %s: %w", account.email, err)
			}
			if account.role == models.RoleStudent {
				studentUserID = id
			}
		}

		student := &models.Student{
			UserID:      studentUserID,
			AdmissionNo: "IR/2025/01",
			Pathway:     "STEM",
			Year:        2025,
		}
		if err := studentRepo.Create(ctx, student); err != nil {
			return fmt.Errorf("error creating seed student: %w", err)
		}

		results := []*models.Result{
			{StudentID: student.ID, Subject: "Mathematics", Score: 84, Term: "Term 1", Year: 2025},
			{StudentID: student.ID, Subject: "Biology", Score: 78, Term: "Term 1", Year: 2025},
			{StudentID: student.ID, Subject: "English", Score: 88, Term: "Term 1", Year: 2025},
		}
		for _, result := range results {
			if err := resultRepo.Create(ctx, result); err != nil {
				return fmt.Errorf("error creating seed result: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	lgr.Info().Msg("Seeded demo accounts, a sample student and results")
	return nil
}
