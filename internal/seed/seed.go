package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sushrut-patil/college-admission-system/internal/app/models"
	"github.com/sushrut-patil/college-admission-system/internal/app/repositories"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/apperrors"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/auth"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/logger"
)

// DefaultAdminUsername is the username of the bootstrap administrator
const DefaultAdminUsername = "admin"

// CreateDefaultData creates the default admin account and a few departments
// when absent. Failures are collected and reported together; seeding is best
// effort and never blocks startup on its own.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool) error {
	adminRepo := repositories.NewAdminRepository(dbPool)
	departmentRepo := repositories.NewDepartmentRepository(dbPool)

	logger.Info().Msg("Checking/Creating default data...")
	var finalErr error

	defaults := []*models.Department{
		{Name: "Computer Science", Code: "CS"},
		{Name: "Electronics", Code: "ECE"},
		{Name: "Mechanical Engineering", Code: "ME"},
	}
	for _, department := range defaults {
		err := departmentRepo.Create(ctx, department)
		if err != nil && !errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
			logger.Error().Err(err).Str("code", department.Code).Msg("Error creating default department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	exists, err := adminRepo.UsernameExists(ctx, DefaultAdminUsername)
	if err != nil {
		logger.Error().Err(err).Msg("Error checking if default admin exists")
		return errors.Join(finalErr, err)
	}
	if !exists {
		logger.Info().Msg("Creating default admin account...")

		hashed, err := auth.HashPassword("Admin123!")
		if err != nil {
			logger.Error().Err(err).Msg("Error hashing default admin password")
			return errors.Join(finalErr, err)
		}

		admin := &models.Admin{Username: DefaultAdminUsername, Password: hashed}
		if err := adminRepo.Create(ctx, admin); err != nil {
			logger.Error().Err(err).Msg("Error creating default admin")
			finalErr = errors.Join(finalErr, err)
		} else {
			logger.Info().Int64("adminId", admin.ID).Msg("Default admin created")
		}
	}

	return finalErr
}
