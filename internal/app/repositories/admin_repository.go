package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sushrut-patil/college-admission-system/internal/app/models"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/apperrors"
)

// AdminRepository handles database operations for administrator accounts
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

// GetByUsername retrieves an admin by username
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.QueryRow(ctx, `
		SELECT id, username, password, created_at
		FROM admins
		WHERE username = $1`,
		username).Scan(&admin.ID, &admin.Username, &admin.Password, &admin.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}

	return &admin, nil
}

// GetByID retrieves an admin by ID
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.QueryRow(ctx, `
		SELECT id, username, password, created_at
		FROM admins
		WHERE id = $1`,
		id).Scan(&admin.ID, &admin.Username, &admin.Password, &admin.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}

	return &admin, nil
}

// UsernameExists checks if an admin username is already taken
func (r *AdminRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM admins WHERE username = $1)`,
		username).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking admin username: %w", err)
	}

	return exists, nil
}

// Create creates a new admin account
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO admins (username, password)
		VALUES ($1, $2)
		RETURNING id, created_at`,
		admin.Username, admin.Password).Scan(&admin.ID, &admin.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating admin: %w", err)
	}

	return nil
}
