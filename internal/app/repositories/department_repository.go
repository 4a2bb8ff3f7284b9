package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sushrut-patil/college-admission-system/internal/app/models"
	"github.com/sushrut-patil/college-admission-system/internal/db"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/apperrors"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/dberrors"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Create creates a new department
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO departments (name, code)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, department.Name, department.Code).Scan(&department.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "departments_name_key") ||
			dberrors.IsDuplicateConstraintError(err, "departments_code_key") {
			return apperrors.ErrDepartmentAlreadyExists
		}
		return fmt.Errorf("error creating department: %w", err)
	}

	return nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := `
		SELECT id, name, code
		FROM departments
		WHERE id = $1
	`

	var department models.Department
	err := r.db.QueryRow(ctx, query, id).Scan(
		&department.ID,
		&department.Name,
		&department.Code,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &department, nil
}

// GetAll retrieves all departments, annotated with student and course counts
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	query := `
		SELECT d.id, d.name, d.code,
			(SELECT COUNT(*) FROM students s WHERE s.department_id = d.id) AS student_count,
			(SELECT COUNT(*) FROM courses c WHERE c.department_id = d.id) AS course_count
		FROM departments d
		ORDER BY d.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(
			&department.ID,
			&department.Name,
			&department.Code,
			&department.StudentCount,
			&department.CourseCount,
		); err != nil {
			return nil, err
		}
		departments = append(departments, &department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// ExistsByNameOrCode checks if another department already uses the name or
// code. excludeID skips the department being edited; pass 0 on create.
func (r *DepartmentRepository) ExistsByNameOrCode(ctx context.Context, name, code string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM departments WHERE (name = $1 OR code = $2) AND id != $3)`,
		name, code, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking department uniqueness: %w", err)
	}

	return exists, nil
}

// Update updates an existing department
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	query := `
		UPDATE departments
		SET name = $1, code = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, department.Name, department.Code, department.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "departments_name_key") ||
			dberrors.IsDuplicateConstraintError(err, "departments_code_key") {
			return apperrors.ErrDepartmentAlreadyExists
		}
		return fmt.Errorf("error updating department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

// Delete deletes a department by ID. Deleting a nonexistent department is a
// no-op. A department with dependent students or courses is not deleted; the
// relations check and the delete run in one transaction so a student or
// course created in between cannot slip past the check.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var hasRelations bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM students WHERE department_id = $1)
				OR EXISTS(SELECT 1 FROM courses WHERE department_id = $1)`,
			id).Scan(&hasRelations)
		if err != nil {
			return fmt.Errorf("error checking department relations: %w", err)
		}
		if hasRelations {
			return apperrors.ErrDepartmentHasRelations
		}

		if _, err := tx.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id); err != nil {
			// FK backstop; the RESTRICT constraint is the final word
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrDepartmentHasRelations
			}
			return fmt.Errorf("error deleting department: %w", err)
		}

		return nil
	})
}

// Count returns the number of departments
func (r *DepartmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting departments: %w", err)
	}
	return count, nil
}
