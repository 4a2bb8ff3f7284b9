package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sushrut-patil/college-admission-system/internal/app/models"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/apperrors"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("first_name", "last_name", "dob", "phone", "email", "password",
			"department_id", "address", "previous_qualifications").
		Values(student.FirstName, student.LastName, student.DateOfBirth, student.Phone,
			student.Email, student.Password, student.DepartmentID, student.Address,
			student.PreviousQualifications).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID, joined with the department name
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select("s.id", "s.first_name", "s.last_name", "s.dob", "s.phone",
		"s.email", "s.password", "s.department_id", "s.address",
		"s.previous_qualifications", "s.created_at", "s.updated_at", "d.name").
		From("students s").
		Join("departments d ON s.department_id = d.id").
		Where(squirrel.Eq{"s.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	var student models.Student
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.ID, &student.FirstName, &student.LastName, &student.DateOfBirth,
		&student.Phone, &student.Email, &student.Password, &student.DepartmentID,
		&student.Address, &student.PreviousQualifications,
		&student.CreatedAt, &student.UpdatedAt, &student.DepartmentName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetByEmail retrieves a student by email (exact match)
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	sql, args, err := r.sb.Select("id", "first_name", "last_name", "dob", "phone", "email",
		"password", "department_id", "address", "previous_qualifications",
		"created_at", "updated_at").
		From("students").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	var student models.Student
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.ID, &student.FirstName, &student.LastName, &student.DateOfBirth,
		&student.Phone, &student.Email, &student.Password, &student.DepartmentID,
		&student.Address, &student.PreviousQualifications,
		&student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// EmailExists checks if a student email is already registered. excludeID
// skips the student being edited; pass 0 on create.
func (r *StudentRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE email = $1 AND id != $2)`,
		email, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking student email: %w", err)
	}

	return exists, nil
}

// GetAll retrieves students, joined with department names, with pagination
func (r *StudentRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Student, int64, error) {
	sql, args, err := r.sb.Select("s.id", "s.first_name", "s.last_name", "s.dob", "s.phone",
		"s.email", "s.department_id", "s.address", "s.previous_qualifications",
		"s.created_at", "s.updated_at", "d.name", "COUNT(*) OVER()").
		From("students s").
		Join("departments d ON s.department_id = d.id").
		OrderBy("s.last_name", "s.first_name").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	var total int64
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID, &student.FirstName, &student.LastName, &student.DateOfBirth,
			&student.Phone, &student.Email, &student.DepartmentID, &student.Address,
			&student.PreviousQualifications, &student.CreatedAt, &student.UpdatedAt,
			&student.DepartmentName, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// Update updates an existing student. The password column is only touched
// when a new hash is provided.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	update := r.sb.Update("students").
		Set("first_name", student.FirstName).
		Set("last_name", student.LastName).
		Set("dob", student.DateOfBirth).
		Set("phone", student.Phone).
		Set("email", student.Email).
		Set("department_id", student.DepartmentID).
		Set("address", student.Address).
		Set("previous_qualifications", student.PreviousQualifications).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": student.ID})

	if student.Password != "" {
		update = update.Set("password", student.Password)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student by ID. Enrollments and fee payments cascade.
// Deleting a nonexistent student is a no-op.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}

// Count returns the number of students
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}
