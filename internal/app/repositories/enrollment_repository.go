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

// uniqueEnrollmentConstraint is the UNIQUE(student_id, course_id, semester,
// academic_year) constraint. Insert conflicts on it are reported as duplicate
// enrollments, so the pre-check and the constraint cannot disagree even under
// concurrent submissions.
const uniqueEnrollmentConstraint = "enrollments_student_course_term_key"

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new enrollment
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	sql, args, err := r.sb.Insert("enrollments").
		Columns("student_id", "course_id", "enrollment_date", "semester", "academic_year").
		Values(enrollment.StudentID, enrollment.CourseID, enrollment.EnrollmentDate,
			enrollment.Semester, enrollment.AcademicYear).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&enrollment.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, uniqueEnrollmentConstraint) {
			return apperrors.ErrDuplicateEnrollment
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// GetByID retrieves an enrollment by ID, joined with student and course names
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	sql, args, err := r.sb.Select("e.id", "e.student_id", "e.course_id", "e.enrollment_date",
		"e.semester", "e.academic_year",
		"s.first_name || ' ' || s.last_name", "c.name").
		From("enrollments e").
		Join("students s ON e.student_id = s.id").
		Join("courses c ON e.course_id = c.id").
		Where(squirrel.Eq{"e.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get enrollment query: %w", err)
	}

	var enrollment models.Enrollment
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID,
		&enrollment.EnrollmentDate, &enrollment.Semester, &enrollment.AcademicYear,
		&enrollment.StudentName, &enrollment.CourseName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return &enrollment, nil
}

// GetAll retrieves all enrollments, joined with student and course names
func (r *EnrollmentRepository) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	sql, args, err := r.sb.Select("e.id", "e.student_id", "e.course_id", "e.enrollment_date",
		"e.semester", "e.academic_year",
		"s.first_name || ' ' || s.last_name", "c.name").
		From("enrollments e").
		Join("students s ON e.student_id = s.id").
		Join("courses c ON e.course_id = c.id").
		OrderBy("e.enrollment_date DESC", "e.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		if err := rows.Scan(
			&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID,
			&enrollment.EnrollmentDate, &enrollment.Semester, &enrollment.AcademicYear,
			&enrollment.StudentName, &enrollment.CourseName,
		); err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// ListByStudent retrieves one student's enrollments, joined with course names
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	sql, args, err := r.sb.Select("e.id", "e.student_id", "e.course_id", "e.enrollment_date",
		"e.semester", "e.academic_year", "c.name").
		From("enrollments e").
		Join("courses c ON e.course_id = c.id").
		Where(squirrel.Eq{"e.student_id": studentID}).
		OrderBy("e.enrollment_date DESC", "e.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing student enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		if err := rows.Scan(
			&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID,
			&enrollment.EnrollmentDate, &enrollment.Semester, &enrollment.AcademicYear,
			&enrollment.CourseName,
		); err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// ExistsForTerm checks for an enrollment with the same (student, course,
// semester, academic year) tuple. excludeID skips the enrollment being
// edited; pass 0 on create.
func (r *EnrollmentRepository) ExistsForTerm(ctx context.Context, studentID, courseID int64, semester models.Semester, academicYear string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM enrollments
			WHERE student_id = $1 AND course_id = $2
				AND semester = $3 AND academic_year = $4
				AND id != $5
		)`,
		studentID, courseID, semester, academicYear, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking enrollment existence: %w", err)
	}

	return exists, nil
}

// Update updates an existing enrollment
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	sql, args, err := r.sb.Update("enrollments").
		Set("student_id", enrollment.StudentID).
		Set("course_id", enrollment.CourseID).
		Set("enrollment_date", enrollment.EnrollmentDate).
		Set("semester", enrollment.Semester).
		Set("academic_year", enrollment.AcademicYear).
		Where(squirrel.Eq{"id": enrollment.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update enrollment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, uniqueEnrollmentConstraint) {
			return apperrors.ErrDuplicateEnrollment
		}
		return fmt.Errorf("error updating enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// Delete deletes an enrollment by ID. Deleting a nonexistent enrollment is a
// no-op.
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}
	return nil
}
