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
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns("name", "department_id", "description").
		Values(course.Name, course.DepartmentID, course.Description).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.CreatedAt); err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID, joined with the department name
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select("c.id", "c.name", "c.department_id", "c.description",
		"c.created_at", "d.name").
		From("courses c").
		Join("departments d ON c.department_id = d.id").
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	var course models.Course
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&course.ID, &course.Name, &course.DepartmentID, &course.Description,
		&course.CreatedAt, &course.DepartmentName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// GetAll retrieves all courses with department names and the live count of
// enrolled students per course
func (r *CourseRepository) GetAll(ctx context.Context, departmentID *int64) ([]*models.Course, error) {
	query := r.sb.Select("c.id", "c.name", "c.department_id", "c.description", "c.created_at",
		"d.name",
		"(SELECT COUNT(*) FROM enrollments e WHERE e.course_id = c.id) AS enrollment_count").
		From("courses c").
		Join("departments d ON c.department_id = d.id").
		OrderBy("c.name")

	if departmentID != nil {
		query = query.Where(squirrel.Eq{"c.department_id": *departmentID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID, &course.Name, &course.DepartmentID, &course.Description,
			&course.CreatedAt, &course.DepartmentName, &course.EnrollmentCount,
		); err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// ListCatalog retrieves the courses of one department as seen by a browsing
// student: annotated with the enrolled-student count and whether the student
// already holds an enrollment in the course (any term).
func (r *CourseRepository) ListCatalog(ctx context.Context, departmentID, studentID int64) ([]*models.CatalogCourse, error) {
	query := `
		SELECT c.id, c.name, c.description,
			(SELECT COUNT(*) FROM enrollments e WHERE e.course_id = c.id) AS enrolled_students,
			EXISTS(SELECT 1 FROM enrollments e WHERE e.course_id = c.id AND e.student_id = $2) AS enrolled
		FROM courses c
		WHERE c.department_id = $1
		ORDER BY c.name
	`

	rows, err := r.db.Query(ctx, query, departmentID, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing catalog: %w", err)
	}
	defer rows.Close()

	var courses []*models.CatalogCourse
	for rows.Next() {
		var course models.CatalogCourse
		if err := rows.Scan(
			&course.ID, &course.Name, &course.Description,
			&course.EnrolledStudents, &course.Enrolled,
		); err != nil {
			return nil, fmt.Errorf("error scanning catalog row: %w", err)
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		Set("name", course.Name).
		Set("department_id", course.DepartmentID).
		Set("description", course.Description).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID. Enrollments cascade. Deleting a nonexistent
// course is a no-op.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	return nil
}

// Count returns the number of courses
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}
