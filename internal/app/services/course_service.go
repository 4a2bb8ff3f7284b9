package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sushrut-patil/college-admission-system/internal/app/models"
	"github.com/sushrut-patil/college-admission-system/internal/app/models/dto"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/apperrors"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/logger"
)

type courseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context, departmentID *int64) ([]*models.Course, error)
	ListCatalog(ctx context.Context, departmentID, studentID int64) ([]*models.CatalogCourse, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

type studentLookupStore interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

// CourseService handles course management and the student-facing catalog
type CourseService struct {
	courseStore     courseStore
	departmentStore departmentLookupStore
	studentStore    studentLookupStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseStore courseStore, departmentStore departmentLookupStore, studentStore studentLookupStore) *CourseService {
	return &CourseService{
		courseStore:     courseStore,
		departmentStore: departmentStore,
		studentStore:    studentStore,
	}
}

// validateCourse checks course form data, collecting every problem
func (s *CourseService) validateCourse(ctx context.Context, req *dto.SaveCourseRequest) (*dto.ValidationErrors, error) {
	verrs := dto.NewValidationErrors()

	if strings.TrimSpace(req.Name) == "" {
		verrs.Add("name", "Course name is required")
	}

	if req.DepartmentID <= 0 {
		verrs.Add("departmentId", "Department is required")
	} else {
		if _, err := s.departmentStore.GetByID(ctx, req.DepartmentID); err != nil {
			if errors.Is(err, apperrors.ErrDepartmentNotFound) {
				verrs.Add("departmentId", "Selected department does not exist")
			} else {
				return nil, fmt.Errorf("error checking department: %w", err)
			}
		}
	}

	return verrs, nil
}

// CreateCourse creates a new course
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.SaveCourseRequest) (*models.Course, error) {
	verrs, err := s.validateCourse(ctx, req)
	if err != nil {
		return nil, err
	}
	if verrs.HasErrors() {
		return nil, validationError(verrs)
	}

	course := &models.Course{
		Name:         strings.TrimSpace(req.Name),
		DepartmentID: req.DepartmentID,
		Description:  strings.TrimSpace(req.Description),
	}

	if err := s.courseStore.Create(ctx, course); err != nil {
		return nil, err
	}

	logger.Info().Int64("courseId", course.ID).Msg("Course created")
	return course, nil
}

// GetCourseByID retrieves a course by ID
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, apperrors.ErrCourseNotFound
	}
	return s.courseStore.GetByID(ctx, id)
}

// GetAllCourses lists courses with enrollment counts, optionally filtered by
// department
func (s *CourseService) GetAllCourses(ctx context.Context, departmentID *int64) ([]*models.Course, error) {
	return s.courseStore.GetAll(ctx, departmentID)
}

// GetCatalogForStudent lists the courses of the student's own department,
// each annotated with the live enrolled count and whether the student is
// already enrolled in it.
func (s *CourseService) GetCatalogForStudent(ctx context.Context, studentID int64) ([]*models.CatalogCourse, error) {
	student, err := s.studentStore.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return s.courseStore.ListCatalog(ctx, student.DepartmentID, studentID)
}

// UpdateCourse updates an existing course
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req *dto.SaveCourseRequest) (*models.Course, error) {
	if id <= 0 {
		return nil, apperrors.ErrCourseNotFound
	}

	verrs, err := s.validateCourse(ctx, req)
	if err != nil {
		return nil, err
	}
	if verrs.HasErrors() {
		return nil, validationError(verrs)
	}

	course, err := s.courseStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	course.Name = strings.TrimSpace(req.Name)
	course.DepartmentID = req.DepartmentID
	course.Description = strings.TrimSpace(req.Description)

	if err := s.courseStore.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// DeleteCourse deletes a course. Enrollments referencing it are removed with
// it.
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrCourseNotFound
	}

	if err := s.courseStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	logger.Info().Int64("courseId", id).Msg("Course deleted")
	return nil
}
