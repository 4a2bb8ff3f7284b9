package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sushrut-patil/college-admission-system/internal/app/models"
	"github.com/sushrut-patil/college-admission-system/internal/app/models/dto"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/apperrors"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/helpers"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/logger"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/validation"
)

type enrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	GetAll(ctx context.Context) ([]*models.Enrollment, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	ExistsForTerm(ctx context.Context, studentID, courseID int64, semester models.Semester, academicYear string, excludeID int64) (bool, error)
	Update(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, id int64) error
}

type courseLookupStore interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

// EnrollmentService handles enrollment management and student self-enrollment
type EnrollmentService struct {
	enrollmentStore enrollmentStore
	studentStore    studentLookupStore
	courseStore     courseLookupStore
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentStore enrollmentStore, studentStore studentLookupStore, courseStore courseLookupStore) *EnrollmentService {
	return &EnrollmentService{
		enrollmentStore: enrollmentStore,
		studentStore:    studentStore,
		courseStore:     courseStore,
	}
}

// validateEnrollment checks enrollment form data, collecting every problem.
// The referenced student and course must exist.
func (s *EnrollmentService) validateEnrollment(ctx context.Context, req *dto.SaveEnrollmentRequest) (*dto.ValidationErrors, error) {
	verrs := dto.NewValidationErrors()

	if req.StudentID <= 0 {
		verrs.Add("studentId", "Student is required")
	} else {
		if _, err := s.studentStore.GetByID(ctx, req.StudentID); err != nil {
			if errors.Is(err, apperrors.ErrStudentNotFound) {
				verrs.Add("studentId", "Selected student does not exist")
			} else {
				return nil, fmt.Errorf("error checking student: %w", err)
			}
		}
	}

	if req.CourseID <= 0 {
		verrs.Add("courseId", "Course is required")
	} else {
		if _, err := s.courseStore.GetByID(ctx, req.CourseID); err != nil {
			if errors.Is(err, apperrors.ErrCourseNotFound) {
				verrs.Add("courseId", "Selected course does not exist")
			} else {
				return nil, fmt.Errorf("error checking course: %w", err)
			}
		}
	}

	if strings.TrimSpace(req.EnrollmentDate) == "" {
		verrs.Add("enrollmentDate", "Enrollment date is required")
	} else if _, err := helpers.ParseDate(req.EnrollmentDate); err != nil {
		verrs.Add("enrollmentDate", "Invalid enrollment date")
	}

	if req.Semester == "" {
		verrs.Add("semester", "Semester is required")
	} else if !models.IsValidSemester(req.Semester) {
		verrs.Add("semester", "Invalid semester")
	}

	if req.AcademicYear == "" {
		verrs.Add("academicYear", "Academic year is required")
	} else if !validation.IsValidAcademicYear(req.AcademicYear) {
		verrs.Add("academicYear", "Invalid academic year. Use the format 2024-2025.")
	}

	return verrs, nil
}

// checkDuplicate reports the duplicate-enrollment error when the same
// (student, course, semester, academic year) tuple already exists. The
// database constraint remains the final word when two submissions race past
// this check.
func (s *EnrollmentService) checkDuplicate(ctx context.Context, studentID, courseID int64, semester models.Semester, academicYear string, excludeID int64) error {
	exists, err := s.enrollmentStore.ExistsForTerm(ctx, studentID, courseID, semester, academicYear, excludeID)
	if err != nil {
		return fmt.Errorf("error checking enrollment: %w", err)
	}
	if exists {
		return apperrors.ErrDuplicateEnrollment
	}
	return nil
}

// CreateEnrollment enrolls a student in a course on behalf of an
// administrator
func (s *EnrollmentService) CreateEnrollment(ctx context.Context, req *dto.SaveEnrollmentRequest) (*models.Enrollment, error) {
	verrs, err := s.validateEnrollment(ctx, req)
	if err != nil {
		return nil, err
	}
	if verrs.HasErrors() {
		return nil, validationError(verrs)
	}

	if err := s.checkDuplicate(ctx, req.StudentID, req.CourseID, req.Semester, req.AcademicYear, 0); err != nil {
		return nil, err
	}

	date, _ := helpers.ParseDate(req.EnrollmentDate)
	enrollment := &models.Enrollment{
		StudentID:      req.StudentID,
		CourseID:       req.CourseID,
		EnrollmentDate: date,
		Semester:       req.Semester,
		AcademicYear:   req.AcademicYear,
	}

	if err := s.enrollmentStore.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	logger.Info().Int64("enrollmentId", enrollment.ID).
		Int64("studentId", enrollment.StudentID).
		Int64("courseId", enrollment.CourseID).
		Msg("Enrollment created")
	return enrollment, nil
}

// SelfEnroll enrolls the authenticated student in a course of their own
// department, dated today. Courses from other departments are refused.
func (s *EnrollmentService) SelfEnroll(ctx context.Context, studentID int64, req *dto.SelfEnrollRequest) (*models.Enrollment, error) {
	student, err := s.studentStore.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	course, err := s.courseStore.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	if course.DepartmentID != student.DepartmentID {
		return nil, apperrors.ErrCourseNotAvailable
	}

	verrs := dto.NewValidationErrors()
	if req.Semester == "" {
		verrs.Add("semester", "Semester is required")
	} else if !models.IsValidSemester(req.Semester) {
		verrs.Add("semester", "Invalid semester")
	}
	if req.AcademicYear == "" {
		verrs.Add("academicYear", "Academic year is required")
	} else if !validation.IsValidAcademicYear(req.AcademicYear) {
		verrs.Add("academicYear", "Invalid academic year. Use the format 2024-2025.")
	}
	if verrs.HasErrors() {
		return nil, validationError(verrs)
	}

	if err := s.checkDuplicate(ctx, studentID, req.CourseID, req.Semester, req.AcademicYear, 0); err != nil {
		return nil, err
	}

	enrollment := &models.Enrollment{
		StudentID:      studentID,
		CourseID:       req.CourseID,
		EnrollmentDate: time.Now(),
		Semester:       req.Semester,
		AcademicYear:   req.AcademicYear,
	}

	if err := s.enrollmentStore.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	logger.Info().Int64("enrollmentId", enrollment.ID).
		Int64("studentId", studentID).
		Int64("courseId", req.CourseID).
		Msg("Student self-enrolled")
	return enrollment, nil
}

// GetEnrollmentByID retrieves an enrollment by ID
func (s *EnrollmentService) GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	if id <= 0 {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	return s.enrollmentStore.GetByID(ctx, id)
}

// GetAllEnrollments lists every enrollment with student and course names
func (s *EnrollmentService) GetAllEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	return s.enrollmentStore.GetAll(ctx)
}

// GetEnrollmentsForStudent lists one student's enrollments
func (s *EnrollmentService) GetEnrollmentsForStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	if studentID <= 0 {
		return nil, apperrors.ErrStudentNotFound
	}
	return s.enrollmentStore.ListByStudent(ctx, studentID)
}

// UpdateEnrollment updates an existing enrollment
func (s *EnrollmentService) UpdateEnrollment(ctx context.Context, id int64, req *dto.SaveEnrollmentRequest) (*models.Enrollment, error) {
	if id <= 0 {
		return nil, apperrors.ErrEnrollmentNotFound
	}

	verrs, err := s.validateEnrollment(ctx, req)
	if err != nil {
		return nil, err
	}
	if verrs.HasErrors() {
		return nil, validationError(verrs)
	}

	enrollment, err := s.enrollmentStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkDuplicate(ctx, req.StudentID, req.CourseID, req.Semester, req.AcademicYear, id); err != nil {
		return nil, err
	}

	date, _ := helpers.ParseDate(req.EnrollmentDate)
	enrollment.StudentID = req.StudentID
	enrollment.CourseID = req.CourseID
	enrollment.EnrollmentDate = date
	enrollment.Semester = req.Semester
	enrollment.AcademicYear = req.AcademicYear

	if err := s.enrollmentStore.Update(ctx, enrollment); err != nil {
		return nil, err
	}

	return enrollment, nil
}

// DeleteEnrollment deletes an enrollment
func (s *EnrollmentService) DeleteEnrollment(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	if err := s.enrollmentStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	logger.Info().Int64("enrollmentId", id).Msg("Enrollment deleted")
	return nil
}
