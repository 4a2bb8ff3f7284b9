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
	"github.com/sushrut-patil/college-admission-system/internal/pkg/auth"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/helpers"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/logger"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/validation"
)

type studentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Student, int64, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// StudentService handles admin-side student management
type StudentService struct {
	studentStore    studentStore
	departmentStore departmentLookupStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentStore studentStore, departmentStore departmentLookupStore) *StudentService {
	return &StudentService{
		studentStore:    studentStore,
		departmentStore: departmentStore,
	}
}

// validateStudent checks student form data, collecting every problem.
// excludeID skips the student being edited in the email uniqueness check;
// pass 0 on create. The password is required on create and optional on
// update, where an empty value keeps the current one.
func (s *StudentService) validateStudent(ctx context.Context, req *dto.SaveStudentRequest, excludeID int64) (*dto.ValidationErrors, error) {
	verrs := dto.NewValidationErrors()

	if strings.TrimSpace(req.FirstName) == "" {
		verrs.Add("firstName", "First name is required")
	}
	if strings.TrimSpace(req.LastName) == "" {
		verrs.Add("lastName", "Last name is required")
	}

	if strings.TrimSpace(req.DateOfBirth) == "" {
		verrs.Add("dob", "Date of birth is required")
	} else if _, err := time.Parse("2006-01-02", req.DateOfBirth); err != nil {
		verrs.Add("dob", "Invalid date of birth")
	}

	if strings.TrimSpace(req.Phone) == "" {
		verrs.Add("phone", "Phone number is required")
	} else if !validation.IsValidPhone(req.Phone) {
		verrs.Add("phone", "Invalid phone number. Must be 10 digits.")
	}

	email := strings.TrimSpace(req.Email)
	switch {
	case email == "":
		verrs.Add("email", "Email is required")
	case !validation.IsValidEmail(email):
		verrs.Add("email", "Invalid email format")
	default:
		exists, err := s.studentStore.EmailExists(ctx, email, excludeID)
		if err != nil {
			return nil, fmt.Errorf("error checking email: %w", err)
		}
		if exists {
			verrs.Add("email", "Email already exists in the system")
		}
	}

	if req.Password == "" {
		if excludeID == 0 {
			verrs.Add("password", "Password is required")
		}
	} else if !validation.IsValidPassword(req.Password) {
		verrs.Add("password", "Password must be at least 8 characters long")
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

	if strings.TrimSpace(req.Address) == "" {
		verrs.Add("address", "Address is required")
	}

	return verrs, nil
}

// CreateStudent creates a student record on behalf of an administrator
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.SaveStudentRequest) (*models.Student, error) {
	verrs, err := s.validateStudent(ctx, req, 0)
	if err != nil {
		return nil, err
	}
	if verrs.HasErrors() {
		return nil, validationError(verrs)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		FirstName:              strings.TrimSpace(req.FirstName),
		LastName:               strings.TrimSpace(req.LastName),
		DateOfBirth:            req.DateOfBirth,
		Phone:                  req.Phone,
		Email:                  strings.TrimSpace(req.Email),
		Password:               hashed,
		DepartmentID:           req.DepartmentID,
		Address:                strings.TrimSpace(req.Address),
		PreviousQualifications: strings.TrimSpace(req.PreviousQualifications),
	}

	if err := s.studentStore.Create(ctx, student); err != nil {
		return nil, err
	}

	logger.Info().Int64("studentId", student.ID).Msg("Student created")
	return student, nil
}

// GetStudentByID retrieves a student by ID
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.ErrStudentNotFound
	}
	return s.studentStore.GetByID(ctx, id)
}

// GetAllStudents lists students page by page, ordered by name
func (s *StudentService) GetAllStudents(ctx context.Context, page, size int) (*dto.StudentListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	students, total, err := s.studentStore.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	return &dto.StudentListResponse{
		Students:       students,
		PaginationInfo: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// UpdateStudent updates an existing student. An empty password keeps the
// stored one.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.SaveStudentRequest) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.ErrStudentNotFound
	}

	verrs, err := s.validateStudent(ctx, req, id)
	if err != nil {
		return nil, err
	}
	if verrs.HasErrors() {
		return nil, validationError(verrs)
	}

	student, err := s.studentStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	student.FirstName = strings.TrimSpace(req.FirstName)
	student.LastName = strings.TrimSpace(req.LastName)
	student.DateOfBirth = req.DateOfBirth
	student.Phone = req.Phone
	student.Email = strings.TrimSpace(req.Email)
	student.DepartmentID = req.DepartmentID
	student.Address = strings.TrimSpace(req.Address)
	student.PreviousQualifications = strings.TrimSpace(req.PreviousQualifications)

	student.Password = ""
	if req.Password != "" {
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		student.Password = hashed
	}

	if err := s.studentStore.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// DeleteStudent deletes a student. Enrollments and fee payments referencing
// the student are removed with it.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrStudentNotFound
	}

	if err := s.studentStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	logger.Info().Int64("studentId", id).Msg("Student deleted")
	return nil
}
