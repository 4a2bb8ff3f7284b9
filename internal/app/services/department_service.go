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

type departmentStore interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	ExistsByNameOrCode(ctx context.Context, name, code string, excludeID int64) (bool, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
}

// DepartmentService handles department-related operations
type DepartmentService struct {
	departmentStore departmentStore
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentStore departmentStore) *DepartmentService {
	return &DepartmentService{departmentStore: departmentStore}
}

// validateDepartment checks department form data, collecting every problem
func validateDepartment(name, code string) *dto.ValidationErrors {
	verrs := dto.NewValidationErrors()
	if strings.TrimSpace(name) == "" {
		verrs.Add("name", "Department name is required")
	}
	if strings.TrimSpace(code) == "" {
		verrs.Add("code", "Department code is required")
	}
	return verrs
}

// CreateDepartment creates a new department
func (s *DepartmentService) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	if verrs := validateDepartment(req.Name, req.Code); verrs.HasErrors() {
		return nil, validationError(verrs)
	}

	department := &models.Department{
		Name: strings.TrimSpace(req.Name),
		Code: strings.TrimSpace(req.Code),
	}

	exists, err := s.departmentStore.ExistsByNameOrCode(ctx, department.Name, department.Code, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking department uniqueness: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDepartmentAlreadyExists
	}

	if err := s.departmentStore.Create(ctx, department); err != nil {
		return nil, err
	}

	logger.Info().Int64("departmentId", department.ID).Str("code", department.Code).Msg("Department created")
	return department, nil
}

// GetDepartmentByID retrieves a department by ID
func (s *DepartmentService) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	if id <= 0 {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return s.departmentStore.GetByID(ctx, id)
}

// GetAllDepartments lists every department with its student and course counts
func (s *DepartmentService) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	return s.departmentStore.GetAll(ctx)
}

// UpdateDepartment updates an existing department
func (s *DepartmentService) UpdateDepartment(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	if id <= 0 {
		return nil, apperrors.ErrDepartmentNotFound
	}

	if verrs := validateDepartment(req.Name, req.Code); verrs.HasErrors() {
		return nil, validationError(verrs)
	}

	department, err := s.departmentStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	department.Name = strings.TrimSpace(req.Name)
	department.Code = strings.TrimSpace(req.Code)

	exists, err := s.departmentStore.ExistsByNameOrCode(ctx, department.Name, department.Code, id)
	if err != nil {
		return nil, fmt.Errorf("error checking department uniqueness: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDepartmentAlreadyExists
	}

	if err := s.departmentStore.Update(ctx, department); err != nil {
		return nil, err
	}

	return department, nil
}

// DeleteDepartment deletes a department. Deletion is refused while students
// or courses still reference it.
func (s *DepartmentService) DeleteDepartment(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrDepartmentNotFound
	}

	if err := s.departmentStore.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrDepartmentHasRelations) {
			return err
		}
		return fmt.Errorf("error deleting department: %w", err)
	}

	logger.Info().Int64("departmentId", id).Msg("Department deleted")
	return nil
}
