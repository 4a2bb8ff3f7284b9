package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sushrut-patil/college-admission-system/internal/app/models"
	"github.com/sushrut-patil/college-admission-system/internal/app/models/dto"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/apperrors"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/helpers"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/logger"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/validation"
)

type feeStore interface {
	Create(ctx context.Context, fee *models.Fee) error
	GetByID(ctx context.Context, id int64) (*models.Fee, error)
	GetAll(ctx context.Context) ([]*models.Fee, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Fee, error)
	Update(ctx context.Context, fee *models.Fee) error
	Delete(ctx context.Context, id int64) error
}

// FeeService handles fee payment records
type FeeService struct {
	feeStore     feeStore
	studentStore studentLookupStore
}

// NewFeeService creates a new fee service instance
func NewFeeService(feeStore feeStore, studentStore studentLookupStore) *FeeService {
	return &FeeService{
		feeStore:     feeStore,
		studentStore: studentStore,
	}
}

// validateFee checks fee payment form data, collecting every problem
func (s *FeeService) validateFee(ctx context.Context, req *dto.SaveFeeRequest) (*dto.ValidationErrors, error) {
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

	if req.Amount <= 0 {
		verrs.Add("amount", "Amount must be greater than zero")
	}

	if strings.TrimSpace(req.PaymentDate) == "" {
		verrs.Add("paymentDate", "Payment date is required")
	} else if _, err := helpers.ParseDate(req.PaymentDate); err != nil {
		verrs.Add("paymentDate", "Invalid payment date")
	}

	if req.PaymentMethod == "" {
		verrs.Add("paymentMethod", "Payment method is required")
	} else if !models.IsValidPaymentMethod(req.PaymentMethod) {
		verrs.Add("paymentMethod", "Invalid payment method")
	}

	if req.AcademicYear == "" {
		verrs.Add("academicYear", "Academic year is required")
	} else if !validation.IsValidAcademicYear(req.AcademicYear) {
		verrs.Add("academicYear", "Invalid academic year. Use the format 2024-2025.")
	}

	return verrs, nil
}

// CreateFee records a fee payment
func (s *FeeService) CreateFee(ctx context.Context, req *dto.SaveFeeRequest) (*models.Fee, error) {
	verrs, err := s.validateFee(ctx, req)
	if err != nil {
		return nil, err
	}
	if verrs.HasErrors() {
		return nil, validationError(verrs)
	}

	date, _ := helpers.ParseDate(req.PaymentDate)
	fee := &models.Fee{
		StudentID:     req.StudentID,
		Amount:        req.Amount,
		PaymentDate:   date,
		PaymentMethod: req.PaymentMethod,
		AcademicYear:  req.AcademicYear,
	}

	if err := s.feeStore.Create(ctx, fee); err != nil {
		return nil, err
	}

	logger.Info().Int64("feeId", fee.ID).
		Int64("studentId", fee.StudentID).
		Float64("amount", fee.Amount).
		Msg("Fee payment recorded")
	return fee, nil
}

// GetFeeByID retrieves a fee payment by ID
func (s *FeeService) GetFeeByID(ctx context.Context, id int64) (*models.Fee, error) {
	if id <= 0 {
		return nil, apperrors.ErrFeeNotFound
	}
	return s.feeStore.GetByID(ctx, id)
}

// GetAllFees lists every fee payment with student and department names
func (s *FeeService) GetAllFees(ctx context.Context) ([]*models.Fee, error) {
	return s.feeStore.GetAll(ctx)
}

// GetFeesForStudent lists one student's fee payments
func (s *FeeService) GetFeesForStudent(ctx context.Context, studentID int64) ([]*models.Fee, error) {
	if studentID <= 0 {
		return nil, apperrors.ErrStudentNotFound
	}
	return s.feeStore.ListByStudent(ctx, studentID)
}

// UpdateFee updates an existing fee payment
func (s *FeeService) UpdateFee(ctx context.Context, id int64, req *dto.SaveFeeRequest) (*models.Fee, error) {
	if id <= 0 {
		return nil, apperrors.ErrFeeNotFound
	}

	verrs, err := s.validateFee(ctx, req)
	if err != nil {
		return nil, err
	}
	if verrs.HasErrors() {
		return nil, validationError(verrs)
	}

	fee, err := s.feeStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	date, _ := helpers.ParseDate(req.PaymentDate)
	fee.StudentID = req.StudentID
	fee.Amount = req.Amount
	fee.PaymentDate = date
	fee.PaymentMethod = req.PaymentMethod
	fee.AcademicYear = req.AcademicYear

	if err := s.feeStore.Update(ctx, fee); err != nil {
		return nil, err
	}

	return fee, nil
}

// DeleteFee deletes a fee payment record
func (s *FeeService) DeleteFee(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrFeeNotFound
	}

	if err := s.feeStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting fee payment: %w", err)
	}

	logger.Info().Int64("feeId", id).Msg("Fee payment deleted")
	return nil
}
