package services

import (
	"context"
	"errors"
	"testing"

	"github.com/sushrut-patil/college-admission-system/internal/app/models"
	"github.com/sushrut-patil/college-admission-system/internal/app/models/dto"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/apperrors"
)

func newFeeFixture() (*FeeService, *fakeFeeStore) {
	students := &fakeStudentStore{students: []*models.Student{
		{ID: 1, FirstName: "Asha", LastName: "Verma", DepartmentID: 1},
	}}
	fees := &fakeFeeStore{}
	return NewFeeService(fees, students), fees
}

func TestCreateFee(t *testing.T) {
	svc, store := newFeeFixture()

	fee, err := svc.CreateFee(context.Background(), &dto.SaveFeeRequest{
		StudentID:     1,
		Amount:        45000,
		PaymentDate:   "2025-07-01",
		PaymentMethod: models.PaymentOnline,
		AcademicYear:  "2025-2026",
	})
	if err != nil {
		t.Fatalf("CreateFee() error = %v", err)
	}
	if fee.ID == 0 {
		t.Error("CreateFee() did not assign an id")
	}
	if got := fee.PaymentDate.Format("2006-01-02"); got != "2025-07-01" {
		t.Errorf("CreateFee() paymentDate = %s, want 2025-07-01", got)
	}
	if len(store.fees) != 1 {
		t.Errorf("CreateFee() stored %d fees, want 1", len(store.fees))
	}
}

func TestCreateFeeAccumulatesErrors(t *testing.T) {
	svc, _ := newFeeFixture()

	_, err := svc.CreateFee(context.Background(), &dto.SaveFeeRequest{
		StudentID:     7,
		Amount:        0,
		PaymentDate:   "01/07/2025",
		PaymentMethod: "Cheque",
		AcademicYear:  "2025/26",
	})
	requireValidationMessages(t, err,
		"Selected student does not exist",
		"Amount must be greater than zero",
		"Invalid payment date",
		"Invalid payment method",
		"Invalid academic year. Use the format 2024-2025.",
	)
}

func TestCreateFeeRejectsNegativeAmount(t *testing.T) {
	svc, _ := newFeeFixture()

	_, err := svc.CreateFee(context.Background(), &dto.SaveFeeRequest{
		StudentID:     1,
		Amount:        -500,
		PaymentDate:   "2025-07-01",
		PaymentMethod: models.PaymentCash,
		AcademicYear:  "2025-2026",
	})
	requireValidationMessages(t, err, "Amount must be greater than zero")
}

func TestUpdateFee(t *testing.T) {
	svc, store := newFeeFixture()
	fee, err := svc.CreateFee(context.Background(), &dto.SaveFeeRequest{
		StudentID:     1,
		Amount:        45000,
		PaymentDate:   "2025-07-01",
		PaymentMethod: models.PaymentOnline,
		AcademicYear:  "2025-2026",
	})
	if err != nil {
		t.Fatalf("CreateFee() error = %v", err)
	}

	updated, err := svc.UpdateFee(context.Background(), fee.ID, &dto.SaveFeeRequest{
		StudentID:     1,
		Amount:        50000,
		PaymentDate:   "2025-07-15",
		PaymentMethod: models.PaymentBankTransfer,
		AcademicYear:  "2025-2026",
	})
	if err != nil {
		t.Fatalf("UpdateFee() error = %v", err)
	}
	if updated.Amount != 50000 {
		t.Errorf("UpdateFee() amount = %v, want 50000", updated.Amount)
	}
	if store.fees[0].PaymentMethod != models.PaymentBankTransfer {
		t.Errorf("UpdateFee() paymentMethod = %s, want Bank Transfer", store.fees[0].PaymentMethod)
	}
}

func TestDeleteFeeNonexistentIsNoOp(t *testing.T) {
	svc, _ := newFeeFixture()

	if err := svc.DeleteFee(context.Background(), 42); err != nil {
		t.Errorf("DeleteFee() of a missing id error = %v, want nil", err)
	}
}

func TestGetFeeByIDNotFound(t *testing.T) {
	svc, _ := newFeeFixture()

	if _, err := svc.GetFeeByID(context.Background(), 42); !errors.Is(err, apperrors.ErrFeeNotFound) {
		t.Errorf("GetFeeByID() error = %v, want ErrFeeNotFound", err)
	}
}
