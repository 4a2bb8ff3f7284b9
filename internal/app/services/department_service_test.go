package services

import (
	"context"
	"errors"
	"testing"

	"github.com/sushrut-patil/college-admission-system/internal/app/models"
	"github.com/sushrut-patil/college-admission-system/internal/app/models/dto"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/apperrors"
)

func TestCreateDepartment(t *testing.T) {
	store := &fakeDepartmentStore{}
	svc := NewDepartmentService(store)

	department, err := svc.CreateDepartment(context.Background(), &dto.CreateDepartmentRequest{
		Name: "  Computer Science  ",
		Code: "CS",
	})
	if err != nil {
		t.Fatalf("CreateDepartment() error = %v", err)
	}
	if department.Name != "Computer Science" {
		t.Errorf("CreateDepartment() name = %q, want trimmed %q", department.Name, "Computer Science")
	}
	if department.ID == 0 {
		t.Error("CreateDepartment() did not assign an id")
	}
}

func TestCreateDepartmentRequiresNameAndCode(t *testing.T) {
	svc := NewDepartmentService(&fakeDepartmentStore{})

	_, err := svc.CreateDepartment(context.Background(), &dto.CreateDepartmentRequest{
		Name: "   ",
		Code: "",
	})
	requireValidationMessages(t, err,
		"Department name is required",
		"Department code is required",
	)
}

func TestCreateDepartmentDuplicate(t *testing.T) {
	store := &fakeDepartmentStore{departments: []*models.Department{
		{ID: 1, Name: "Computer Science", Code: "CS"},
	}}
	store.nextID = 1
	svc := NewDepartmentService(store)

	tests := []struct {
		name string
		req  *dto.CreateDepartmentRequest
	}{
		{"same name", &dto.CreateDepartmentRequest{Name: "Computer Science", Code: "CSE"}},
		{"same code", &dto.CreateDepartmentRequest{Name: "Computing", Code: "CS"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateDepartment(context.Background(), tt.req)
			if !errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
				t.Errorf("CreateDepartment() error = %v, want ErrDepartmentAlreadyExists", err)
			}
		})
	}
}

func TestUpdateDepartmentKeepsOwnNameAndCode(t *testing.T) {
	store := &fakeDepartmentStore{departments: []*models.Department{
		{ID: 1, Name: "Computer Science", Code: "CS"},
		{ID: 2, Name: "Mechanical Engineering", Code: "ME"},
	}}
	store.nextID = 2
	svc := NewDepartmentService(store)

	// Renaming without changing the code must not trip over its own row.
	department, err := svc.UpdateDepartment(context.Background(), 1, &dto.UpdateDepartmentRequest{
		Name: "Computer Science and Engineering",
		Code: "CS",
	})
	if err != nil {
		t.Fatalf("UpdateDepartment() error = %v", err)
	}
	if department.Name != "Computer Science and Engineering" {
		t.Errorf("UpdateDepartment() name = %q", department.Name)
	}

	// Taking another department's code is still refused.
	if _, err := svc.UpdateDepartment(context.Background(), 1, &dto.UpdateDepartmentRequest{
		Name: "Computer Science",
		Code: "ME",
	}); !errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
		t.Errorf("UpdateDepartment() error = %v, want ErrDepartmentAlreadyExists", err)
	}
}

func TestDeleteDepartmentBlockedByRelations(t *testing.T) {
	store := &fakeDepartmentStore{
		departments: []*models.Department{{ID: 1, Name: "Computer Science", Code: "CS"}},
		deleteErr:   apperrors.ErrDepartmentHasRelations,
	}
	svc := NewDepartmentService(store)

	if err := svc.DeleteDepartment(context.Background(), 1); !errors.Is(err, apperrors.ErrDepartmentHasRelations) {
		t.Errorf("DeleteDepartment() error = %v, want ErrDepartmentHasRelations", err)
	}
	if len(store.departments) != 1 {
		t.Error("DeleteDepartment() removed a department that has relations")
	}
}

func TestDeleteDepartmentNonexistentIsNoOp(t *testing.T) {
	svc := NewDepartmentService(&fakeDepartmentStore{})

	if err := svc.DeleteDepartment(context.Background(), 42); err != nil {
		t.Errorf("DeleteDepartment() of a missing id error = %v, want nil", err)
	}
}

func TestGetDepartmentByIDRejectsNonPositive(t *testing.T) {
	svc := NewDepartmentService(&fakeDepartmentStore{})

	if _, err := svc.GetDepartmentByID(context.Background(), 0); !errors.Is(err, apperrors.ErrDepartmentNotFound) {
		t.Errorf("GetDepartmentByID(0) error = %v, want ErrDepartmentNotFound", err)
	}
}
