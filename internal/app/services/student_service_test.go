package services

import (
	"context"
	"testing"

	"github.com/sushrut-patil/college-admission-system/internal/app/models"
	"github.com/sushrut-patil/college-admission-system/internal/app/models/dto"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/auth"
)

func newStudentFixture() (*StudentService, *fakeStudentStore) {
	departments := &fakeDepartmentStore{departments: []*models.Department{
		{ID: 1, Name: "Computer Science", Code: "CS"},
	}}
	departments.nextID = 1
	students := &fakeStudentStore{}
	return NewStudentService(students, departments), students
}

func validStudentRequest() *dto.SaveStudentRequest {
	return &dto.SaveStudentRequest{
		FirstName:    "Asha",
		LastName:     "Verma",
		DateOfBirth:  "2003-04-12",
		Phone:        "9876543210",
		Email:        "asha.verma@example.com",
		Password:     "Secret123",
		DepartmentID: 1,
		Address:      "12 College Road",
	}
}

func TestCreateStudent(t *testing.T) {
	svc, store := newStudentFixture()

	student, err := svc.CreateStudent(context.Background(), validStudentRequest())
	if err != nil {
		t.Fatalf("CreateStudent() error = %v", err)
	}
	if student.ID == 0 {
		t.Error("CreateStudent() did not assign an id")
	}
	if !auth.CheckPassword(student.Password, "Secret123") {
		t.Error("CreateStudent() stored a password that does not verify")
	}
	if len(store.students) != 1 {
		t.Errorf("CreateStudent() stored %d students, want 1", len(store.students))
	}
}

func TestCreateStudentRequiresPassword(t *testing.T) {
	svc, _ := newStudentFixture()

	req := validStudentRequest()
	req.Password = ""
	_, err := svc.CreateStudent(context.Background(), req)
	requireValidationMessages(t, err, "Password is required")
}

func TestCreateStudentDuplicateEmail(t *testing.T) {
	svc, store := newStudentFixture()
	store.students = []*models.Student{{ID: 1, Email: "asha.verma@example.com"}}
	store.nextID = 1

	_, err := svc.CreateStudent(context.Background(), validStudentRequest())
	requireValidationMessages(t, err, "Email already exists in the system")
}

func TestUpdateStudentKeepsPasswordWhenEmpty(t *testing.T) {
	svc, store := newStudentFixture()
	hashed, err := auth.HashPassword("Original123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	store.students = []*models.Student{{
		ID: 1, FirstName: "Asha", LastName: "Verma",
		Email: "asha.verma@example.com", Password: hashed, DepartmentID: 1,
	}}
	store.nextID = 1

	req := validStudentRequest()
	req.Password = ""
	req.Phone = "9123456789"
	if _, err := svc.UpdateStudent(context.Background(), 1, req); err != nil {
		t.Fatalf("UpdateStudent() error = %v", err)
	}

	stored := store.students[0]
	if stored.Phone != "9123456789" {
		t.Errorf("UpdateStudent() phone = %q, want updated value", stored.Phone)
	}
	if !auth.CheckPassword(stored.Password, "Original123") {
		t.Error("UpdateStudent() with empty password did not keep the stored one")
	}
}

func TestUpdateStudentReplacesPasswordWhenProvided(t *testing.T) {
	svc, store := newStudentFixture()
	hashed, err := auth.HashPassword("Original123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	store.students = []*models.Student{{
		ID: 1, FirstName: "Asha", LastName: "Verma",
		Email: "asha.verma@example.com", Password: hashed, DepartmentID: 1,
	}}
	store.nextID = 1

	req := validStudentRequest()
	req.Password = "Replaced456"
	if _, err := svc.UpdateStudent(context.Background(), 1, req); err != nil {
		t.Fatalf("UpdateStudent() error = %v", err)
	}
	if !auth.CheckPassword(store.students[0].Password, "Replaced456") {
		t.Error("UpdateStudent() did not store the new password")
	}
}

func TestUpdateStudentAllowsOwnEmail(t *testing.T) {
	svc, store := newStudentFixture()
	store.students = []*models.Student{
		{ID: 1, Email: "asha.verma@example.com", DepartmentID: 1},
		{ID: 2, Email: "ravi.kumar@example.com", DepartmentID: 1},
	}
	store.nextID = 2

	// Keeping the same email on edit is fine.
	if _, err := svc.UpdateStudent(context.Background(), 1, validStudentRequest()); err != nil {
		t.Fatalf("UpdateStudent() error = %v", err)
	}

	// Taking another student's email is not.
	req := validStudentRequest()
	req.Email = "ravi.kumar@example.com"
	_, err := svc.UpdateStudent(context.Background(), 1, req)
	requireValidationMessages(t, err, "Email already exists in the system")
}

func TestDeleteStudentNonexistentIsNoOp(t *testing.T) {
	svc, _ := newStudentFixture()

	if err := svc.DeleteStudent(context.Background(), 42); err != nil {
		t.Errorf("DeleteStudent() of a missing id error = %v, want nil", err)
	}
}

func TestGetAllStudentsPaginates(t *testing.T) {
	svc, store := newStudentFixture()
	for i := 0; i < 45; i++ {
		store.students = append(store.students, &models.Student{ID: int64(i + 1), DepartmentID: 1})
	}
	store.nextID = 45

	resp, err := svc.GetAllStudents(context.Background(), 2, 20)
	if err != nil {
		t.Fatalf("GetAllStudents() error = %v", err)
	}
	if len(resp.Students) != 20 {
		t.Errorf("GetAllStudents() returned %d students, want 20", len(resp.Students))
	}
	if resp.TotalItems != 45 {
		t.Errorf("GetAllStudents() totalItems = %d, want 45", resp.TotalItems)
	}
	if resp.TotalPages != 3 {
		t.Errorf("GetAllStudents() totalPages = %d, want 3", resp.TotalPages)
	}
	if resp.Students[0].ID != 21 {
		t.Errorf("GetAllStudents() first id on page 2 = %d, want 21", resp.Students[0].ID)
	}
}
