package services

import (
	"context"
	"errors"
	"testing"

	"github.com/sushrut-patil/college-admission-system/internal/app/models"
	"github.com/sushrut-patil/college-admission-system/internal/app/models/dto"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/apperrors"
)

func newCourseFixture() (*CourseService, *fakeCourseStore) {
	departments := &fakeDepartmentStore{departments: []*models.Department{
		{ID: 1, Name: "Computer Science", Code: "CS"},
		{ID: 2, Name: "Mechanical Engineering", Code: "ME"},
	}}
	departments.nextID = 2
	students := &fakeStudentStore{students: []*models.Student{
		{ID: 1, FirstName: "Asha", LastName: "Verma", DepartmentID: 2},
	}}
	courses := &fakeCourseStore{}
	return NewCourseService(courses, departments, students), courses
}

func TestCreateCourse(t *testing.T) {
	svc, store := newCourseFixture()

	course, err := svc.CreateCourse(context.Background(), &dto.SaveCourseRequest{
		Name:         "Data Structures",
		DepartmentID: 1,
		Description:  "Lists, trees and graphs",
	})
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}
	if course.ID == 0 {
		t.Error("CreateCourse() did not assign an id")
	}
	if len(store.courses) != 1 {
		t.Errorf("CreateCourse() stored %d courses, want 1", len(store.courses))
	}
}

func TestCreateCourseValidation(t *testing.T) {
	svc, _ := newCourseFixture()

	_, err := svc.CreateCourse(context.Background(), &dto.SaveCourseRequest{
		Name:         "  ",
		DepartmentID: 99,
	})
	requireValidationMessages(t, err,
		"Course name is required",
		"Selected department does not exist",
	)
}

func TestGetAllCoursesFiltersByDepartment(t *testing.T) {
	svc, store := newCourseFixture()
	store.courses = []*models.Course{
		{ID: 1, Name: "Data Structures", DepartmentID: 1},
		{ID: 2, Name: "Thermodynamics", DepartmentID: 2},
	}
	store.nextID = 2

	all, err := svc.GetAllCourses(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetAllCourses() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("GetAllCourses(nil) returned %d courses, want 2", len(all))
	}

	departmentID := int64(2)
	filtered, err := svc.GetAllCourses(context.Background(), &departmentID)
	if err != nil {
		t.Fatalf("GetAllCourses() error = %v", err)
	}
	if len(filtered) != 1 || filtered[0].ID != 2 {
		t.Errorf("GetAllCourses(2) = %v, want only course 2", filtered)
	}
}

func TestGetCatalogForStudentUsesOwnDepartment(t *testing.T) {
	svc, store := newCourseFixture()
	store.catalog = []*models.CatalogCourse{
		{ID: 2, Name: "Thermodynamics", EnrolledStudents: 12, Enrolled: true},
	}

	catalog, err := svc.GetCatalogForStudent(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetCatalogForStudent() error = %v", err)
	}
	if len(catalog) != 1 || !catalog[0].Enrolled {
		t.Errorf("GetCatalogForStudent() = %v", catalog)
	}
	// Student 1 belongs to department 2, so the catalog is scoped there.
	if store.catalogDepartmentID != 2 {
		t.Errorf("GetCatalogForStudent() queried department %d, want 2", store.catalogDepartmentID)
	}
	if store.catalogStudentID != 1 {
		t.Errorf("GetCatalogForStudent() queried student %d, want 1", store.catalogStudentID)
	}
}

func TestDeleteCourseNonexistentIsNoOp(t *testing.T) {
	svc, _ := newCourseFixture()

	if err := svc.DeleteCourse(context.Background(), 42); err != nil {
		t.Errorf("DeleteCourse() of a missing id error = %v, want nil", err)
	}
}

func TestGetCatalogForUnknownStudent(t *testing.T) {
	svc, _ := newCourseFixture()

	if _, err := svc.GetCatalogForStudent(context.Background(), 42); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("GetCatalogForStudent() error = %v, want ErrStudentNotFound", err)
	}
}
