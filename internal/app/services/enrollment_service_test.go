package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sushrut-patil/college-admission-system/internal/app/models"
	"github.com/sushrut-patil/college-admission-system/internal/app/models/dto"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/apperrors"
)

func newEnrollmentFixture() (*EnrollmentService, *fakeEnrollmentStore) {
	students := &fakeStudentStore{students: []*models.Student{
		{ID: 1, FirstName: "Asha", LastName: "Verma", DepartmentID: 1},
		{ID: 2, FirstName: "Ravi", LastName: "Kumar", DepartmentID: 2},
	}}
	courses := &fakeCourseStore{courses: []*models.Course{
		{ID: 10, Name: "Data Structures", DepartmentID: 1},
		{ID: 20, Name: "Thermodynamics", DepartmentID: 2},
	}}
	enrollments := &fakeEnrollmentStore{}
	return NewEnrollmentService(enrollments, students, courses), enrollments
}

func TestCreateEnrollment(t *testing.T) {
	svc, store := newEnrollmentFixture()

	enrollment, err := svc.CreateEnrollment(context.Background(), &dto.SaveEnrollmentRequest{
		StudentID:      1,
		CourseID:       10,
		EnrollmentDate: "2025-08-20",
		Semester:       models.SemesterFall,
		AcademicYear:   "2025-2026",
	})
	if err != nil {
		t.Fatalf("CreateEnrollment() error = %v", err)
	}
	if enrollment.ID == 0 {
		t.Error("CreateEnrollment() did not assign an id")
	}
	if got := enrollment.EnrollmentDate.Format("2006-01-02"); got != "2025-08-20" {
		t.Errorf("CreateEnrollment() date = %s, want 2025-08-20", got)
	}
	if len(store.enrollments) != 1 {
		t.Errorf("CreateEnrollment() stored %d enrollments, want 1", len(store.enrollments))
	}
}

func TestCreateEnrollmentAccumulatesErrors(t *testing.T) {
	svc, _ := newEnrollmentFixture()

	_, err := svc.CreateEnrollment(context.Background(), &dto.SaveEnrollmentRequest{
		StudentID:      99,
		CourseID:       0,
		EnrollmentDate: "20/08/2025",
		Semester:       "Monsoon",
		AcademicYear:   "2025",
	})
	requireValidationMessages(t, err,
		"Selected student does not exist",
		"Course is required",
		"Invalid enrollment date",
		"Invalid semester",
		"Invalid academic year. Use the format 2024-2025.",
	)
}

func TestCreateEnrollmentDuplicateTerm(t *testing.T) {
	svc, store := newEnrollmentFixture()
	store.enrollments = []*models.Enrollment{{
		ID: 5, StudentID: 1, CourseID: 10,
		Semester: models.SemesterFall, AcademicYear: "2025-2026",
	}}
	store.nextID = 5

	_, err := svc.CreateEnrollment(context.Background(), &dto.SaveEnrollmentRequest{
		StudentID:      1,
		CourseID:       10,
		EnrollmentDate: "2025-08-20",
		Semester:       models.SemesterFall,
		AcademicYear:   "2025-2026",
	})
	if !errors.Is(err, apperrors.ErrDuplicateEnrollment) {
		t.Fatalf("CreateEnrollment() error = %v, want ErrDuplicateEnrollment", err)
	}

	// Same pairing in a different term is fine.
	if _, err := svc.CreateEnrollment(context.Background(), &dto.SaveEnrollmentRequest{
		StudentID:      1,
		CourseID:       10,
		EnrollmentDate: "2026-01-15",
		Semester:       models.SemesterSpring,
		AcademicYear:   "2025-2026",
	}); err != nil {
		t.Errorf("CreateEnrollment() different term error = %v", err)
	}
}

func TestUpdateEnrollmentExcludesOwnRow(t *testing.T) {
	svc, store := newEnrollmentFixture()
	store.enrollments = []*models.Enrollment{{
		ID: 5, StudentID: 1, CourseID: 10,
		EnrollmentDate: time.Now(),
		Semester:       models.SemesterFall, AcademicYear: "2025-2026",
	}}
	store.nextID = 5

	// Re-saving an enrollment with its own tuple must not count as a duplicate.
	updated, err := svc.UpdateEnrollment(context.Background(), 5, &dto.SaveEnrollmentRequest{
		StudentID:      1,
		CourseID:       10,
		EnrollmentDate: "2025-09-01",
		Semester:       models.SemesterFall,
		AcademicYear:   "2025-2026",
	})
	if err != nil {
		t.Fatalf("UpdateEnrollment() error = %v", err)
	}
	if store.lastExcludeID != 5 {
		t.Errorf("UpdateEnrollment() duplicate check excluded id %d, want 5", store.lastExcludeID)
	}
	if got := updated.EnrollmentDate.Format("2006-01-02"); got != "2025-09-01" {
		t.Errorf("UpdateEnrollment() date = %s, want 2025-09-01", got)
	}
}

func TestUpdateEnrollmentNotFound(t *testing.T) {
	svc, _ := newEnrollmentFixture()

	_, err := svc.UpdateEnrollment(context.Background(), 42, &dto.SaveEnrollmentRequest{
		StudentID:      1,
		CourseID:       10,
		EnrollmentDate: "2025-09-01",
		Semester:       models.SemesterFall,
		AcademicYear:   "2025-2026",
	})
	if !errors.Is(err, apperrors.ErrEnrollmentNotFound) {
		t.Errorf("UpdateEnrollment() error = %v, want ErrEnrollmentNotFound", err)
	}
}

func TestSelfEnroll(t *testing.T) {
	svc, store := newEnrollmentFixture()

	enrollment, err := svc.SelfEnroll(context.Background(), 1, &dto.SelfEnrollRequest{
		CourseID:     10,
		Semester:     models.SemesterFall,
		AcademicYear: "2025-2026",
	})
	if err != nil {
		t.Fatalf("SelfEnroll() error = %v", err)
	}
	if enrollment.StudentID != 1 {
		t.Errorf("SelfEnroll() studentId = %d, want 1", enrollment.StudentID)
	}
	if enrollment.EnrollmentDate.IsZero() {
		t.Error("SelfEnroll() left the enrollment date unset")
	}
	if len(store.enrollments) != 1 {
		t.Errorf("SelfEnroll() stored %d enrollments, want 1", len(store.enrollments))
	}
}

func TestSelfEnrollRejectsOtherDepartment(t *testing.T) {
	svc, _ := newEnrollmentFixture()

	// Student 1 is in department 1, course 20 belongs to department 2.
	_, err := svc.SelfEnroll(context.Background(), 1, &dto.SelfEnrollRequest{
		CourseID:     20,
		Semester:     models.SemesterFall,
		AcademicYear: "2025-2026",
	})
	if !errors.Is(err, apperrors.ErrCourseNotAvailable) {
		t.Errorf("SelfEnroll() error = %v, want ErrCourseNotAvailable", err)
	}
}

func TestDeleteEnrollmentNonexistentIsNoOp(t *testing.T) {
	svc, store := newEnrollmentFixture()

	if err := svc.DeleteEnrollment(context.Background(), 42); err != nil {
		t.Errorf("DeleteEnrollment() of a missing id error = %v, want nil", err)
	}
	if len(store.enrollments) != 0 {
		t.Errorf("DeleteEnrollment() changed the store, %d enrollments left", len(store.enrollments))
	}
}

func TestSelfEnrollDuplicate(t *testing.T) {
	svc, store := newEnrollmentFixture()
	store.enrollments = []*models.Enrollment{{
		ID: 5, StudentID: 1, CourseID: 10,
		Semester: models.SemesterFall, AcademicYear: "2025-2026",
	}}
	store.nextID = 5

	_, err := svc.SelfEnroll(context.Background(), 1, &dto.SelfEnrollRequest{
		CourseID:     10,
		Semester:     models.SemesterFall,
		AcademicYear: "2025-2026",
	})
	if !errors.Is(err, apperrors.ErrDuplicateEnrollment) {
		t.Errorf("SelfEnroll() error = %v, want ErrDuplicateEnrollment", err)
	}
}
