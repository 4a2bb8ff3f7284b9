package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sushrut-patil/college-admission-system/internal/app/models"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/apperrors"
)

// In-memory store fakes shared by the service tests.

type fakeAdminStore struct {
	admins []*models.Admin
}

func (f *fakeAdminStore) GetByUsername(_ context.Context, username string) (*models.Admin, error) {
	for _, a := range f.admins {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (f *fakeAdminStore) GetByID(_ context.Context, id int64) (*models.Admin, error) {
	for _, a := range f.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

type fakeStudentStore struct {
	students []*models.Student
	nextID   int64
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	for _, s := range f.students {
		if s.ID == id {
			// Return a copy, like the real repository scanning a fresh row,
			// so callers mutating the result don't alias the stored record.
			student := *s
			return &student, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range f.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) EmailExists(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, s := range f.students {
		if s.Email == email && s.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	for _, s := range f.students {
		if s.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	student.ID = f.nextID
	student.CreatedAt = time.Now()
	student.UpdatedAt = student.CreatedAt
	f.students = append(f.students, student)
	return nil
}

func (f *fakeStudentStore) GetAll(_ context.Context, offset uint64, limit int) ([]*models.Student, int64, error) {
	total := int64(len(f.students))
	start := int(offset)
	if start > len(f.students) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(f.students) {
		end = len(f.students)
	}
	return f.students[start:end], total, nil
}

func (f *fakeStudentStore) Update(_ context.Context, student *models.Student) error {
	for i, s := range f.students {
		if s.ID == student.ID {
			if student.Password == "" {
				student.Password = s.Password
			}
			f.students[i] = student
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	for i, s := range f.students {
		if s.ID == id {
			f.students = append(f.students[:i], f.students[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeStudentStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.students)), nil
}

type fakeDepartmentStore struct {
	departments []*models.Department
	nextID      int64
	deleteErr   error
}

func (f *fakeDepartmentStore) GetByID(_ context.Context, id int64) (*models.Department, error) {
	for _, d := range f.departments {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func (f *fakeDepartmentStore) GetAll(_ context.Context) ([]*models.Department, error) {
	return f.departments, nil
}

func (f *fakeDepartmentStore) ExistsByNameOrCode(_ context.Context, name, code string, excludeID int64) (bool, error) {
	for _, d := range f.departments {
		if d.ID == excludeID {
			continue
		}
		if d.Name == name || d.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDepartmentStore) Create(_ context.Context, department *models.Department) error {
	f.nextID++
	department.ID = f.nextID
	f.departments = append(f.departments, department)
	return nil
}

func (f *fakeDepartmentStore) Update(_ context.Context, department *models.Department) error {
	for i, d := range f.departments {
		if d.ID == department.ID {
			f.departments[i] = department
			return nil
		}
	}
	return apperrors.ErrDepartmentNotFound
}

func (f *fakeDepartmentStore) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, d := range f.departments {
		if d.ID == id {
			f.departments = append(f.departments[:i], f.departments[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeDepartmentStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.departments)), nil
}

type fakeCourseStore struct {
	courses []*models.Course
	catalog []*models.CatalogCourse
	nextID  int64

	catalogDepartmentID int64
	catalogStudentID    int64
}

func (f *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	for _, c := range f.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (f *fakeCourseStore) GetAll(_ context.Context, departmentID *int64) ([]*models.Course, error) {
	if departmentID == nil {
		return f.courses, nil
	}
	var out []*models.Course
	for _, c := range f.courses {
		if c.DepartmentID == *departmentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourseStore) ListCatalog(_ context.Context, departmentID, studentID int64) ([]*models.CatalogCourse, error) {
	f.catalogDepartmentID = departmentID
	f.catalogStudentID = studentID
	return f.catalog, nil
}

func (f *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	f.nextID++
	course.ID = f.nextID
	f.courses = append(f.courses, course)
	return nil
}

func (f *fakeCourseStore) Update(_ context.Context, course *models.Course) error {
	for i, c := range f.courses {
		if c.ID == course.ID {
			f.courses[i] = course
			return nil
		}
	}
	return apperrors.ErrCourseNotFound
}

func (f *fakeCourseStore) Delete(_ context.Context, id int64) error {
	for i, c := range f.courses {
		if c.ID == id {
			f.courses = append(f.courses[:i], f.courses[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCourseStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.courses)), nil
}

type fakeEnrollmentStore struct {
	enrollments []*models.Enrollment
	nextID      int64

	lastExcludeID int64
}

func (f *fakeEnrollmentStore) GetByID(_ context.Context, id int64) (*models.Enrollment, error) {
	for _, e := range f.enrollments {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, apperrors.ErrEnrollmentNotFound
}

func (f *fakeEnrollmentStore) GetAll(_ context.Context) ([]*models.Enrollment, error) {
	return f.enrollments, nil
}

func (f *fakeEnrollmentStore) ListByStudent(_ context.Context, studentID int64) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for _, e := range f.enrollments {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentStore) ExistsForTerm(_ context.Context, studentID, courseID int64, semester models.Semester, academicYear string, excludeID int64) (bool, error) {
	f.lastExcludeID = excludeID
	for _, e := range f.enrollments {
		if e.ID == excludeID {
			continue
		}
		if e.StudentID == studentID && e.CourseID == courseID &&
			e.Semester == semester && e.AcademicYear == academicYear {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEnrollmentStore) Create(_ context.Context, enrollment *models.Enrollment) error {
	f.nextID++
	enrollment.ID = f.nextID
	f.enrollments = append(f.enrollments, enrollment)
	return nil
}

func (f *fakeEnrollmentStore) Update(_ context.Context, enrollment *models.Enrollment) error {
	for i, e := range f.enrollments {
		if e.ID == enrollment.ID {
			f.enrollments[i] = enrollment
			return nil
		}
	}
	return apperrors.ErrEnrollmentNotFound
}

func (f *fakeEnrollmentStore) Delete(_ context.Context, id int64) error {
	for i, e := range f.enrollments {
		if e.ID == id {
			f.enrollments = append(f.enrollments[:i], f.enrollments[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeFeeStore struct {
	fees   []*models.Fee
	nextID int64
}

func (f *fakeFeeStore) GetByID(_ context.Context, id int64) (*models.Fee, error) {
	for _, fee := range f.fees {
		if fee.ID == id {
			return fee, nil
		}
	}
	return nil, apperrors.ErrFeeNotFound
}

func (f *fakeFeeStore) GetAll(_ context.Context) ([]*models.Fee, error) {
	return f.fees, nil
}

func (f *fakeFeeStore) ListByStudent(_ context.Context, studentID int64) ([]*models.Fee, error) {
	var out []*models.Fee
	for _, fee := range f.fees {
		if fee.StudentID == studentID {
			out = append(out, fee)
		}
	}
	return out, nil
}

func (f *fakeFeeStore) Create(_ context.Context, fee *models.Fee) error {
	f.nextID++
	fee.ID = f.nextID
	fee.CreatedAt = time.Now()
	f.fees = append(f.fees, fee)
	return nil
}

func (f *fakeFeeStore) Update(_ context.Context, fee *models.Fee) error {
	for i, existing := range f.fees {
		if existing.ID == fee.ID {
			f.fees[i] = fee
			return nil
		}
	}
	return apperrors.ErrFeeNotFound
}

func (f *fakeFeeStore) Delete(_ context.Context, id int64) error {
	for i, fee := range f.fees {
		if fee.ID == id {
			f.fees = append(f.fees[:i], f.fees[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeFeeStore) TotalCollected(_ context.Context) (float64, error) {
	var total float64
	for _, fee := range f.fees {
		total += fee.Amount
	}
	return total, nil
}

type fakeTokenStore struct {
	tokens map[string]fakeTokenRecord
}

type fakeTokenRecord struct {
	accountID int64
	role      models.RoleType
	expiry    time.Time
	revoked   bool
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]fakeTokenRecord)}
}

func (f *fakeTokenStore) CreateToken(_ context.Context, token string, accountID int64, role models.RoleType, expiryDate time.Time) error {
	f.tokens[token] = fakeTokenRecord{accountID: accountID, role: role, expiry: expiryDate}
	return nil
}

func (f *fakeTokenStore) GetTokenByValue(_ context.Context, token string) (int64, models.RoleType, error) {
	record, ok := f.tokens[token]
	if !ok {
		return 0, "", apperrors.ErrTokenNotFound
	}
	if record.revoked {
		return 0, "", apperrors.ErrTokenRevoked
	}
	if record.expiry.Before(time.Now()) {
		return 0, "", apperrors.ErrTokenExpired
	}
	return record.accountID, record.role, nil
}

func (f *fakeTokenStore) RevokeToken(_ context.Context, token string) error {
	record, ok := f.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	record.revoked = true
	f.tokens[token] = record
	return nil
}

// requireValidationMessages asserts that err is an accumulated validation
// failure containing every wanted message
func requireValidationMessages(t *testing.T, err error, want ...string) {
	t.Helper()

	if err == nil {
		t.Fatal("expected a validation error, got nil")
	}
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}

	msg := err.Error()
	for _, w := range want {
		if !strings.Contains(msg, w) {
			t.Errorf("validation error %q missing message %q", msg, w)
		}
	}
}
