package services

import (
	"context"
	"fmt"

	"github.com/sushrut-patil/college-admission-system/internal/app/models"
	"github.com/sushrut-patil/college-admission-system/internal/app/models/dto"
)

// Counting views over the stores, used for the admin landing page
type studentCounter interface {
	studentLookupStore
	Count(ctx context.Context) (int64, error)
}

type departmentCounter interface {
	Count(ctx context.Context) (int64, error)
}

type courseCounter interface {
	Count(ctx context.Context) (int64, error)
}

type feeTotaler interface {
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Fee, error)
	TotalCollected(ctx context.Context) (float64, error)
}

type enrollmentLister interface {
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
}

// DashboardService assembles the admin and student landing pages
type DashboardService struct {
	studentStore    studentCounter
	departmentStore departmentCounter
	courseStore     courseCounter
	enrollmentStore enrollmentLister
	feeStore        feeTotaler
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(
	studentStore studentCounter,
	departmentStore departmentCounter,
	courseStore courseCounter,
	enrollmentStore enrollmentLister,
	feeStore feeTotaler,
) *DashboardService {
	return &DashboardService{
		studentStore:    studentStore,
		departmentStore: departmentStore,
		courseStore:     courseStore,
		enrollmentStore: enrollmentStore,
		feeStore:        feeStore,
	}
}

// GetAdminDashboard returns the quick statistics for the admin landing page
func (s *DashboardService) GetAdminDashboard(ctx context.Context) (*dto.AdminDashboard, error) {
	studentCount, err := s.studentStore.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}

	departmentCount, err := s.departmentStore.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting departments: %w", err)
	}

	courseCount, err := s.courseStore.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting courses: %w", err)
	}

	totalFees, err := s.feeStore.TotalCollected(ctx)
	if err != nil {
		return nil, fmt.Errorf("error totaling fees: %w", err)
	}

	return &dto.AdminDashboard{
		StudentCount:    studentCount,
		DepartmentCount: departmentCount,
		CourseCount:     courseCount,
		TotalFees:       totalFees,
	}, nil
}

// GetStudentDashboard returns the student's own profile together with their
// enrollments and fee payment history
func (s *DashboardService) GetStudentDashboard(ctx context.Context, studentID int64) (*dto.StudentDashboard, error) {
	student, err := s.studentStore.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentStore.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}

	fees, err := s.feeStore.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing fee payments: %w", err)
	}

	return &dto.StudentDashboard{
		Student:     student,
		Enrollments: enrollments,
		Fees:        fees,
	}, nil
}
