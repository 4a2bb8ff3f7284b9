package dto

import "github.com/sushrut-patil/college-admission-system/internal/app/models"

// AdminDashboard carries the quick statistics shown on the admin landing page
type AdminDashboard struct {
	StudentCount    int64   `json:"studentCount"`
	DepartmentCount int64   `json:"departmentCount"`
	CourseCount     int64   `json:"courseCount"`
	TotalFees       float64 `json:"totalFees"`
}

// StudentDashboard carries the student's own profile, enrollments and fee
// payment history
type StudentDashboard struct {
	Student     *models.Student      `json:"student"`
	Enrollments []*models.Enrollment `json:"enrollments"`
	Fees        []*models.Fee        `json:"fees"`
}
