package dto

import "github.com/sushrut-patil/college-admission-system/internal/app/models"

// SaveEnrollmentRequest represents admin-side enrollment create/update data.
// Field presence is validated in the service so failures accumulate.
type SaveEnrollmentRequest struct {
	StudentID      int64           `json:"studentId"`
	CourseID       int64           `json:"courseId"`
	EnrollmentDate string          `json:"enrollmentDate"`
	Semester       models.Semester `json:"semester"`
	AcademicYear   string          `json:"academicYear"`
}

// SelfEnrollRequest represents a student enrolling themselves in a course of
// their own department. The enrollment date is the current day.
type SelfEnrollRequest struct {
	CourseID     int64           `json:"courseId" binding:"required,gt=0"`
	Semester     models.Semester `json:"semester" binding:"required"`
	AcademicYear string          `json:"academicYear" binding:"required"`
}
