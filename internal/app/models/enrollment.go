package models

import "time"

// Enrollment associates one student with one course for a given semester and
// academic year. The (student, course, semester, academic year) tuple is
// unique, enforced by a database constraint.
type Enrollment struct {
	ID             int64     `json:"id"`
	StudentID      int64     `json:"studentId"`
	CourseID       int64     `json:"courseId"`
	EnrollmentDate time.Time `json:"enrollmentDate"`
	Semester       Semester  `json:"semester"`
	AcademicYear   string    `json:"academicYear"`

	StudentName string `json:"studentName,omitempty"`
	CourseName  string `json:"courseName,omitempty"`
}
