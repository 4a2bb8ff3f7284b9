package models

import "time"

// Course represents a course offered by a department
type Course struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	DepartmentID int64     `json:"departmentId"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`

	DepartmentName  string `json:"departmentName,omitempty"`
	EnrollmentCount int64  `json:"enrollmentCount,omitempty"`
}

// CatalogCourse is a course as seen by a browsing student: annotated with the
// live enrolled-student count and whether the requesting student already
// holds an enrollment in it.
type CatalogCourse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	EnrolledStudents int64  `json:"enrolledStudents"`
	Enrolled         bool   `json:"enrolled"`
}
