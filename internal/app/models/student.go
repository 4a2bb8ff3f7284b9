package models

import "time"

// Student represents a registered student
type Student struct {
	ID                     int64     `json:"id"`
	FirstName              string    `json:"firstName"`
	LastName               string    `json:"lastName"`
	DateOfBirth            string    `json:"dob"`
	Phone                  string    `json:"phone"`
	Email                  string    `json:"email"`
	Password               string    `json:"-"`
	DepartmentID           int64     `json:"departmentId"`
	Address                string    `json:"address"`
	PreviousQualifications string    `json:"previousQualifications,omitempty"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`

	DepartmentName string `json:"departmentName,omitempty"`
}

// FullName returns the student's display name
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
