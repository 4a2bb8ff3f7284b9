package models

import "time"

// Fee represents a fee payment made by a student
type Fee struct {
	ID            int64         `json:"id"`
	StudentID     int64         `json:"studentId"`
	Amount        float64       `json:"amount"`
	PaymentDate   time.Time     `json:"paymentDate"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	AcademicYear  string        `json:"academicYear"`
	CreatedAt     time.Time     `json:"createdAt"`

	StudentName    string `json:"studentName,omitempty"`
	StudentEmail   string `json:"studentEmail,omitempty"`
	DepartmentName string `json:"departmentName,omitempty"`
}
