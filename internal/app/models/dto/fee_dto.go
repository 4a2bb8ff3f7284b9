package dto

import "github.com/sushrut-patil/college-admission-system/internal/app/models"

// SaveFeeRequest represents fee payment create/update data
type SaveFeeRequest struct {
	StudentID     int64                `json:"studentId"`
	Amount        float64              `json:"amount"`
	PaymentDate   string               `json:"paymentDate"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	AcademicYear  string               `json:"academicYear"`
}
