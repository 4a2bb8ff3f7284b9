package dto

import "github.com/sushrut-patil/college-admission-system/internal/app/models"

// SaveStudentRequest represents admin-side student create/update data.
// Field presence is validated in the service so failures accumulate.
type SaveStudentRequest struct {
	FirstName              string `json:"firstName"`
	LastName               string `json:"lastName"`
	DateOfBirth            string `json:"dob"`
	Phone                  string `json:"phone"`
	Email                  string `json:"email"`
	Password               string `json:"password"`
	DepartmentID           int64  `json:"departmentId"`
	Address                string `json:"address"`
	PreviousQualifications string `json:"previousQualifications"`
}

// StudentListResponse represents a paginated list of students
type StudentListResponse struct {
	Students []*models.Student `json:"students"`
	PaginationInfo
}
