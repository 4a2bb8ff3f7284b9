package dto

// SaveCourseRequest represents course create/update data
type SaveCourseRequest struct {
	Name         string `json:"name" binding:"required"`
	DepartmentID int64  `json:"departmentId" binding:"required,gt=0"`
	Description  string `json:"description"`
}
