package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sushrut-patil/college-admission-system/internal/app/models/dto"
)

// Controllers defined in this package:
// - AuthController: login, registration and token refresh
// - DepartmentController: department management
// - StudentController: admin-side student management
// - CourseController: course management
// - EnrollmentController: admin-side enrollment management
// - FeeController: fee payment records
// - DashboardController: admin statistics
// - PortalController: student self-service routes under /me

// parseIDParam extracts a numeric path parameter. On failure it writes a 400
// and returns false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
