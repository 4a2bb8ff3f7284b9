package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sushrut-patil/college-admission-system/internal/app/models/dto"
	"github.com/sushrut-patil/college-admission-system/internal/app/services"
	"github.com/sushrut-patil/college-admission-system/internal/middleware"
)

// PortalController serves the student self-service routes under /me. The
// acting student is always the authenticated account; ids in the request
// body or path are never trusted for identity.
type PortalController struct {
	dashboardService  *services.DashboardService
	courseService     *services.CourseService
	enrollmentService *services.EnrollmentService
}

// NewPortalController creates a new PortalController
func NewPortalController(
	dashboardService *services.DashboardService,
	courseService *services.CourseService,
	enrollmentService *services.EnrollmentService,
) *PortalController {
	return &PortalController{
		dashboardService:  dashboardService,
		courseService:     courseService,
		enrollmentService: enrollmentService,
	}
}

// GetDashboard returns the student's profile, enrollments and fee history
func (c *PortalController) GetDashboard(ctx *gin.Context) {
	studentID := middleware.AccountID(ctx)

	dashboard, err := c.dashboardService.GetStudentDashboard(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dashboard))
}

// GetCourseCatalog lists the courses of the student's department with
// enrollment counts and the student's own enrollment flag
func (c *PortalController) GetCourseCatalog(ctx *gin.Context) {
	studentID := middleware.AccountID(ctx)

	catalog, err := c.courseService.GetCatalogForStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(catalog))
}

// GetEnrollments lists the student's own enrollments
func (c *PortalController) GetEnrollments(ctx *gin.Context) {
	studentID := middleware.AccountID(ctx)

	enrollments, err := c.enrollmentService.GetEnrollmentsForStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollments))
}

// Enroll enrolls the student in a course of their own department
func (c *PortalController) Enroll(ctx *gin.Context) {
	studentID := middleware.AccountID(ctx)

	var req dto.SelfEnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	enrollment, err := c.enrollmentService.SelfEnroll(ctx, studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(enrollment))
}
