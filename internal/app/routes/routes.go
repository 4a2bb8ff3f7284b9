package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sushrut-patil/college-admission-system/internal/app/controllers"
	"github.com/sushrut-patil/college-admission-system/internal/app/models"
	"github.com/sushrut-patil/college-admission-system/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	departmentController *controllers.DepartmentController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	feeController *controllers.FeeController,
	dashboardController *controllers.DashboardController,
	portalController *controllers.PortalController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	// Departments are readable without authentication so the registration
	// form can offer the department list.
	v1.GET("/departments", departmentController.GetAllDepartments)
	v1.GET("/departments/:id", departmentController.GetDepartmentByID)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Admin-only management routes
	admin := authenticated.Group("")
	admin.Use(authMiddleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/dashboard", dashboardController.GetAdminDashboard)

		departments := admin.Group("/departments")
		{
			departments.POST("", departmentController.CreateDepartment)
			departments.PUT("/:id", departmentController.UpdateDepartment)
			departments.DELETE("/:id", departmentController.DeleteDepartment)
		}

		students := admin.Group("/students")
		{
			students.GET("", studentController.GetAllStudents)
			students.GET("/:id", studentController.GetStudentByID)
			students.POST("", studentController.CreateStudent)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
		}

		courses := admin.Group("/courses")
		{
			courses.GET("", courseController.GetAllCourses)
			courses.GET("/:id", courseController.GetCourseByID)
			courses.POST("", courseController.CreateCourse)
			courses.PUT("/:id", courseController.UpdateCourse)
			courses.DELETE("/:id", courseController.DeleteCourse)
		}

		enrollments := admin.Group("/enrollments")
		{
			enrollments.GET("", enrollmentController.GetAllEnrollments)
			enrollments.GET("/:id", enrollmentController.GetEnrollmentByID)
			enrollments.POST("", enrollmentController.CreateEnrollment)
			enrollments.PUT("/:id", enrollmentController.UpdateEnrollment)
			enrollments.DELETE("/:id", enrollmentController.DeleteEnrollment)
		}

		fees := admin.Group("/fees")
		{
			fees.GET("", feeController.GetAllFees)
			fees.GET("/:id", feeController.GetFeeByID)
			fees.POST("", feeController.CreateFee)
			fees.PUT("/:id", feeController.UpdateFee)
			fees.DELETE("/:id", feeController.DeleteFee)
		}
	}

	// Student self-service routes
	me := authenticated.Group("/me")
	me.Use(authMiddleware.RequireRole(models.RoleStudent))
	{
		me.GET("/dashboard", portalController.GetDashboard)
		me.GET("/courses", portalController.GetCourseCatalog)
		me.GET("/enrollments", portalController.GetEnrollments)
		me.POST("/enrollments", portalController.Enroll)
	}
}
