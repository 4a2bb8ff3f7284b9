package services

import (
	"github.com/sushrut-patil/college-admission-system/internal/app/repositories"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService       *AuthService
	DepartmentService *DepartmentService
	StudentService    *StudentService
	CourseService     *CourseService
	EnrollmentService *EnrollmentService
	FeeService        *FeeService
	DashboardService  *DashboardService
}

// NewServices wires every service to its repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		AuthService: NewAuthService(
			repos.AdminRepository,
			repos.StudentRepository,
			repos.DepartmentRepository,
			repos.TokenRepository,
			jwtService,
		),
		DepartmentService: NewDepartmentService(repos.DepartmentRepository),
		StudentService:    NewStudentService(repos.StudentRepository, repos.DepartmentRepository),
		CourseService: NewCourseService(
			repos.CourseRepository,
			repos.DepartmentRepository,
			repos.StudentRepository,
		),
		EnrollmentService: NewEnrollmentService(
			repos.EnrollmentRepository,
			repos.StudentRepository,
			repos.CourseRepository,
		),
		FeeService: NewFeeService(repos.FeeRepository, repos.StudentRepository),
		DashboardService: NewDashboardService(
			repos.StudentRepository,
			repos.DepartmentRepository,
			repos.CourseRepository,
			repos.EnrollmentRepository,
			repos.FeeRepository,
		),
	}
}
