package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	AdminRepository      *AdminRepository
	StudentRepository    *StudentRepository
	DepartmentRepository *DepartmentRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
	FeeRepository        *FeeRepository
	TokenRepository      *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminRepository:      NewAdminRepository(db),
		StudentRepository:    NewStudentRepository(db),
		DepartmentRepository: NewDepartmentRepository(db),
		CourseRepository:     NewCourseRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		FeeRepository:        NewFeeRepository(db),
		TokenRepository:      NewTokenRepository(db),
	}
}
