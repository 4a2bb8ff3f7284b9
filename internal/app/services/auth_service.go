package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sushrut-patil/college-admission-system/internal/app/models"
	"github.com/sushrut-patil/college-admission-system/internal/app/models/dto"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/apperrors"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/auth"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/logger"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/validation"
)

// Stores the auth service reads accounts and tokens through. Satisfied by the
// repositories package.
type adminAccountStore interface {
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
}

type studentAccountStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	Create(ctx context.Context, student *models.Student) error
}

type departmentLookupStore interface {
	GetByID(ctx context.Context, id int64) (*models.Department, error)
}

type tokenStore interface {
	CreateToken(ctx context.Context, token string, accountID int64, role models.RoleType, expiryDate time.Time) error
	GetTokenByValue(ctx context.Context, token string) (int64, models.RoleType, error)
	RevokeToken(ctx context.Context, token string) error
}

// AuthService handles authentication and student self-registration
type AuthService struct {
	adminStore      adminAccountStore
	studentStore    studentAccountStore
	departmentStore departmentLookupStore
	tokenStore      tokenStore
	jwtService      *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(
	adminStore adminAccountStore,
	studentStore studentAccountStore,
	departmentStore departmentLookupStore,
	tokenStore tokenStore,
	jwtService *auth.JWTService,
) *AuthService {
	return &AuthService{
		adminStore:      adminStore,
		studentStore:    studentStore,
		departmentStore: departmentStore,
		tokenStore:      tokenStore,
		jwtService:      jwtService,
	}
}

// Login authenticates an account. The role in the request decides which
// account table the identifier is checked against: admins log in with a
// username, students with their email. All failure modes surface as the same
// invalid-credentials error.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var (
		accountID   int64
		displayName string
		storedHash  string
	)

	switch req.Role {
	case models.RoleAdmin:
		admin, err := s.adminStore.GetByUsername(ctx, strings.TrimSpace(req.Identifier))
		if err != nil {
			if errors.Is(err, apperrors.ErrResourceNotFound) {
				return nil, apperrors.ErrInvalidCredentials
			}
			return nil, fmt.Errorf("error looking up admin: %w", err)
		}
		accountID = admin.ID
		displayName = admin.Username
		storedHash = admin.Password

	case models.RoleStudent:
		student, err := s.studentStore.GetByEmail(ctx, strings.TrimSpace(req.Identifier))
		if err != nil {
			if errors.Is(err, apperrors.ErrStudentNotFound) {
				return nil, apperrors.ErrInvalidCredentials
			}
			return nil, fmt.Errorf("error looking up student: %w", err)
		}
		accountID = student.ID
		displayName = student.FullName()
		storedHash = student.Password

	default:
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(storedHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, accountID, displayName, req.Role)
}

// Register creates a new student account from a self-registration form. All
// field problems are collected and reported together rather than failing on
// the first one.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.RegisterResponse, error) {
	verrs := dto.NewValidationErrors()

	if strings.TrimSpace(req.FirstName) == "" {
		verrs.Add("firstName", "First name is required")
	}
	if strings.TrimSpace(req.LastName) == "" {
		verrs.Add("lastName", "Last name is required")
	}

	if strings.TrimSpace(req.DateOfBirth) == "" {
		verrs.Add("dob", "Date of birth is required")
	} else if _, err := time.Parse("2006-01-02", req.DateOfBirth); err != nil {
		verrs.Add("dob", "Invalid date of birth")
	}

	if strings.TrimSpace(req.Phone) == "" {
		verrs.Add("phone", "Phone number is required")
	} else if !validation.IsValidPhone(req.Phone) {
		verrs.Add("phone", "Invalid phone number. Must be 10 digits.")
	}

	email := strings.TrimSpace(req.Email)
	switch {
	case email == "":
		verrs.Add("email", "Email is required")
	case !validation.IsValidEmail(email):
		verrs.Add("email", "Invalid email format")
	default:
		exists, err := s.studentStore.EmailExists(ctx, email, 0)
		if err != nil {
			return nil, fmt.Errorf("error checking email: %w", err)
		}
		if exists {
			verrs.Add("email", "Email already exists in the system")
		}
	}

	if req.Password == "" {
		verrs.Add("password", "Password is required")
	} else if !validation.IsValidPassword(req.Password) {
		verrs.Add("password", "Password must be at least 8 characters long")
	}
	if req.Password != req.ConfirmPassword {
		verrs.Add("confirmPassword", "Passwords do not match")
	}

	if req.DepartmentID <= 0 {
		verrs.Add("departmentId", "Department is required")
	} else {
		if _, err := s.departmentStore.GetByID(ctx, req.DepartmentID); err != nil {
			if errors.Is(err, apperrors.ErrDepartmentNotFound) {
				verrs.Add("departmentId", "Selected department does not exist")
			} else {
				return nil, fmt.Errorf("error checking department: %w", err)
			}
		}
	}

	if strings.TrimSpace(req.Address) == "" {
		verrs.Add("address", "Address is required")
	}

	if verrs.HasErrors() {
		return nil, validationError(verrs)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		FirstName:              strings.TrimSpace(req.FirstName),
		LastName:               strings.TrimSpace(req.LastName),
		DateOfBirth:            req.DateOfBirth,
		Phone:                  req.Phone,
		Email:                  email,
		Password:               hashed,
		DepartmentID:           req.DepartmentID,
		Address:                strings.TrimSpace(req.Address),
		PreviousQualifications: strings.TrimSpace(req.PreviousQualifications),
	}

	if err := s.studentStore.Create(ctx, student); err != nil {
		// The unique constraint closes the race between the EmailExists
		// check and the insert.
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			verrs.Add("email", "Email already exists in the system")
			return nil, validationError(verrs)
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	logger.Info().Int64("studentId", student.ID).Msg("Student registered")

	return &dto.RegisterResponse{
		StudentID: student.ID,
		Message:   "Registration successful. Please log in.",
	}, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair. The used
// token is revoked so each refresh token works exactly once.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	accountID, role, err := s.tokenStore.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	var displayName string
	switch role {
	case models.RoleAdmin:
		admin, err := s.adminStore.GetByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrResourceNotFound) {
				return nil, apperrors.ErrTokenInvalid
			}
			return nil, fmt.Errorf("error looking up admin: %w", err)
		}
		displayName = admin.Username
	case models.RoleStudent:
		student, err := s.studentStore.GetByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrStudentNotFound) {
				return nil, apperrors.ErrTokenInvalid
			}
			return nil, fmt.Errorf("error looking up student: %w", err)
		}
		displayName = student.FullName()
	default:
		return nil, apperrors.ErrTokenInvalid
	}

	if err := s.tokenStore.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("error revoking refresh token: %w", err)
	}

	return s.issueTokens(ctx, accountID, displayName, role)
}

// Logout revokes a refresh token. A token that is already gone is not an
// error from the caller's point of view.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	err := s.tokenStore.RevokeToken(ctx, refreshToken)
	if err != nil && !errors.Is(err, apperrors.ErrTokenNotFound) {
		return fmt.Errorf("error revoking refresh token: %w", err)
	}
	return nil
}

// issueTokens generates a token pair and persists the refresh half
func (s *AuthService) issueTokens(ctx context.Context, accountID int64, displayName string, role models.RoleType) (*dto.AuthResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(accountID, displayName, role)
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	expiry := s.jwtService.GetRefreshTokenExpiry()
	if err := s.tokenStore.CreateToken(ctx, refreshToken, accountID, role, expiry); err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:      accessToken,
			RefreshToken:     refreshToken,
			TokenType:        "Bearer",
			ExpiresIn:        int64(expiresIn),
			RefreshExpiresIn: int64(refreshExpiresIn),
		},
		AccountID:   accountID,
		DisplayName: displayName,
		Role:        role,
	}, nil
}

// validationError wraps an accumulated validation list into an error the
// HTTP layer maps to a 400 with the full list attached.
func validationError(verrs *dto.ValidationErrors) error {
	return &apperrors.CustomError{
		Err:     apperrors.ErrValidationFailed,
		Message: strings.Join(verrs.Messages(), "; "),
		Details: map[string]interface{}{"errors": verrs.Errors},
	}
}
