package dto

import "github.com/sushrut-patil/college-admission-system/internal/app/models"

// LoginRequest represents login credentials. Identifier is the admin username
// or the student email depending on the submitted role.
type LoginRequest struct {
	Role       models.RoleType `json:"role" binding:"required,oneof=admin student"`
	Identifier string          `json:"identifier" binding:"required"`
	Password   string          `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	TokenType        string `json:"tokenType" example:"Bearer"`
	ExpiresIn        int64  `json:"expiresIn"`
	RefreshExpiresIn int64  `json:"refreshExpiresIn"`
}

// AuthResponse represents a successful authentication response
type AuthResponse struct {
	Token       TokenResponse   `json:"token"`
	AccountID   int64           `json:"accountId"`
	DisplayName string          `json:"displayName"`
	Role        models.RoleType `json:"role"`
}

// RefreshTokenRequest represents a refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RegisterStudentRequest represents student self-registration data. Field
// presence is rechecked in the service so failures accumulate into one list.
type RegisterStudentRequest struct {
	FirstName              string `json:"firstName"`
	LastName               string `json:"lastName"`
	DateOfBirth            string `json:"dob"`
	Phone                  string `json:"phone"`
	Email                  string `json:"email"`
	Password               string `json:"password"`
	ConfirmPassword        string `json:"confirmPassword"`
	DepartmentID           int64  `json:"departmentId"`
	Address                string `json:"address"`
	PreviousQualifications string `json:"previousQualifications"`
}

// RegisterResponse represents the outcome of a successful registration
type RegisterResponse struct {
	StudentID int64  `json:"studentId"`
	Message   string `json:"message"`
}
