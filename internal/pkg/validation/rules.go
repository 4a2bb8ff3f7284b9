package validation

import (
	"regexp"
	"strconv"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Phone number pattern: exactly 10 digits
	PhonePattern = `^[0-9]{10}$`

	// Academic year pattern: "2024-2025"
	AcademicYearPattern = `^\d{4}-\d{4}$`

	// Password min length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email        *regexp.Regexp
	Phone        *regexp.Regexp
	AcademicYear *regexp.Regexp
}{
	Email:        regexp.MustCompile(EmailPattern),
	Phone:        regexp.MustCompile(PhonePattern),
	AcademicYear: regexp.MustCompile(AcademicYearPattern),
}

// IsValidEmail reports whether email is well-formed
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidPhone reports whether phone is exactly 10 digits
func IsValidPhone(phone string) bool {
	return CompiledPatterns.Phone.MatchString(phone)
}

// IsValidAcademicYear reports whether year is a "YYYY-YYYY" span whose second
// year follows the first (e.g. "2024-2025")
func IsValidAcademicYear(year string) bool {
	if !CompiledPatterns.AcademicYear.MatchString(year) {
		return false
	}
	parts := strings.SplitN(year, "-", 2)
	first, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	second, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	return second == first+1
}

// IsValidPassword reports whether password meets the minimum length
func IsValidPassword(password string) bool {
	return len(password) >= PasswordMinLength
}
