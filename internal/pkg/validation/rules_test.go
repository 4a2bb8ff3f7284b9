package validation

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"student@example.com",
		"first.last@college.edu",
		"user+tag@sub.domain.org",
	}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@missing-local.com",
		"missing-at.example.com",
		"user@",
		"user@domain",
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	if !IsValidPhone("9876543210") {
		t.Error("expected 10-digit phone to be valid")
	}

	invalid := []string{
		"",
		"12345",
		"12345678901",
		"98765-4321",
		"abcdefghij",
		"987654321 ",
	}
	for _, phone := range invalid {
		if IsValidPhone(phone) {
			t.Errorf("expected %q to be invalid", phone)
		}
	}
}

func TestIsValidAcademicYear(t *testing.T) {
	if !IsValidAcademicYear("2024-2025") {
		t.Error("expected 2024-2025 to be valid")
	}

	invalid := []string{
		"",
		"2024",
		"2024-2026",
		"2025-2024",
		"2024/2025",
		"24-25",
	}
	for _, year := range invalid {
		if IsValidAcademicYear(year) {
			t.Errorf("expected %q to be invalid", year)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	if IsValidPassword("short") {
		t.Error("expected password under 8 characters to be invalid")
	}
	if !IsValidPassword("longenough") {
		t.Error("expected 8+ character password to be valid")
	}
}
