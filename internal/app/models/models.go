package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "admin"
	RoleStudent RoleType = "student"
)

// Semester represents an academic term label
type Semester string

// Semester constants
const (
	SemesterFall   Semester = "Fall"
	SemesterSpring Semester = "Spring"
	SemesterSummer Semester = "Summer"
	SemesterWinter Semester = "Winter"
)

// Semesters lists the accepted term labels
var Semesters = []Semester{SemesterFall, SemesterSpring, SemesterSummer, SemesterWinter}

// IsValidSemester reports whether s is one of the accepted term labels
func IsValidSemester(s Semester) bool {
	for _, v := range Semesters {
		if v == s {
			return true
		}
	}
	return false
}

// PaymentMethod represents how a fee payment was made
type PaymentMethod string

// Payment method constants
const (
	PaymentCash         PaymentMethod = "Cash"
	PaymentCreditCard   PaymentMethod = "Credit Card"
	PaymentBankTransfer PaymentMethod = "Bank Transfer"
	PaymentOnline       PaymentMethod = "Online"
)

// PaymentMethods lists the accepted payment methods
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentCreditCard, PaymentBankTransfer, PaymentOnline}

// IsValidPaymentMethod reports whether m is one of the accepted payment methods
func IsValidPaymentMethod(m PaymentMethod) bool {
	for _, v := range PaymentMethods {
		if v == m {
			return true
		}
	}
	return false
}
