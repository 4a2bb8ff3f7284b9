package models

// Department represents an organizational unit owning students and courses
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`

	// Display-only aggregates, populated by list queries
	StudentCount int64 `json:"studentCount,omitempty"`
	CourseCount  int64 `json:"courseCount,omitempty"`
}
