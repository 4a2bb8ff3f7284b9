package helpers

import (
	"testing"
	"time"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 20, 0, 20},
		{"third page", 3, 10, 20, 10},
		{"zero page defaults to first", 0, 10, 0, 10},
		{"oversized page size falls back", 1, MaxPageSize + 1, 0, DefaultPageSize},
		{"zero size falls back", 2, 0, DefaultPageSize, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Errorf("CalculateOffsetLimit(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.size, offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(45, 2, 20)
	if info.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", info.TotalPages)
	}
	if info.CurrentPage != 2 {
		t.Errorf("CurrentPage = %d, want 2", info.CurrentPage)
	}
	if info.TotalItems != 45 {
		t.Errorf("TotalItems = %d, want 45", info.TotalItems)
	}

	empty := NewPaginationInfo(0, 1, 20)
	if empty.TotalPages != 1 {
		t.Errorf("TotalPages for empty list = %d, want 1", empty.TotalPages)
	}

	clamped := NewPaginationInfo(10, 5, 20)
	if clamped.CurrentPage != 1 {
		t.Errorf("CurrentPage past the end = %d, want 1", clamped.CurrentPage)
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("90m", time.Hour); got != 90*time.Minute {
		t.Errorf("ParseDuration(90m) = %v, want 90m", got)
	}
	if got := ParseDuration("", time.Hour); got != time.Hour {
		t.Errorf("ParseDuration empty = %v, want fallback", got)
	}
	if got := ParseDuration("bogus", time.Hour); got != time.Hour {
		t.Errorf("ParseDuration bogus = %v, want fallback", got)
	}
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-08-15")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if DateOnly(date) != "2025-08-15" {
		t.Errorf("DateOnly = %q, want 2025-08-15", DateOnly(date))
	}

	if _, err := ParseDate("15/08/2025"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}
