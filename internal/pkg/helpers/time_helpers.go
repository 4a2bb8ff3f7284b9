package helpers

import "time"

// ParseDuration parses a duration string, falling back to a default on error
// or empty input.
func ParseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

// DateOnly formats a time as "2006-01-02"
func DateOnly(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDate parses a "2006-01-02" date string
func ParseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
