package utils

import (
	"errors"
	"strings"
	"time"
)

// ParseDate accepts the bare calendar form used by date inputs
// ("2024-12-01") as well as full RFC 3339 timestamps.
func ParseDate(input string) (time.Time, error) {
	value := strings.TrimSpace(input)

	if value == "" {
		return time.Time{}, errors.New("date cannot be empty")
	}

	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	return time.Time{}, errors.New("invalid date format, expected YYYY-MM-DD or RFC 3339")
}
