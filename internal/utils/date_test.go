package utils_test

import (
	"testing"
	"time"

	"github.com/bugstack-dev/bugstack/internal/utils"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"2024-12-01", "2024-12-01"},
		{"  2024-01-15  ", "2024-01-15"},
		{"2024-06-01T10:30:00Z", "2024-06-01"},
		{"2024-06-01T23:00:00+02:00", "2024-06-01"},
	}

	for _, tc := range cases {
		got, err := utils.ParseDate(tc.input)
		if err != nil {
			t.Errorf("ParseDate(%q): unexpected error %v", tc.input, err)
			continue
		}
		if d := got.Format("2006-01-02"); d != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.input, d, tc.want)
		}
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "   ", "next tuesday", "01/15/2024", "2024-13-01"} {
		if _, err := utils.ParseDate(input); err == nil {
			t.Errorf("ParseDate(%q): expected error", input)
		}
	}
}

func TestParseDateAllowsPastDates(t *testing.T) {
	// Due dates before the current time are deliberately accepted.
	got, err := utils.ParseDate("1999-01-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !got.Before(time.Now()) {
		t.Errorf("expected a date in the past, got %v", got)
	}
}
