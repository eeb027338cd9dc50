package locale

import (
	"testing"
	"time"
)

func TestFormatShortDate(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "regular date",
			input:    time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
			expected: "Jun 10, 2025",
		},
		{
			name:     "single digit day has no padding",
			input:    time.Date(2025, time.December, 3, 0, 0, 0, 0, time.UTC),
			expected: "Dec 3, 2025",
		},
		{
			name:     "zero time renders empty",
			input:    time.Time{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatShortDate(tt.input); got != tt.expected {
				t.Errorf("FormatShortDate(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
