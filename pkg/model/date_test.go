package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "calendar date",
			input: `"2025-06-10"`,
			want:  time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 timestamp",
			input: `"2025-06-10T15:04:05Z"`,
			want:  time.Date(2025, time.June, 10, 15, 4, 5, 0, time.UTC),
		},
		{
			name:  "null is zero",
			input: `null`,
			want:  time.Time{},
		},
		{
			name:    "free text rejected",
			input:   `"June 10th"`,
			wantErr: true,
		},
		{
			name:    "partial date rejected",
			input:   `"2025-06"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !d.Time.Equal(tt.want) {
				t.Errorf("got %v, want %v", d.Time, tt.want)
			}
		})
	}
}

func TestDateMarshalJSON(t *testing.T) {
	d := NewDate(time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC))
	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != `"2025-06-10"` {
		t.Errorf("got %s, want \"2025-06-10\"", out)
	}

	var zero Date
	out, err = json.Marshal(zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "null" {
		t.Errorf("zero date should marshal as null, got %s", out)
	}
}
