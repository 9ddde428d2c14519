package services

import (
	"testing"
	"time"
)

func TestNormalizeTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "UTC with Z and milliseconds",
			in:   "2024-01-01T00:00:00.000Z",
			want: "2024-01-01 08:00:00",
		},
		{
			name: "UTC with Z no fraction",
			in:   "2024-01-01T00:00:00Z",
			want: "2024-01-01 08:00:00",
		},
		{
			name: "naive ISO no suffix",
			in:   "2024-06-15T20:30:45",
			want: "2024-06-16 04:30:45",
		},
		{
			name: "microseconds as stored by ingest",
			in:   "2024-06-15T20:30:45.123456",
			want: "2024-06-16 04:30:45",
		},
		{
			name: "day rollover across midnight",
			in:   "2024-12-31T17:00:00Z",
			want: "2025-01-01 01:00:00",
		},
		{
			name: "malformed passes through",
			in:   "not-a-date",
			want: "not-a-date",
		},
		{
			name: "empty passes through",
			in:   "",
			want: "",
		},
		{
			name: "date only passes through",
			in:   "2024-01-01",
			want: "2024-01-01",
		},
		{
			name: "already normalized passes through",
			in:   "2024-01-01 08:00:00",
			want: "2024-01-01 08:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTimestamp(tt.in); got != tt.want {
				t.Errorf("NormalizeTimestamp(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStoredTimestamp(t *testing.T) {
	at := time.Date(2024, 6, 15, 20, 30, 45, 123456000, time.UTC)
	got := StoredTimestamp(at)
	if got != "2024-06-15T20:30:45.123456" {
		t.Errorf("StoredTimestamp() = %q", got)
	}

	// What ingest stores must normalize cleanly.
	if norm := NormalizeTimestamp(got); norm != "2024-06-16 04:30:45" {
		t.Errorf("NormalizeTimestamp(StoredTimestamp()) = %q", norm)
	}
}
