package utils

import (
	"testing"
	"time"
)

func TestParseISOTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"rfc3339", "2026-09-05T19:00:00Z", false},
		{"rfc3339 with offset", "2026-09-05T19:00:00+02:00", false},
		{"zone-less datetime", "2026-09-05T19:00:00", false},
		{"datetime-local input", "2026-09-05T19:00", false},
		{"date only", "2026-09-05", false},
		{"padded", "  2026-09-05T19:00:00Z ", false},
		{"garbage", "next tuesday", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseISOTime(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tt.wantErr)
			}
			if !tt.wantErr && got.IsZero() {
				t.Error("parsed time is zero")
			}
		})
	}
}

func TestParseISOTimeKeepsValue(t *testing.T) {
	got, err := ParseISOTime("2026-09-05T19:30:00Z")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := time.Date(2026, 9, 5, 19, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name+tag@example.com"}
	invalid := []string{"", "plain", "@nouser.com", "user@", "user@host"}

	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}
