package tws

import (
	"errors"
	"testing"
	"time"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"20230615", time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"20230615 14:30:00", time.Date(2023, 6, 15, 14, 30, 0, 0, time.UTC)},
		{"20230615  14:30:00", time.Date(2023, 6, 15, 14, 30, 0, 0, time.UTC)},
		{"20230615\t09:05:07", time.Date(2023, 6, 15, 9, 5, 7, 0, time.UTC)},
		{"2023061514:30:00", time.Date(2023, 6, 15, 14, 30, 0, 0, time.UTC)},
		{"20240229", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"19991231 23:59:59", time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDateTime(tt.input)
			if err != nil {
				t.Fatalf("ParseDateTime(%q) error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDateTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDateTimeErrors(t *testing.T) {
	inputs := []string{
		"",
		"2023-06-15",
		"20230615extra",
		"20230615 14:30",
		"20230615 14:30:00 ",
		"20230615 14:30:00Z",
		"2023061",
		"202306150",
		"20231315",
		"20230230",
		"20230615 25:00:00",
		"bogus",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, err := ParseDateTime(input)
			if err == nil {
				t.Fatalf("ParseDateTime(%q) = %v, want error", input, got)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("ParseDateTime(%q) error = %v, want ErrParse", input, err)
			}
			if !got.IsZero() {
				t.Errorf("ParseDateTime(%q) = %v on error, want zero time", input, got)
			}
		})
	}
}

func TestDateToISO(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"20230615", "2023-06-15"},
		{"20230615 14:30:00", "2023-06-15 14:30:00"},
		{"20230615\t14:30:00", "2023-06-15 14:30:00"},
		{"20000101 00:00:00", "2000-01-01 00:00:00"},
		{"bogus", ""},
		{"", ""},
		{"2023-06-15", ""},
		{"20230631", ""},
		{"20230615 14:30", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := DateToISO(tt.input); got != tt.want {
				t.Errorf("DateToISO(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2023, 6, 15, 14, 30, 5, 0, time.UTC)

	if got := FormatDateTime(ts); got != "20230615 14:30:05" {
		t.Errorf("FormatDateTime() = %q, want %q", got, "20230615 14:30:05")
	}
	if got := FormatDate(ts); got != "20230615" {
		t.Errorf("FormatDate() = %q, want %q", got, "20230615")
	}

	// Platform encoding round-trips through the parser.
	back, err := ParseDateTime(FormatDateTime(ts))
	if err != nil {
		t.Fatalf("ParseDateTime error: %v", err)
	}
	if !back.Equal(ts) {
		t.Errorf("round trip = %v, want %v", back, ts)
	}
}
