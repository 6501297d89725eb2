package utils

import (
	"testing"
	"time"
)

func TestParseSheetDate(t *testing.T) {
	cases := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"15.03.2026", "2026-03-15", false},
		{"1.1.2025", "2025-01-01", false},
		{"7.12.25", "2025-12-07", false},
		{"  28.02.2026  ", "2026-02-28", false},
		{"31.12.2026", "2026-12-31", false},
		{"2026-03-15", "", true},
		{"15/03/2026", "", true},
		{"KW 12", "", true},
		{"März", "", true},
		{"32.01.2026", "", true},
		{"15.13.2026", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := ParseSheetDate(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseSheetDate(%q) expected error, got %v", tc.raw, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSheetDate(%q) unexpected error: %v", tc.raw, err)
			continue
		}
		if got.Format("2006-01-02") != tc.want {
			t.Errorf("ParseSheetDate(%q) = %s, want %s", tc.raw, got.Format("2006-01-02"), tc.want)
		}
	}
}

func TestSameWeekdayLastYear(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2026-03-16", "2025-03-17"},
		// Across the 2024 leap boundary the weekday still lines up.
		{"2025-03-03", "2024-03-04"},
		{"2026-01-01", "2025-01-02"},
	}

	for _, tc := range cases {
		date, err := time.Parse("2006-01-02", tc.date)
		if err != nil {
			t.Fatalf("bad test date %q: %v", tc.date, err)
		}
		got := SameWeekdayLastYear(date)
		if got.Format("2006-01-02") != tc.want {
			t.Errorf("SameWeekdayLastYear(%s) = %s, want %s", tc.date, got.Format("2006-01-02"), tc.want)
		}
		if got.Weekday() != date.Weekday() {
			t.Errorf("SameWeekdayLastYear(%s) weekday = %s, want %s", tc.date, got.Weekday(), date.Weekday())
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		date string
		want int
	}{
		{"2026-02-10", 28},
		{"2024-02-10", 29},
		{"2026-01-31", 31},
		{"2026-04-01", 30},
	}

	for _, tc := range cases {
		date, _ := time.Parse("2006-01-02", tc.date)
		if got := DaysInMonth(date); got != tc.want {
			t.Errorf("DaysInMonth(%s) = %d, want %d", tc.date, got, tc.want)
		}
	}
}

func TestCustomDateJSON(t *testing.T) {
	d := NewCustomDate(time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC))
	out, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(out) != `"2026-03-15"` {
		t.Errorf("MarshalJSON = %s, want %q", out, `"2026-03-15"`)
	}

	var zero CustomDate
	out, err = zero.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON zero: %v", err)
	}
	if string(out) != `null` {
		t.Errorf("MarshalJSON zero = %s, want null", out)
	}

	var parsed CustomDate
	if err := parsed.UnmarshalJSON([]byte(`"2026-03-15"`)); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if parsed.Format("2006-01-02") != "2026-03-15" {
		t.Errorf("UnmarshalJSON = %s, want 2026-03-15", parsed.Format("2006-01-02"))
	}

	if err := parsed.UnmarshalJSON([]byte(`"15.03.2026"`)); err == nil {
		t.Error("UnmarshalJSON accepted a sheet-format date")
	}
}
