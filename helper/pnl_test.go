package helper

import (
	"testing"
)

func TestParseMonthHeader(t *testing.T) {
	cases := []struct {
		label     string
		wantMonth int
		wantYear  int
		wantOk    bool
	}{
		{"Jan", 1, 0, true},
		{"January 2026", 1, 2026, true},
		{"Jan 26", 1, 2026, true},
		{"Jan.", 1, 0, true},
		{"01/2026", 1, 2026, true},
		{"1.2026", 1, 2026, true},
		{"12/26", 12, 2026, true},
		{"Sep 2025", 9, 2025, true},
		{"13/2026", 0, 0, false},
		{"0.2026", 0, 0, false},
		{"Total", 0, 0, false},
		{"Category", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tc := range cases {
		month, year, ok := parseMonthHeader(tc.label)
		if ok != tc.wantOk {
			t.Errorf("parseMonthHeader(%q) ok = %v, want %v", tc.label, ok, tc.wantOk)
			continue
		}
		if month != tc.wantMonth || year != tc.wantYear {
			t.Errorf("parseMonthHeader(%q) = %d/%d, want %d/%d", tc.label, month, year, tc.wantMonth, tc.wantYear)
		}
	}
}

func TestNormalizeYear(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"2026", 2026},
		{"26", 2026},
		{"99", 2099},
		{"1999", 0},
		{"2150", 0},
		{"abc", 0},
	}

	for _, tc := range cases {
		if got := normalizeYear(tc.raw); got != tc.want {
			t.Errorf("normalizeYear(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizePnlLabel(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Food Revenue", "food revenue"},
		{"  COGS  -  Food ", "cogs food"},
		{"Repairs & Maintenance", "repairs maintenance"},
		{"EBIT:", "ebit"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := normalizePnlLabel(tc.raw); got != tc.want {
			t.Errorf("normalizePnlLabel(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestPnlVocabularyCoversSections(t *testing.T) {
	// Every target column in the vocabulary must belong to a section, or the
	// diagnostics panel would drop its changes on the floor.
	for label, column := range pnlCategoryColumns {
		if _, ok := pnlColumnSections[column]; !ok {
			t.Errorf("column %q (label %q) has no section", column, label)
		}
	}
}

func TestDetectMonthColumns(t *testing.T) {
	rows := [][]interface{}{
		{"P&L Report 2026"},
		{"Category", "", "Jan 2026", "Feb 2026", "Mar 2026", "Total"},
		{"Food Revenue", "", "100", "110", "120", "330"},
	}

	cols, headerRow := detectMonthColumns(rows, nil)
	if headerRow != 1 {
		t.Fatalf("headerRow = %d, want 1", headerRow)
	}
	if len(cols) != 3 {
		t.Fatalf("got %d month columns, want 3 (Total is not a month)", len(cols))
	}
	if cols[0].Col != 2 || cols[0].Month != 1 || cols[0].Year != 2026 {
		t.Errorf("first column = %+v, want col 2, Jan 2026", cols[0])
	}
	if cols[2].Month != 3 {
		t.Errorf("third column month = %d, want 3", cols[2].Month)
	}
}

func TestDetectMonthColumnsYearOverride(t *testing.T) {
	rows := [][]interface{}{
		{"Category", "", "Jan 2024", "Feb 2024"},
	}

	override := 2026
	cols, _ := detectMonthColumns(rows, &override)
	for _, c := range cols {
		if c.Year != 2026 {
			t.Errorf("column %q year = %d, want override 2026", c.Label, c.Year)
		}
	}
}

func TestDetectMonthColumnsNoStructure(t *testing.T) {
	rows := [][]interface{}{
		{"Category", "Notes", "Total", "YTD"},
		{"Food Revenue", "", "100", "330"},
	}

	cols, headerRow := detectMonthColumns(rows, nil)
	if cols != nil || headerRow != -1 {
		t.Errorf("got cols %+v headerRow %d, want none", cols, headerRow)
	}
}

func TestDetectMonthColumnsIgnoresLabelColumns(t *testing.T) {
	// A month-like token in the label columns must not count: values start at
	// column C.
	rows := [][]interface{}{
		{"Jan", "Feb", "Mar 2026"},
	}

	cols, _ := detectMonthColumns(rows, nil)
	if len(cols) != 1 || cols[0].Col != 2 {
		t.Errorf("cols = %+v, want only column 2", cols)
	}
}
