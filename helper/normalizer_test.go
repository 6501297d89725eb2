package helper

import (
	"testing"
)

func row(cells ...interface{}) []interface{} { return cells }

func TestNormalizeRowLayout2025(t *testing.T) {
	variant := GetSheetVariant("layout2025")

	metric, skip := NormalizeRow(row("15.03.2026", "12500000", "150", "83333", "8", "4.7", "1250"), variant)
	if skip != nil {
		t.Fatalf("unexpected skip: %+v", skip)
	}
	if metric.Date.Format("2006-01-02") != "2026-03-15" {
		t.Errorf("date = %s, want 2026-03-15", metric.Date.Format("2006-01-02"))
	}
	if metric.Revenue != 12500000 {
		t.Errorf("revenue = %d, want 12500000", metric.Revenue)
	}
	if metric.Pax != 150 {
		t.Errorf("pax = %d, want 150", metric.Pax)
	}
	if metric.AvgSpend != 83333 {
		t.Errorf("avgSpend = %v, want 83333", metric.AvgSpend)
	}
	if metric.StaffOnDuty == nil || *metric.StaffOnDuty != 8 {
		t.Errorf("staffOnDuty = %v, want 8", metric.StaffOnDuty)
	}
	if metric.GoogleRating == nil || *metric.GoogleRating != 4.7 {
		t.Errorf("googleRating = %v, want 4.7", metric.GoogleRating)
	}
	if metric.GoogleReviewCount == nil || *metric.GoogleReviewCount != 1250 {
		t.Errorf("googleReviewCount = %v, want 1250", metric.GoogleReviewCount)
	}
}

func TestNormalizeRowShiftedTable(t *testing.T) {
	// Some yearly tabs shift the whole table two columns right; the date lands
	// in the fallback column and every offset follows it.
	variant := GetSheetVariant("layout2025")

	metric, skip := NormalizeRow(row("", "", "15.03.2026", "12500000", "150", "83333", "8", "4.7", "1250"), variant)
	if skip != nil {
		t.Fatalf("unexpected skip: %+v", skip)
	}
	if metric.Revenue != 12500000 || metric.Pax != 150 {
		t.Errorf("shifted row parsed as revenue=%d pax=%d", metric.Revenue, metric.Pax)
	}
}

func TestNormalizeRowLayout2026DerivesAvgSpend(t *testing.T) {
	// The 2026 layout has no avg-spend column; it is derived from revenue/pax.
	variant := GetSheetVariant("layout2026")

	metric, skip := NormalizeRow(row("15.03.2026", "12000000", "150", "8", "4.8", "1300"), variant)
	if skip != nil {
		t.Fatalf("unexpected skip: %+v", skip)
	}
	if metric.AvgSpend != 80000 {
		t.Errorf("derived avgSpend = %v, want 80000", metric.AvgSpend)
	}
	if metric.StaffOnDuty == nil || *metric.StaffOnDuty != 8 {
		t.Errorf("staffOnDuty = %v, want 8", metric.StaffOnDuty)
	}
	if metric.GoogleRating == nil || *metric.GoogleRating != 4.8 {
		t.Errorf("googleRating = %v, want 4.8", metric.GoogleRating)
	}
}

func TestNormalizeRowSkips(t *testing.T) {
	variant := GetSheetVariant("layout2025")

	cases := []struct {
		name   string
		row    []interface{}
		reason string
	}{
		{"empty row", row(), SkipEmptyRow},
		{"blank cells", row("", "", ""), SkipEmptyRow},
		{"week summary", row("KW 12", "85000000", "1050"), SkipWeekSummary},
		{"lowercase week summary", row("kw 3"), SkipWeekSummary},
		{"month header", row("März"), SkipHeaderRow},
		{"abbreviated header", row("Jan."), SkipHeaderRow},
		{"unparseable date", row("2026-03-15", "12500000", "150"), SkipUnparseableDate},
		{"zero data", row("15.03.2026", "0", "0"), SkipNoData},
		{"no data cells", row("15.03.2026"), SkipNoData},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			metric, skip := NormalizeRow(tc.row, variant)
			if skip == nil {
				t.Fatalf("expected skip, got metric %+v", metric)
			}
			if skip.Reason != tc.reason {
				t.Errorf("skip reason = %q, want %q", skip.Reason, tc.reason)
			}
		})
	}
}

func TestNormalizeRowRejectsBadGoogleFields(t *testing.T) {
	variant := GetSheetVariant("layout2025")

	// Zero rating and zero count mean "no snapshot today", not actual zeros.
	metric, skip := NormalizeRow(row("15.03.2026", "12500000", "150", "83333", "0", "0", "0"), variant)
	if skip != nil {
		t.Fatalf("unexpected skip: %+v", skip)
	}
	if metric.StaffOnDuty != nil {
		t.Errorf("staffOnDuty = %v, want nil", metric.StaffOnDuty)
	}
	if metric.GoogleRating != nil {
		t.Errorf("googleRating = %v, want nil", metric.GoogleRating)
	}
	if metric.GoogleReviewCount != nil {
		t.Errorf("googleReviewCount = %v, want nil", metric.GoogleReviewCount)
	}

	// A rating above the scale is a sheet mistake and is dropped.
	metric, _ = NormalizeRow(row("15.03.2026", "12500000", "150", "83333", "8", "47", "1250"), variant)
	if metric.GoogleRating != nil {
		t.Errorf("out-of-scale rating kept: %v", *metric.GoogleRating)
	}
}

func TestGetSheetVariantFallback(t *testing.T) {
	if got := GetSheetVariant("unknown"); got.Name != DefaultSheetVariant {
		t.Errorf("unknown variant resolved to %q, want %q", got.Name, DefaultSheetVariant)
	}
}
