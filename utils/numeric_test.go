package utils

import (
	"math"
	"testing"
)

func TestParseSheetNumber(t *testing.T) {
	cases := []struct {
		name string
		cell interface{}
		want float64
	}{
		{"nil cell", nil, 0},
		{"plain float", 1500000.0, 1500000},
		{"plain int", 42, 42},
		{"plain string", "1500000", 1500000},
		{"comma grouping", "1,500,000", 1500000},
		{"dot grouping", "1.500.000", 1500000},
		{"currency prefix", "Rp 1.500.000", 1500000},
		{"mixed separators", "1.500.000,50", 1500000.5},
		{"us style", "1,500,000.50", 1500000.5},
		{"decimal comma", "4,7", 4.7},
		{"decimal dot", "4.7", 4.7},
		{"negative", "-250000", -250000},
		{"whitespace", "  350  ", 350},
		{"empty string", "", 0},
		{"dash only", "-", 0},
		{"garbage", "n/a", 0},
		{"nan float", math.NaN(), 0},
		{"inf float", math.Inf(1), 0},
		{"bool cell", true, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseSheetNumber(tc.cell); got != tc.want {
				t.Errorf("ParseSheetNumber(%v) = %v, want %v", tc.cell, got, tc.want)
			}
		})
	}
}

func TestCellString(t *testing.T) {
	cases := []struct {
		cell interface{}
		want string
	}{
		{nil, ""},
		{"  15.03.2026 ", "15.03.2026"},
		{4.7, "4.7"},
		{150.0, "150"},
		{true, ""},
	}

	for _, tc := range cases {
		if got := CellString(tc.cell); got != tc.want {
			t.Errorf("CellString(%v) = %q, want %q", tc.cell, got, tc.want)
		}
	}
}

func TestCalculateGrowth(t *testing.T) {
	cases := []struct {
		current, previous, want float64
	}{
		{150, 100, 50},
		{75, 100, -25},
		{100, 0, 0},
		{100, -5, 0},
		{0, 0, 0},
		{105, 90, 16.7},
	}

	for _, tc := range cases {
		if got := CalculateGrowth(tc.current, tc.previous); got != tc.want {
			t.Errorf("CalculateGrowth(%v, %v) = %v, want %v", tc.current, tc.previous, got, tc.want)
		}
	}
}

func TestSafeDivide(t *testing.T) {
	if got := SafeDivide(10, 0); got != 0 {
		t.Errorf("SafeDivide(10, 0) = %v, want 0", got)
	}
	if got := SafeDivide(10, 4); got != 2.5 {
		t.Errorf("SafeDivide(10, 4) = %v, want 2.5", got)
	}
}
