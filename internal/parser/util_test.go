package parser

import (
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"1,234.56", 1234.56, false},
		{"Rs. 850.00", 850, false},
		{"₹2,500.00", 2500, false},
		{"INR 99.50", 99.5, false},
		{"15450", 15450, false},
		{"-500.00", -500, false},
		{"", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		got, err := parseAmount(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseAmount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseAmount(%q) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{15450, "Rs. 15,450.00"},
		{850, "Rs. 850.00"},
		{2500.5, "Rs. 2,500.50"},
		{1234567.89, "Rs. 1,234,567.89"},
	}

	for _, tt := range tests {
		if got := formatINR(tt.in); got != tt.want {
			t.Errorf("formatINR(%f) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	if _, ok := parseDate("15/02/2024"); !ok {
		t.Error("valid date rejected")
	}
	if _, ok := parseDate("31/02/2024"); ok {
		t.Error("impossible date accepted")
	}
	if _, ok := parseDate("2024-02-15"); ok {
		t.Error("wrong layout accepted")
	}
}

func TestCollapseSpaces(t *testing.T) {
	got := collapseSpaces("  AMAZON   SHOPPING \t ONLINE  ")
	if got != "AMAZON SHOPPING ONLINE" {
		t.Errorf("got %q", got)
	}
}
