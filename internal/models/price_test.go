package models

import (
	"errors"
	"testing"
)

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"Standard Price", "$4.99", "4.99", false},
		{"Price with Label", "CAD $1,079.00", "1079.00", false},
		{"Rounds Up", "$4.999", "5.00", false},
		{"Rounds Down", "$1.504", "1.50", false},
		{"Integer Price", "$99", "99.00", false},
		{"Bare Number", "0.25", "0.25", false},
		{"Empty String", "", "", true},
		{"No Digits", "Sold Out", "", true},
		{"Zero Price", "$0.00", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			price, err := ParsePrice(tc.input)

			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParsePrice(%q) expected an error, got %s", tc.input, price)
				}
				var pfe *PriceFormatError
				if !errors.As(err, &pfe) {
					t.Errorf("ParsePrice(%q) error is %T, want *PriceFormatError", tc.input, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParsePrice(%q) unexpected error: %v", tc.input, err)
			}
			if got := price.StringFixed(2); got != tc.expected {
				t.Errorf("ParsePrice(%q) = %s; want %s", tc.input, got, tc.expected)
			}
		})
	}
}

func TestMapCondition(t *testing.T) {
	testCases := []struct {
		input    string
		expected Condition
	}{
		{"NM-Mint, English", ConditionNM},
		{"Slightly Played, English", ConditionSP},
		{"Moderately Played", ConditionMP},
		{"PL", ConditionMP},
		{"Heavily Played", ConditionUnknown},
		{"Damaged", ConditionUnknown},
		{"", ConditionUnknown},
	}

	for _, tc := range testCases {
		if got := MapCondition(tc.input); got != tc.expected {
			t.Errorf("MapCondition(%q) = %q; want %q", tc.input, got, tc.expected)
		}
	}
}

func TestFindCardFrame(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"No Frame", "Sol Ring", ""},
		{"Single Keyword", "Sol Ring (Borderless)", "borderless"},
		{"Vocabulary Order", "Counterspell (Showcase) - Borderless", "borderless, showcase"},
		{"Case Insensitive", "Atraxa OVERSIZED Foil", "oversized"},
		{"Language", "Sol Ring (Japanese)", "japanese"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FindCardFrame(tc.input); got != tc.expected {
				t.Errorf("FindCardFrame(%q) = %q; want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNewCardRecordValidation(t *testing.T) {
	rec, err := NewCardRecord("Sol Ring", "Commander 2021", ConditionNM, true, RetailerF2F, 1, "$4.999", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.Price.StringFixed(2); got != "5.00" {
		t.Errorf("Price = %s; want 5.00", got)
	}

	if _, err := NewCardRecord("Sol Ring", "C21", ConditionNM, false, RetailerF2F, 1, "n/a", ""); err == nil {
		t.Error("expected error for malformed price")
	}
	if _, err := NewCardRecord("Sol Ring", "C21", ConditionNM, false, RetailerF2F, -1, "1.00", ""); err == nil {
		t.Error("expected error for negative stock")
	}
}
