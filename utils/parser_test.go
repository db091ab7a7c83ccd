package utils

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseDecklist(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Counted Lines", "4 Sol Ring\n2   Counterspell\n", []string{"Sol Ring", "Counterspell"}},
		{"Uncounted Lines", "Sol Ring\nCounterspell", []string{"Sol Ring", "Counterspell"}},
		{"Blank Lines Skipped", "1 Sol Ring\n\n\n1 Counterspell\n", []string{"Sol Ring", "Counterspell"}},
		{"Number In Name Kept", "1 Borrowing 100,000 Arrows", []string{"Borrowing 100,000 Arrows"}},
		{"Empty Input", "", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDecklist(strings.NewReader(tc.input))
			if err != nil {
				t.Fatalf("ParseDecklist returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("ParseDecklist(%q) = %v; want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestReadDecklistMissingFile(t *testing.T) {
	if _, err := ReadDecklist("does-not-exist.txt"); err == nil {
		t.Error("expected an error for a missing decklist file")
	}
}
