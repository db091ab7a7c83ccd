package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// countPrefixRegex matches the leading quantity of conventional decklist
// notation, e.g. the "4" in "4   Sol Ring".
var countPrefixRegex = regexp.MustCompile(`^\d+\s+`)

// ParseDecklist converts decklist text into an ordered list of card names.
// Leading counts are stripped and blank lines are skipped; everything else
// is kept verbatim, since card names are matched exactly downstream.
func ParseDecklist(r io.Reader) ([]string, error) {
	var keywords []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		line = countPrefixRegex.ReplaceAllString(line, "")
		if line == "" {
			continue
		}
		keywords = append(keywords, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read decklist: %w", err)
	}
	return keywords, nil
}

// ReadDecklist loads the decklist file at path. A missing file surfaces
// before any scraping begins.
func ReadDecklist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decklist %q: %w", path, err)
	}
	defer f.Close()
	return ParseDecklist(f)
}
