package models

import "strings"

// frameKeywords is the fixed vocabulary of frame and print treatments that
// retailers fold into listing titles. Order matters: matches are joined in
// vocabulary order, not in the order they appear in the title.
var frameKeywords = []string{
	"extended",
	"borderless",
	"promo",
	"serial numbered",
	"showcase",
	"oversized",
	"retro",
	"chinese",
	"japanese",
}

// FindCardFrame scans the raw retailer title for frame keywords and returns
// all matches comma-joined, e.g. "borderless, showcase". The search is a
// case-insensitive substring check against each vocabulary entry.
func FindCardFrame(fullCardName string) string {
	lower := strings.ToLower(fullCardName)

	var res string
	for _, keyword := range frameKeywords {
		if strings.Contains(lower, keyword) {
			if res == "" {
				res = keyword
			} else {
				res += ", " + keyword
			}
		}
	}
	return res
}
