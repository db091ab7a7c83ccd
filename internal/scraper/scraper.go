package scraper

import (
	"errors"
	"regexp"
	"strings"

	"CardScout/internal/models"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoMatch signals that a listing's name does not satisfy the site's
// match policy for the searched keyword. It is not an error condition,
// just a distinct "zero records" outcome.
var ErrNoMatch = errors.New("listing does not match keyword")

// Site defines the behavior every retailer implementation must follow:
// where to search, what marks a rendered results page, which nodes are
// listings, and how to turn one listing into card records.
type Site interface {
	// Code returns the short retailer identifier stamped on records.
	Code() models.Retailer

	// SearchURL builds the search-results URL for one card name.
	SearchURL(keyword string) string

	// ReadySelector is the element whose existence means the results
	// have rendered and the page is safe to read.
	ReadySelector() string

	// ItemSelector matches every listing node in the result container.
	ItemSelector() string

	// Extract parses one listing into zero or more card records.
	// It returns ErrNoMatch when the listing is not the searched card;
	// a matched listing whose variants are all filtered out returns an
	// empty slice and no error.
	Extract(keyword string, item *goquery.Selection) ([]models.CardRecord, error)
}

// titleSuffixRegex strips retailer decoration from a listing title: any
// parenthetical qualifier or trailing " - <variant>" suffix, e.g.
// "Sol Ring (Borderless)" and "Counterspell - Foil Etched" both reduce
// to the bare card name.
var titleSuffixRegex = regexp.MustCompile(`\s*\(.*|\s* - .*`)

// cleanTitle reduces a decorated listing title to the canonical card name.
func cleanTitle(fullCardName string) string {
	return strings.TrimSpace(titleSuffixRegex.ReplaceAllString(fullCardName, ""))
}

// parentheticalRegex removes only parenthesized qualifiers, which is how
// 401 Games decorates its titles ("Sol Ring (Foil) (Commander 2021)").
var parentheticalRegex = regexp.MustCompile(`\s*\(.*?\)`)

func cleanParentheticals(s string) string {
	return strings.TrimSpace(parentheticalRegex.ReplaceAllString(s, ""))
}
