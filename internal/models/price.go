package models

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

// priceCharsRegex matches everything that is not a digit or a decimal point.
// Retailers decorate prices with currency symbols, thousands separators and
// labels like "CAD"; all of it is stripped before parsing.
var priceCharsRegex = regexp.MustCompile(`[^0-9.]`)

// PriceFormatError reports a price string that did not survive cleaning
// and parsing. It is fatal to the variant it came from, never to a run.
type PriceFormatError struct {
	Raw string
}

func (e *PriceFormatError) Error() string {
	return fmt.Sprintf("malformed price text %q", e.Raw)
}

// ParsePrice strips every character except digits and the decimal point,
// parses the remainder as a fixed-point decimal and rounds it to exactly
// two fractional digits. Prices are kept as decimals end to end so that
// summing dozens of cards cannot drift at the cent level the way float64
// accumulation does.
func ParsePrice(raw string) (decimal.Decimal, error) {
	cleaned := priceCharsRegex.ReplaceAllString(raw, "")
	if cleaned == "" {
		return decimal.Decimal{}, &PriceFormatError{Raw: raw}
	}

	price, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, &PriceFormatError{Raw: raw}
	}
	if price.Sign() <= 0 {
		return decimal.Decimal{}, &PriceFormatError{Raw: raw}
	}

	// Round, not truncate: 4.999 becomes 5.00.
	return price.Round(2), nil
}
