package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Retailer identifies the storefront a record was scraped from.
// The set is closed; aggregation never invents new codes.
type Retailer string

const (
	RetailerF2F  Retailer = "F2F"  // Face to Face Games
	RetailerWIZ  Retailer = "WIZ"  // Wizard's Tower (kanatacg)
	Retailer401G Retailer = "401G" // 401 Games
)

// Condition is the grading a retailer assigns to a single card.
// ConditionUnknown is used when the retailer does not expose grading.
type Condition string

const (
	ConditionNM      Condition = "NM"
	ConditionSP      Condition = "SP"
	ConditionMP      Condition = "MP"
	ConditionHP      Condition = "HP"
	ConditionUnknown Condition = ""
)

// MapCondition buckets a retailer's free-text condition into a Condition.
// The substring checks are ordered and deliberately narrow: "PL" is
// Wizard's Tower jargon for a played card and is bucketed as MP, not HP.
// Anything unrecognized maps to ConditionUnknown.
func MapCondition(text string) Condition {
	switch {
	case strings.Contains(text, "NM"):
		return ConditionNM
	case strings.Contains(text, "Slightly Played"):
		return ConditionSP
	case strings.Contains(text, "Moderately Played"):
		return ConditionMP
	case strings.Contains(text, "PL"):
		return ConditionMP
	default:
		return ConditionUnknown
	}
}

// CardRecord is one purchasable variant of one matched listing. Records
// are constructed once by an extractor and never mutated afterwards.
type CardRecord struct {
	CardName  string          `json:"card_name"`
	CardSet   string          `json:"card_set"`
	Condition Condition       `json:"condition"`
	IsFoil    bool            `json:"is_foil"`
	Retailer  Retailer        `json:"retailer"`
	Stock     int             `json:"stock"`
	Price     decimal.Decimal `json:"price"`
	Frame     string          `json:"frame,omitempty"`
}

// NewCardRecord validates and builds a CardRecord from a raw price string.
// The price text is cleaned, parsed and normalized to two fractional
// digits; a malformed or non-positive price returns a *PriceFormatError.
func NewCardRecord(name, set string, condition Condition, isFoil bool, retailer Retailer, stock int, rawPrice, frame string) (CardRecord, error) {
	price, err := ParsePrice(rawPrice)
	if err != nil {
		return CardRecord{}, err
	}
	if stock < 0 {
		return CardRecord{}, fmt.Errorf("negative stock %d for %q", stock, name)
	}
	return CardRecord{
		CardName:  name,
		CardSet:   set,
		Condition: condition,
		IsFoil:    isFoil,
		Retailer:  retailer,
		Stock:     stock,
		Price:     price,
		Frame:     frame,
	}, nil
}
