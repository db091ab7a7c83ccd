package analysis

import (
	"sort"

	"CardScout/internal/models"

	"github.com/shopspring/decimal"
)

// Aggregate merges per-retailer result lists into one master list by pure
// concatenation. No dedup, no reconciliation: if a site lists a card
// twice, both records survive.
func Aggregate(batches ...[]models.CardRecord) []models.CardRecord {
	var master []models.CardRecord
	for _, batch := range batches {
		master = append(master, batch...)
	}
	return master
}

// DeckEstimate is the cheapest-per-card report: for every distinct card
// name, the lowest-priced record found anywhere, and the decimal sum of
// those prices.
type DeckEstimate struct {
	Cheapest map[string]models.CardRecord
	Total    decimal.Decimal
}

// CardNames returns the estimated card names in lexical order, for
// deterministic reporting.
func (e DeckEstimate) CardNames() []string {
	names := make([]string, 0, len(e.Cheapest))
	for name := range e.Cheapest {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EstimateDeckCost groups records by card name, keeps the minimum-priced
// record per group and sums the kept prices. Ties are broken by keeping
// the first-encountered record in input order (the comparison is strictly
// less-than). The sum stays in fixed-point decimals throughout, so the
// total carries no float accumulation drift.
//
// Grouping is exact string equality on the cleaned name, which cannot
// tell apart two distinct cards where one name contains the other; that
// ambiguity is inherited from upstream name cleaning and left visible.
func EstimateDeckCost(records []models.CardRecord) DeckEstimate {
	cheapest := make(map[string]models.CardRecord)
	for _, rec := range records {
		best, ok := cheapest[rec.CardName]
		if !ok || rec.Price.LessThan(best.Price) {
			cheapest[rec.CardName] = rec
		}
	}

	total := decimal.Zero
	for _, rec := range cheapest {
		total = total.Add(rec.Price)
	}

	return DeckEstimate{Cheapest: cheapest, Total: total}
}

// SortForExport orders records by (card name, price, foil flag, condition)
// ascending, with non-foil before foil. The sort is stable, so repeated
// sorting of the same records yields an identical ordering. This ordering
// is purely presentational.
func SortForExport(records []models.CardRecord) []models.CardRecord {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.CardName != b.CardName {
			return a.CardName < b.CardName
		}
		if cmp := a.Price.Cmp(b.Price); cmp != 0 {
			return cmp < 0
		}
		if a.IsFoil != b.IsFoil {
			return !a.IsFoil
		}
		return a.Condition < b.Condition
	})
	return records
}
