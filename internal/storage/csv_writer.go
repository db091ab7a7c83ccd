package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"CardScout/internal/models"
)

// csvHeader mirrors the CardRecord field order.
var csvHeader = []string{
	"card_name", "card_set", "condition", "is_foil", "retailer", "stock", "price", "frame",
}

// WriteCSV writes the full record set to a CSV file in one pass: a header
// row followed by one row per record. Intermediate directories are created
// automatically and any previous file is truncated.
func WriteCSV(path string, records []models.CardRecord) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("csv: create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: create file %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.CardName,
			rec.CardSet,
			string(rec.Condition),
			strconv.FormatBool(rec.IsFoil),
			string(rec.Retailer),
			strconv.Itoa(rec.Stock),
			rec.Price.StringFixed(2),
			rec.Frame,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
