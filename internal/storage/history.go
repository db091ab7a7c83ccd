package storage

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"CardScout/internal/models"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // pure Go driver, no cgo
)

// HistoryRepository persists the cheapest-per-card snapshot of each run,
// so price movement can be compared across runs. It is additive only: the
// in-run record set itself is never read back or mutated.
type HistoryRepository struct {
	DB *sql.DB
}

// PricePoint is one historical observation of a card's cheapest offer.
type PricePoint struct {
	CardName  string           `json:"card_name"`
	CardSet   string           `json:"card_set"`
	Retailer  models.Retailer  `json:"retailer"`
	Condition models.Condition `json:"condition"`
	IsFoil    bool             `json:"is_foil"`
	Price     decimal.Decimal  `json:"price"`
	ScrapedAt time.Time        `json:"scraped_at"`
}

// InitHistory opens (or creates) the history database and its table.
func InitHistory(filepath string) *HistoryRepository {
	db, err := sql.Open("sqlite", filepath)
	if err != nil {
		log.Fatalf("Error opening history database: %v", err)
	}
	if err = db.Ping(); err != nil {
		log.Fatalf("Error pinging history database: %v", err)
	}

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS price_history (
		"id" INTEGER NOT NULL PRIMARY KEY AUTOINCREMENT,
		"card_name" TEXT,
		"card_set" TEXT,
		"retailer" TEXT,
		"condition" TEXT,
		"is_foil" BOOLEAN,
		"price" TEXT,
		"scraped_at" DATETIME
	);`

	if _, err = db.Exec(createTableSQL); err != nil {
		log.Fatalf("Error creating price_history table: %v", err)
	}

	return &HistoryRepository{DB: db}
}

// Close closes the database connection.
func (repo *HistoryRepository) Close() {
	repo.DB.Close()
}

// SaveSnapshot inserts one row per record, all stamped with the same
// observation time. Prices are stored as fixed-point text, never as
// binary floats.
func (repo *HistoryRepository) SaveSnapshot(records []models.CardRecord) error {
	now := time.Now().UTC()

	tx, err := repo.DB.Begin()
	if err != nil {
		return fmt.Errorf("history: begin snapshot: %w", err)
	}

	query := `
	INSERT INTO price_history (card_name, card_set, retailer, condition, is_foil, price, scraped_at)
	VALUES (?, ?, ?, ?, ?, ?, ?);`

	for _, rec := range records {
		_, err := tx.Exec(query,
			rec.CardName, rec.CardSet, string(rec.Retailer), string(rec.Condition),
			rec.IsFoil, rec.Price.StringFixed(2), now)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("history: insert %q: %w", rec.CardName, err)
		}
	}

	return tx.Commit()
}

// History returns up to limit observations of one card, newest first.
func (repo *HistoryRepository) History(cardName string, limit int) ([]PricePoint, error) {
	if limit < 1 {
		limit = 50
	}

	query := `
	SELECT card_name, card_set, retailer, condition, is_foil, price, scraped_at
	FROM price_history
	WHERE card_name = ?
	ORDER BY scraped_at DESC
	LIMIT ?;`

	rows, err := repo.DB.Query(query, cardName, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query %q: %w", cardName, err)
	}
	defer rows.Close()

	var points []PricePoint
	for rows.Next() {
		var p PricePoint
		var priceStr string
		var retailer, condition string
		if err := rows.Scan(&p.CardName, &p.CardSet, &retailer, &condition, &p.IsFoil, &priceStr, &p.ScrapedAt); err != nil {
			return nil, fmt.Errorf("history: scan row: %w", err)
		}
		p.Retailer = models.Retailer(retailer)
		p.Condition = models.Condition(condition)
		p.Price, err = decimal.NewFromString(priceStr)
		if err != nil {
			return nil, fmt.Errorf("history: bad stored price %q: %w", priceStr, err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
