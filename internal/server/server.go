package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"CardScout/internal/analysis"
	"CardScout/internal/app"
	"CardScout/internal/models"
)

// Start registers the scrape API and serves it until the process exits.
// Scrapes run inside the request; the caller gets the finished result set
// rather than a handle to poll.
func Start(a *app.App) {
	http.HandleFunc("/api/scrape/quick", quickScrapeHandler(a))
	http.HandleFunc("/api/scrape/full", fullScrapeHandler(a))
	http.HandleFunc("/api/history", historyHandler(a))

	port := a.Config.Server.Port
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting API server on port %s", port)

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

type scrapeResponse struct {
	Message  string                       `json:"message"`
	Data     []models.CardRecord          `json:"data"`
	Cheapest map[string]models.CardRecord `json:"cheapest,omitempty"`
	Total    string                       `json:"total,omitempty"`
}

func quickScrapeHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "POST required", http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			CardName string `json:"card_name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CardName == "" {
			http.Error(w, "card_name is required", http.StatusBadRequest)
			return
		}

		log.Printf("Quick scrape requested for: %s", req.CardName)
		records, _ := a.ScrapeCards(r.Context(), []string{req.CardName})

		writeJSON(w, scrapeResponse{
			Message: "Quick scrape completed for: " + req.CardName,
			Data:    analysis.SortForExport(records),
		})
	}
}

func fullScrapeHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "POST required", http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			CardList []string `json:"card_list"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.CardList) == 0 {
			http.Error(w, "card_list (array of strings) is required", http.StatusBadRequest)
			return
		}

		log.Printf("Full scrape requested for %d cards", len(req.CardList))
		records, _ := a.ScrapeCards(r.Context(), req.CardList)
		estimate := analysis.EstimateDeckCost(records)

		writeJSON(w, scrapeResponse{
			Message:  "Full scrape completed",
			Data:     analysis.SortForExport(records),
			Cheapest: estimate.Cheapest,
			Total:    estimate.Total.StringFixed(2),
		})
	}
}

func historyHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if a.History == nil {
			http.Error(w, "price history is not enabled", http.StatusNotFound)
			return
		}

		card := r.URL.Query().Get("card")
		if card == "" {
			http.Error(w, "card query parameter is required", http.StatusBadRequest)
			return
		}
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		points, err := a.History.History(card, limit)
		if err != nil {
			http.Error(w, "failed to read price history", http.StatusInternalServerError)
			return
		}

		writeJSON(w, map[string]any{"card_name": card, "history": points})
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
