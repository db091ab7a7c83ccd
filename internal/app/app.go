package app

import (
	"context"
	"log"
	"os"
	"sync"

	"CardScout/internal/analysis"
	"CardScout/internal/browser"
	"CardScout/internal/models"
	"CardScout/internal/scraper"
	"CardScout/internal/storage"
	"CardScout/pkg/config"
	"CardScout/utils"

	"github.com/jedib0t/go-pretty/v6/table"
)

// App is the main application structure holding all dependencies.
type App struct {
	Config  *config.Config
	History *storage.HistoryRepository
}

// New creates an application instance from the given config file. The
// price-history database is optional; an empty path disables it.
func New(configPath string) *App {
	cfg := config.LoadConfig(configPath)

	var history *storage.HistoryRepository
	if cfg.Scraper.HistoryDB != "" {
		history = storage.InitHistory(cfg.Scraper.HistoryDB)
	}

	return &App{Config: cfg, History: history}
}

// Close releases resources held by the application.
func (a *App) Close() {
	if a.History != nil {
		a.History.Close()
	}
}

// EnabledSites builds a Site per retailer the config turns on.
func (a *App) EnabledSites() []scraper.Site {
	var sites []scraper.Site
	if a.Config.Retailers.F2F.Enabled {
		sites = append(sites, scraper.NewF2F(a.Config.Retailers.F2F.BaseURL, a.Config.Scraper))
	}
	if a.Config.Retailers.WIZ.Enabled {
		sites = append(sites, scraper.NewWizardsTower(a.Config.Retailers.WIZ.BaseURL, a.Config.Scraper))
	}
	if a.Config.Retailers.Games401.Enabled {
		sites = append(sites, scraper.NewGames401(a.Config.Retailers.Games401.BaseURL, a.Config.Scraper))
	}
	return sites
}

// ScrapeCards runs every enabled retailer over the keyword list. Retailers
// share no mutable state, so they run concurrently, each with its own
// browser session, bounded by the configured worker count. The only
// synchronization point is the join before aggregation. Per-retailer
// batches are aggregated in fixed retailer order so the master list is
// deterministic regardless of scheduling.
func (a *App) ScrapeCards(ctx context.Context, keywords []string) ([]models.CardRecord, map[models.Retailer][]scraper.KeywordOutcome) {
	sites := a.EnabledSites()
	if len(sites) == 0 {
		log.Println("No retailers are enabled in the config.")
		return nil, nil
	}

	workers := utils.GetOptimalWorkerCount(a.Config.Scraper.Workers)
	sem := make(chan struct{}, workers)

	batches := make([][]models.CardRecord, len(sites))
	outcomes := make(map[models.Retailer][]scraper.KeywordOutcome, len(sites))

	var mu sync.Mutex
	var wg sync.WaitGroup

	for i, site := range sites {
		wg.Add(1)
		go func(i int, site scraper.Site) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			session, err := browser.NewSession(a.Config.Scraper.Headless, a.Config.Scraper.FetchTimeout())
			if err != nil {
				log.Printf("ERROR: %s: could not start a browser session: %v", site.Code(), err)
				return
			}
			defer session.Close()

			driver := scraper.NewDriver(site, session)
			records, keywordOutcomes := driver.Scrape(ctx, keywords)

			mu.Lock()
			batches[i] = records
			outcomes[site.Code()] = keywordOutcomes
			mu.Unlock()
		}(i, site)
	}
	wg.Wait()

	return analysis.Aggregate(batches...), outcomes
}

// RunScrape executes a full run: decklist in, comparison table and CSV
// out. A missing decklist aborts before any scraping begins; anything
// that goes wrong per keyword or per listing has already been contained
// downstream.
func (a *App) RunScrape(ctx context.Context) error {
	keywords, err := utils.ReadDecklist(a.Config.Scraper.DecklistPath)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d card names from %s", len(keywords), a.Config.Scraper.DecklistPath)

	records, _ := a.ScrapeCards(ctx, keywords)
	if len(records) == 0 {
		log.Println("Failed to find any cards. Nothing was written.")
		return nil
	}

	estimate := analysis.EstimateDeckCost(records)
	printEstimate(estimate)

	log.Println("Sorting results")
	sorted := analysis.SortForExport(records)

	if err := storage.WriteCSV(a.Config.Scraper.OutputPath, sorted); err != nil {
		return err
	}
	log.Printf("Wrote %d records to %s", len(sorted), a.Config.Scraper.OutputPath)

	if a.History != nil {
		cheapest := make([]models.CardRecord, 0, len(estimate.Cheapest))
		for _, name := range estimate.CardNames() {
			cheapest = append(cheapest, estimate.Cheapest[name])
		}
		if err := a.History.SaveSnapshot(cheapest); err != nil {
			log.Printf("WARN: could not record price history: %v", err)
		}
	}

	log.Println("Program finished.")
	return nil
}

// printEstimate renders the cheapest-per-card report and deck total.
func printEstimate(estimate analysis.DeckEstimate) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Card", "Set", "Retailer", "Condition", "Foil", "Price"})

	for _, name := range estimate.CardNames() {
		rec := estimate.Cheapest[name]
		foil := ""
		if rec.IsFoil {
			foil = "Foil"
		}
		t.AppendRow(table.Row{rec.CardName, rec.CardSet, rec.Retailer, rec.Condition, foil, "$" + rec.Price.StringFixed(2)})
	}

	t.AppendFooter(table.Row{"Estimated total", "", "", "", "", "$" + estimate.Total.StringFixed(2)})
	t.SetStyle(table.StyleRounded)
	t.Render()
}
