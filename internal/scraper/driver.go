package scraper

import (
	"context"
	"errors"
	"log"
	"strings"

	"CardScout/internal/browser"
	"CardScout/internal/models"

	"github.com/PuerkitoBio/goquery"
)

// KeywordOutcome records how one keyword fared against one retailer, so
// partial failures are visible to callers instead of silently swallowed.
type KeywordOutcome struct {
	Keyword string
	Records int
	Err     error
}

// Driver runs one retailer across a keyword batch. It reuses a single
// fetcher session for the whole batch and never lets one keyword's
// failure abort the rest.
type Driver struct {
	site    Site
	fetcher browser.Fetcher
}

func NewDriver(site Site, fetcher browser.Fetcher) *Driver {
	return &Driver{site: site, fetcher: fetcher}
}

// Scrape fetches the retailer's search page for each keyword in order and
// extracts records from every listing node. Fetch timeouts and errors are
// logged and recorded as outcomes for that keyword only. Cancellation is
// honored at keyword granularity: the current keyword finishes or is
// abandoned, then no further fetches are issued.
func (d *Driver) Scrape(ctx context.Context, keywords []string) ([]models.CardRecord, []KeywordOutcome) {
	retailer := d.site.Code()
	log.Printf("Scraping %s", retailer)

	var records []models.CardRecord
	outcomes := make([]KeywordOutcome, 0, len(keywords))

	for _, keyword := range keywords {
		if ctx.Err() != nil {
			log.Printf("%s: canceled, skipping remaining keywords", retailer)
			break
		}

		html, err := d.fetcher.Fetch(ctx, d.site.SearchURL(keyword), d.site.ReadySelector())
		if err != nil {
			log.Printf("%s: failed, retailer %s: %v", keyword, retailer, err)
			outcomes = append(outcomes, KeywordOutcome{Keyword: keyword, Err: err})
			continue
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			log.Printf("%s: failed to parse page from %s: %v", keyword, retailer, err)
			outcomes = append(outcomes, KeywordOutcome{Keyword: keyword, Err: err})
			continue
		}

		count := 0
		doc.Find(d.site.ItemSelector()).Each(func(_ int, item *goquery.Selection) {
			batch, err := d.site.Extract(keyword, item)
			if err != nil {
				if errors.Is(err, ErrNoMatch) {
					return
				}
				// A structural parse error means the site's markup moved
				// under us; skip the listing rather than crash the run.
				log.Printf("%s: skipping listing on %s: %v", keyword, retailer, err)
				return
			}
			records = append(records, batch...)
			count += len(batch)
		})

		outcomes = append(outcomes, KeywordOutcome{Keyword: keyword, Records: count})
	}

	log.Printf("Finished %s", retailer)
	return records, outcomes
}
