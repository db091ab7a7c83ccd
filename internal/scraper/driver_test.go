package scraper

import (
	"context"
	"fmt"
	"testing"

	"CardScout/internal/browser"

	"github.com/stretchr/testify/require"
)

// fakeFetcher serves canned pages keyed by URL, or a canned error.
type fakeFetcher struct {
	pages map[string]string
	errs  map[string]error
	calls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url, _ string) (string, error) {
	f.calls = append(f.calls, url)
	if err, ok := f.errs[url]; ok {
		return "", err
	}
	page, ok := f.pages[url]
	if !ok {
		return "", fmt.Errorf("no fixture for %s", url)
	}
	return page, nil
}

func g401Page(title, price string) string {
	return fmt.Sprintf(`
<div id="products-grid">
  <div class="fs-results-product-card">
    <a class="fs-product-title" aria-label="%s">%s</a>
    <span class="fs-product-vendor">Test Set</span>
    <span class="price">%s</span>
    <span class="in-stock">In Stock</span>
  </div>
</div>`, title, title, price)
}

func TestDriverSingleKeywordFailureNeverAbortsBatch(t *testing.T) {
	site := NewGames401("https://store.401games.ca", g401Conf())
	fetcher := &fakeFetcher{
		pages: map[string]string{
			site.SearchURL("Counterspell"): g401Page("Counterspell", "$2.00"),
			site.SearchURL("Lightning Bolt"): g401Page("Lightning Bolt", "$1.50"),
		},
		errs: map[string]error{
			site.SearchURL("Sol Ring"): fmt.Errorf("%w: ready selector never appeared", browser.ErrFetchTimeout),
		},
	}

	driver := NewDriver(site, fetcher)
	records, outcomes := driver.Scrape(context.Background(), []string{"Sol Ring", "Counterspell", "Lightning Bolt"})

	require.Len(t, records, 2)
	require.Equal(t, "Counterspell", records[0].CardName)
	require.Equal(t, "Lightning Bolt", records[1].CardName)

	require.Len(t, outcomes, 3)
	require.ErrorIs(t, outcomes[0].Err, browser.ErrFetchTimeout)
	require.Zero(t, outcomes[0].Records)
	require.NoError(t, outcomes[1].Err)
	require.Equal(t, 1, outcomes[1].Records)
	require.NoError(t, outcomes[2].Err)
}

func TestDriverPreservesKeywordOrder(t *testing.T) {
	site := NewGames401("https://store.401games.ca", g401Conf())
	fetcher := &fakeFetcher{
		pages: map[string]string{
			site.SearchURL("B Card"): g401Page("B Card", "$1.00"),
			site.SearchURL("A Card"): g401Page("A Card", "$1.00"),
		},
	}

	driver := NewDriver(site, fetcher)
	records, _ := driver.Scrape(context.Background(), []string{"B Card", "A Card"})

	require.Len(t, records, 2)
	require.Equal(t, "B Card", records[0].CardName, "records follow keyword input order, not lexical order")
	require.Equal(t, "A Card", records[1].CardName)
}

func TestDriverHonorsCancellation(t *testing.T) {
	site := NewGames401("https://store.401games.ca", g401Conf())
	fetcher := &fakeFetcher{pages: map[string]string{}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	driver := NewDriver(site, fetcher)
	records, outcomes := driver.Scrape(ctx, []string{"Sol Ring", "Counterspell"})

	require.Empty(t, records)
	require.Empty(t, outcomes)
	require.Empty(t, fetcher.calls, "no fetches once canceled")
}

func TestDriverNonMatchingListingsYieldNothing(t *testing.T) {
	site := NewGames401("https://store.401games.ca", g401Conf())
	fetcher := &fakeFetcher{
		pages: map[string]string{
			site.SearchURL("Sol Ring"): g401Page("Totally Different Card", "$9.99"),
		},
	}

	driver := NewDriver(site, fetcher)
	records, outcomes := driver.Scrape(context.Background(), []string{"Sol Ring"})

	require.Empty(t, records)
	require.Len(t, outcomes, 1)
	require.NoError(t, outcomes[0].Err, "a no-match page is not a failure")
	require.Zero(t, outcomes[0].Records)
}
