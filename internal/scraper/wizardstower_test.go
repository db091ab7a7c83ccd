package scraper

import (
	"strings"
	"testing"

	"CardScout/internal/models"
	"CardScout/pkg/config"

	"github.com/stretchr/testify/require"
)

const wizListing = `
<div class="inner">
  <div class="product enable-msrp">
    <h4 class="name">Counterspell (Borderless)</h4>
    <span class="category">Commander Legends</span>
    <div class="variant-row row">
      <span class="variant-qty">8 In Stock</span>
      <span class="variant-description">NM-Mint, English</span>
      <span class="regular price">CAD$ 1.50</span>
    </div>
    <div class="variant-row row">
      <span class="variant-qty">Out of Stock</span>
      <span class="variant-description">Slightly Played, English</span>
      <span class="price no-stock">CAD$ 1.25</span>
    </div>
  </div>
</div>`

func wizConf() config.ScraperConfig {
	return config.ScraperConfig{AllowFoil: true, AllowOutOfStock: false}
}

func TestWizardsTowerCaseInsensitiveMatch(t *testing.T) {
	site := NewWizardsTower("https://www.kanatacg.com", wizConf())
	item := listingFrom(t, wizListing, site.ItemSelector())

	records, err := site.Extract("counterspell", item)
	require.NoError(t, err)
	require.Len(t, records, 1)

	_, err = site.Extract("Counter", item)
	require.ErrorIs(t, err, ErrNoMatch)
}

func TestWizardsTowerVariantRows(t *testing.T) {
	site := NewWizardsTower("https://www.kanatacg.com", wizConf())
	item := listingFrom(t, wizListing, site.ItemSelector())

	records, err := site.Extract("Counterspell", item)
	require.NoError(t, err)
	require.Len(t, records, 1, "out-of-stock row should be filtered")

	rec := records[0]
	require.Equal(t, "Counterspell", rec.CardName)
	require.Equal(t, "Commander Legends", rec.CardSet)
	require.Equal(t, models.ConditionNM, rec.Condition)
	require.Equal(t, 8, rec.Stock)
	require.False(t, rec.IsFoil)
	require.Equal(t, "1.50", rec.Price.StringFixed(2))
	require.Equal(t, models.RetailerWIZ, rec.Retailer)
	require.Equal(t, "borderless", rec.Frame)
}

func TestWizardsTowerOutOfStockAllowed(t *testing.T) {
	conf := wizConf()
	conf.AllowOutOfStock = true
	site := NewWizardsTower("https://www.kanatacg.com", conf)
	item := listingFrom(t, wizListing, site.ItemSelector())

	records, err := site.Extract("Counterspell", item)
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.Equal(t, 0, records[1].Stock)
	require.Equal(t, models.ConditionSP, records[1].Condition)
	require.Equal(t, "1.25", records[1].Price.StringFixed(2), "no-stock price node is the fallback")
}

func TestWizardsTowerFoilListingFiltered(t *testing.T) {
	html := strings.Replace(wizListing, "Counterspell (Borderless)", "Counterspell - Foil", 1)

	conf := wizConf()
	conf.AllowFoil = false
	site := NewWizardsTower("https://www.kanatacg.com", conf)
	item := listingFrom(t, html, site.ItemSelector())

	// Matched, but the whole listing is filtered: zero records, no error.
	records, err := site.Extract("Counterspell", item)
	require.NoError(t, err)
	require.Empty(t, records)

	conf.AllowFoil = true
	site = NewWizardsTower("https://www.kanatacg.com", conf)
	records, err = site.Extract("Counterspell", item)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.True(t, records[0].IsFoil)
}

func TestWizardsTowerUnparseableQuantityIsSentinel(t *testing.T) {
	html := strings.Replace(wizListing, "8 In Stock", "In Stock", 1)
	site := NewWizardsTower("https://www.kanatacg.com", wizConf())
	item := listingFrom(t, html, site.ItemSelector())

	records, err := site.Extract("Counterspell", item)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, 1, records[0].Stock)
}

func TestWizardsTowerSearchURL(t *testing.T) {
	site := NewWizardsTower("https://www.kanatacg.com", wizConf())
	url := site.SearchURL("Sol Ring")
	require.Equal(t, "https://www.kanatacg.com/products/search?c=1&q=Sol+Ring", url)
}
