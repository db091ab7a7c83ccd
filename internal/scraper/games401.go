package scraper

import (
	"log"
	"net/url"
	"strings"

	"CardScout/internal/models"
	"CardScout/pkg/config"

	"github.com/PuerkitoBio/goquery"
)

// Games401 scrapes 401 Games. The storefront exposes no condition grading
// (everything sells as NM implicitly) and no exact stock counts, only an
// in-stock badge, so records carry the sentinel count 1.
type Games401 struct {
	BaseURL string
	Conf    config.ScraperConfig
}

func NewGames401(baseURL string, conf config.ScraperConfig) *Games401 {
	return &Games401{BaseURL: strings.TrimRight(baseURL, "/"), Conf: conf}
}

func (s *Games401) Code() models.Retailer { return models.Retailer401G }

func (s *Games401) SearchURL(keyword string) string {
	values := url.Values{}
	values.Set("q", keyword)
	qs := values.Encode()
	// The category filter is passed pre-encoded the way the site's own
	// search box does it.
	return s.BaseURL + "/pages/search-results?" + qs + "&filters=Category,Magic:+The+Gathering+Singles"
}

func (s *Games401) ReadySelector() string { return "#products-grid" }

func (s *Games401) ItemSelector() string { return "#products-grid .fs-results-product-card" }

// Extract matches on substring containment of the keyword within the raw
// title. This is looser than the other sites and can admit partial
// matches ("Counterspell" also matches "Counterspell Duplicate"); it is
// preserved as the site's own behavior.
func (s *Games401) Extract(keyword string, item *goquery.Selection) ([]models.CardRecord, error) {
	title := item.Find(".fs-product-title").First()
	fullCardName, ok := title.Attr("aria-label")
	if !ok {
		fullCardName = strings.TrimSpace(title.Text())
	}
	if fullCardName == "" {
		return nil, ErrNoMatch
	}

	if !strings.Contains(fullCardName, keyword) {
		return nil, ErrNoMatch
	}

	isFoil := strings.Contains(fullCardName, "(Foil)")
	if isFoil && !s.Conf.AllowFoil {
		return nil, nil
	}

	cardName := cleanParentheticals(fullCardName)
	cardSet := strings.TrimSpace(item.Find(".fs-product-vendor").First().Text())
	frame := models.FindCardFrame(fullCardName)

	stock := 0
	if item.Find(".in-stock").Length() > 0 {
		stock = 1
	} else if !s.Conf.AllowOutOfStock {
		return nil, nil
	}

	rec, err := models.NewCardRecord(cardName, cardSet, models.ConditionUnknown, isFoil,
		models.Retailer401G, stock, item.Find(".price").First().Text(), frame)
	if err != nil {
		log.Printf("ERROR: 401G: skipping listing %q: %v", cardName, err)
		return nil, nil
	}

	return []models.CardRecord{rec}, nil
}
