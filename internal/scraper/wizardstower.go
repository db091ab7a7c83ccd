package scraper

import (
	"log"
	"net/url"
	"strconv"
	"strings"

	"CardScout/internal/models"
	"CardScout/pkg/config"

	"github.com/PuerkitoBio/goquery"
)

// WizardsTower scrapes the Wizard's Tower (kanatacg) storefront. Each
// listing carries one or more variant rows with quantity, condition text
// and price; foil status comes from the listing title, not the row.
type WizardsTower struct {
	BaseURL string
	Conf    config.ScraperConfig
}

func NewWizardsTower(baseURL string, conf config.ScraperConfig) *WizardsTower {
	return &WizardsTower{BaseURL: strings.TrimRight(baseURL, "/"), Conf: conf}
}

func (s *WizardsTower) Code() models.Retailer { return models.RetailerWIZ }

func (s *WizardsTower) SearchURL(keyword string) string {
	values := url.Values{}
	values.Set("q", keyword)
	values.Set("c", "1")
	return s.BaseURL + "/products/search?" + values.Encode()
}

func (s *WizardsTower) ReadySelector() string { return ".inner" }

func (s *WizardsTower) ItemSelector() string { return ".inner .product.enable-msrp" }

// Extract matches on case-insensitive equality between the cleaned title
// and the keyword. A foil listing is filtered as a whole when foils are
// disallowed, before any variant row is read.
func (s *WizardsTower) Extract(keyword string, item *goquery.Selection) ([]models.CardRecord, error) {
	fullCardName := strings.TrimSpace(item.Find(".name").First().Text())
	cardName := cleanTitle(fullCardName)

	if !strings.EqualFold(cardName, keyword) {
		return nil, ErrNoMatch
	}

	cardSet := strings.TrimSpace(item.Find(".category").First().Text())

	isFoil := strings.Contains(fullCardName, " Foil")
	if isFoil && !s.Conf.AllowFoil {
		return nil, nil
	}

	frame := models.FindCardFrame(fullCardName)

	var res []models.CardRecord
	item.Find("div.variant-row.row").Each(func(_ int, row *goquery.Selection) {
		stock, inStock := s.parseQuantity(row.Find(".variant-qty").First().Text())
		if !inStock && !s.Conf.AllowOutOfStock {
			return
		}

		condition := models.MapCondition(row.Find(".variant-description").First().Text())

		priceSel := row.Find(".regular.price")
		if priceSel.Length() == 0 {
			priceSel = row.Find(".price.no-stock")
		}

		rec, err := models.NewCardRecord(cardName, cardSet, condition, isFoil,
			models.RetailerWIZ, stock, priceSel.First().Text(), frame)
		if err != nil {
			log.Printf("ERROR: WIZ: skipping variant of %q: %v", cardName, err)
			return
		}
		res = append(res, rec)
	})

	return res, nil
}

// parseQuantity reads the leading token of the quantity text ("8 In Stock",
// "Out of Stock"). An in-stock row whose count cannot be parsed reports the
// sentinel count 1, since the site vouched for availability.
func (s *WizardsTower) parseQuantity(text string) (stock int, inStock bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0, false
	}
	if strings.Contains(fields[0], "Out") {
		return 0, false
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n <= 0 {
		return 1, true
	}
	return n, true
}
