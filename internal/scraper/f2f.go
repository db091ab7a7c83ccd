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

// F2F scrapes Face to Face Games. Its search results expose multiple
// purchasable variants per listing: parallel lists of condition_* and
// finish_* inputs paired against the hawkPrice nodes.
type F2F struct {
	BaseURL string
	Conf    config.ScraperConfig
}

func NewF2F(baseURL string, conf config.ScraperConfig) *F2F {
	return &F2F{BaseURL: strings.TrimRight(baseURL, "/"), Conf: conf}
}

func (s *F2F) Code() models.Retailer { return models.RetailerF2F }

func (s *F2F) SearchURL(keyword string) string {
	values := url.Values{}
	values.Set("keyword", keyword)
	values.Set("general brand", "Magic: The Gathering")
	// The site expects %20 for spaces, including the one inside the
	// "general brand" parameter name.
	qs := strings.ReplaceAll(values.Encode(), "+", "%20")
	return s.BaseURL + "/search/?" + qs
}

func (s *F2F) ReadySelector() string { return ".hawk-results__action-stockPrice" }

func (s *F2F) ItemSelector() string { return ".hawk-results .hawk-results-item__inner" }

// Extract matches on exact, case-sensitive equality between the cleaned
// title and the keyword, then emits one record per surviving price node.
func (s *F2F) Extract(keyword string, item *goquery.Selection) ([]models.CardRecord, error) {
	fullCardName := strings.TrimSpace(item.Find(".hawk-results__hawk-contentTitle").First().Text())
	cardName := cleanTitle(fullCardName)

	if cardName != keyword {
		return nil, ErrNoMatch
	}

	cardSet := strings.TrimSpace(item.Find(".hawk-results__hawk-contentSubtitle").First().Text())
	frame := models.FindCardFrame(fullCardName)

	// Condition and finish arrive as parallel attribute lists in reverse
	// purchase order. Both are reversed and then consumed from the tail,
	// one pair per price node. There is no validation that the lengths
	// line up with the price nodes; when a list runs dry the field is
	// left empty. Fragile, but it is what the page gives us.
	var conditionList, finishList []string
	item.Find(`[id^="condition_"]`).Each(func(_ int, sel *goquery.Selection) {
		if v, ok := sel.Attr("value"); ok {
			conditionList = append(conditionList, v)
		}
	})
	item.Find(`[id^="finish_"]`).Each(func(_ int, sel *goquery.Selection) {
		if v, ok := sel.Attr("value"); ok {
			finishList = append(finishList, v)
		}
	})
	reverseStrings(conditionList)
	reverseStrings(finishList)

	var res []models.CardRecord
	item.Find(".hawkPrice").Each(func(_ int, price *goquery.Selection) {
		varID, _ := price.Attr("data-var-id")
		stock := s.stockFor(item, varID)

		if !s.Conf.AllowOutOfStock && stock == 0 {
			return
		}

		condition := popString(&conditionList)
		finish := popString(&finishList)

		// Anything that is not explicitly "Non-Foil" counts as foil
		// for the purposes of the foil filter.
		if !s.Conf.AllowFoil && !strings.Contains(finish, "Non-Foil") {
			return
		}
		isFoil := strings.Contains(finish, "Foil") && !strings.Contains(finish, "Non-Foil")

		rec, err := models.NewCardRecord(cardName, cardSet, models.MapCondition(condition), isFoil,
			models.RetailerF2F, stock, price.Text(), frame)
		if err != nil {
			log.Printf("ERROR: F2F: skipping variant of %q: %v", cardName, err)
			return
		}
		res = append(res, rec)
	})

	return res, nil
}

// stockFor reads the stock count of the hawkStock node whose data-var-id
// matches the price node's. An unreadable count is treated as out of stock.
func (s *F2F) stockFor(item *goquery.Selection, varID string) int {
	sel := item.Find(".hawkStock")
	for i := 0; i < sel.Length(); i++ {
		node := sel.Eq(i)
		if id, _ := node.Attr("data-var-id"); id != varID {
			continue
		}
		raw, _ := node.Attr("data-stock-num")
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < 0 {
			return 0
		}
		return n
	}
	return 0
}

func reverseStrings(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// popString removes and returns the last element, or "" when exhausted.
func popString(s *[]string) string {
	if len(*s) == 0 {
		return ""
	}
	last := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return last
}
