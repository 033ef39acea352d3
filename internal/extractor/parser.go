package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"fashion-studio-etl/internal/models"
)

// ErrPageStructure indicates a fetched page is missing the listing anchors
// the parser expects.
var ErrPageStructure = errors.New("unexpected page structure")

// Fallback strings the source site uses for absent card fields. They pass
// through extraction untouched and are filtered during transform.
const (
	SentinelTitle = "Unknown Product"
	SentinelPrice = "Price Unavailable"
)

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

// ParsePage maps one listing page's HTML into raw product records, one per
// collection card.
func (p *Parser) ParsePage(html string, page int) ([]models.RawRecord, error) {
	data := []byte(html)

	// Decode to UTF-8 if needed
	enc, _, _ := charset.DetermineEncoding(data, "text/html")
	utf8data, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		// fallback: if already utf-8, continue
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("decode page %d: %w", page, err)
		}
		utf8data = data
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(utf8data))
	if err != nil {
		return nil, fmt.Errorf("parse page %d: %w", page, err)
	}

	cards := doc.Find("div.collection-card")
	if cards.Length() == 0 {
		return nil, fmt.Errorf("%w: no collection cards on page %d", ErrPageStructure, page)
	}

	records := make([]models.RawRecord, 0, cards.Length())
	cards.Each(func(_ int, card *goquery.Selection) {
		records = append(records, parseCard(card, page))
	})
	return records, nil
}

// parseCard extracts one card field-by-field, substituting the site's
// sentinel strings for missing title and price.
func parseCard(card *goquery.Selection, page int) models.RawRecord {
	rec := models.RawRecord{
		Title:      SentinelTitle,
		Price:      SentinelPrice,
		SourcePage: page,
	}

	if t := strings.TrimSpace(card.Find("h3.product-title").First().Text()); t != "" {
		rec.Title = t
	}
	if pr := strings.TrimSpace(card.Find("span.price").First().Text()); pr != "" {
		rec.Price = pr
	}

	// Remaining details live in <p> tags distinguished only by their text.
	card.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		lower := strings.ToLower(text)
		switch {
		case strings.Contains(lower, "rating") || strings.Contains(text, "⭐"):
			rec.Rating = text
		case strings.Contains(lower, "color"):
			rec.Colors = text
		case strings.Contains(lower, "size"):
			rec.Size = text
		case strings.Contains(lower, "gender"):
			rec.Gender = text
		}
	})
	return rec
}
