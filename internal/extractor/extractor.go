// Package extractor scrapes raw product records from the paginated listing
// site.
package extractor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fashion-studio-etl/internal/models"
	"fashion-studio-etl/internal/observability"
)

// pageResult is the outcome of one page scrape: its records, or the reason
// it was skipped.
type pageResult struct {
	Page    int
	Records []models.RawRecord
	Err     error
}

// Extractor walks the paginated listing and collects raw product records.
// A failed page is logged and skipped; the run only fails when nothing was
// extracted at all.
type Extractor struct {
	client    *Client
	parser    *Parser
	pageDelay time.Duration
	log       *slog.Logger
}

func New(client *Client, parser *Parser, pageDelay time.Duration, log *slog.Logger) *Extractor {
	return &Extractor{
		client:    client,
		parser:    parser,
		pageDelay: pageDelay,
		log:       log,
	}
}

// Run scrapes pages 1..pageCount in order and returns every record found.
func (e *Extractor) Run(ctx context.Context, pageCount int) ([]models.RawRecord, error) {
	var all []models.RawRecord
	skipped := 0

	for page := 1; page <= pageCount; page++ {
		res := e.scrapePage(ctx, page)
		if res.Err != nil {
			skipped++
			e.log.Warn("skipping page", "page", res.Page, "err", res.Err)
		} else {
			all = append(all, res.Records...)
			e.log.Info("extracted page", "page", res.Page, "products", len(res.Records))
		}

		// politeness delay between pages
		if e.pageDelay > 0 && page < pageCount {
			select {
			case <-time.After(e.pageDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("no products extracted from %d pages (%d skipped)", pageCount, skipped)
	}
	return all, nil
}

func (e *Extractor) scrapePage(ctx context.Context, page int) pageResult {
	html, err := e.client.FetchPage(ctx, page)
	if err != nil {
		observability.PagesSkipped.WithLabelValues("fetch").Inc()
		return pageResult{Page: page, Err: err}
	}
	observability.PagesFetched.Inc()

	records, err := e.parser.ParsePage(html, page)
	if err != nil {
		observability.PagesSkipped.WithLabelValues("parse").Inc()
		return pageResult{Page: page, Err: err}
	}
	observability.ProductsExtracted.Add(float64(len(records)))
	return pageResult{Page: page, Records: records}
}
