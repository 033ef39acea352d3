// Package transformer cleans raw scraped records into typed output rows.
package transformer

import (
	"errors"
	"strings"
	"time"

	"fashion-studio-etl/internal/models"
	"fashion-studio-etl/internal/observability"
)

// ErrBadInput indicates Transform was handed no record sequence at all.
// Bad rows inside a real sequence are dropped and counted, never errored.
var ErrBadInput = errors.New("input is not a record sequence")

// Stats counts what happened to the raw rows during one transform run.
type Stats struct {
	Input      int
	Sentinels  int
	BadPrice   int
	BadRating  int
	BadColors  int
	Duplicates int
	Output     int
}

// Transform validates, normalizes, currency-converts, dedups and timestamps
// the raw records, in that order. Deduplication runs on the normalized
// fields, so rows differing only in a stripped prefix collapse.
func Transform(raw []models.RawRecord) ([]models.CleanRecord, Stats, error) {
	if raw == nil {
		return nil, Stats{}, ErrBadInput
	}

	stats := Stats{Input: len(raw)}
	clean := make([]models.CleanRecord, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for _, r := range raw {
		title := strings.TrimSpace(r.Title)
		if title == "" || title == sentinelTitle || r.Rating == sentinelRating {
			stats.Sentinels++
			observability.RowsDropped.WithLabelValues("sentinel").Inc()
			continue
		}

		usd, st := parsePrice(r.Price)
		if st != fieldValid {
			stats.BadPrice++
			observability.RowsDropped.WithLabelValues("price").Inc()
			continue
		}

		rating, st := parseRating(r.Rating)
		if st != fieldValid {
			stats.BadRating++
			observability.RowsDropped.WithLabelValues("rating").Inc()
			continue
		}

		colors, st := parseColors(r.Colors)
		if st != fieldValid {
			stats.BadColors++
			observability.RowsDropped.WithLabelValues("colors").Inc()
			continue
		}

		rec := models.CleanRecord{
			Title:    title,
			PriceIDR: usd * usdToIDR,
			Rating:   rating,
			Colors:   colors,
			Size:     stripPrefix(r.Size, sizePrefix),
			Gender:   stripPrefix(r.Gender, genderPrefix),
		}

		key := rec.Key()
		if _, dup := seen[key]; dup {
			stats.Duplicates++
			observability.DuplicatesRemoved.Inc()
			continue
		}
		seen[key] = struct{}{}

		rec.ExtractedAt = time.Now()
		clean = append(clean, rec)
	}

	stats.Output = len(clean)
	return clean, stats, nil
}
