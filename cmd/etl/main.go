package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"fashion-studio-etl/internal/config"
	"fashion-studio-etl/internal/extractor"
	"fashion-studio-etl/internal/loader"
	"fashion-studio-etl/internal/observability"
	"fashion-studio-etl/internal/transformer"
	"fashion-studio-etl/pkg/logger"
)

func main() {
	cfg := config.Load()

	baseURL := flag.String("base-url", cfg.BaseURL, "listing site base URL")
	pages := flag.Int("pages", cfg.PageCount, "number of listing pages to scrape")
	output := flag.String("output", cfg.OutputPath, "destination CSV path")
	flag.Parse()

	log := logger.New(cfg.LogLevel).With("run_id", uuid.New().String())

	if cfg.MetricsAddr != "" {
		observability.Start(cfg.MetricsAddr)
	}

	log.Info("starting pipeline", "base_url", *baseURL, "pages", *pages, "output", *output)
	ctx := context.Background()

	client := extractor.NewClient(*baseURL, cfg.RequestTimeout, cfg.RetryWait, cfg.RetryAttempts)
	ext := extractor.New(client, extractor.NewParser(), cfg.PageDelay, log)

	raw, err := ext.Run(ctx, *pages)
	if err != nil {
		fatal(log, "extraction failed", err)
	}
	log.Info("extraction complete", "products", len(raw))

	clean, stats, err := transformer.Transform(raw)
	if err != nil {
		fatal(log, "transformation failed", err)
	}
	log.Info("transformation complete",
		"input", stats.Input,
		"output", stats.Output,
		"sentinels", stats.Sentinels,
		"bad_price", stats.BadPrice,
		"bad_rating", stats.BadRating,
		"bad_colors", stats.BadColors,
		"duplicates", stats.Duplicates,
	)
	if len(clean) == 0 {
		fatal(log, "no records left after transformation", nil)
	}

	if err := loader.WriteCSV(clean, *output); err != nil {
		fatal(log, "load failed", err)
	}
	log.Info("pipeline complete", "rows", len(clean), "output", *output)
}

func fatal(log *slog.Logger, msg string, err error) {
	if err != nil {
		log.Error(msg, "err", err)
	} else {
		log.Error(msg)
	}
	os.Exit(1)
}
