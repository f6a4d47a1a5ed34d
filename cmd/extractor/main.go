package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/baxromumarov/quiz-tools/internal/config"
	"github.com/baxromumarov/quiz-tools/internal/httpx"
	"github.com/baxromumarov/quiz-tools/internal/observability"
	"github.com/baxromumarov/quiz-tools/internal/wiki"
)

func main() {
	// stdout carries the extracted text, so logs go to stderr.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := config.DefaultExtractor()
	fetcher := httpx.NewLocalFetcher("")

	sections, err := wiki.Run(context.Background(), fetcher, cfg, os.Stdout)
	if err != nil {
		kind := observability.ClassifyError(err)
		observability.IncError(kind, "extractor")
		slog.Error("extraction failed", "input", cfg.InputFile, "type", kind, "error", err)
		os.Exit(1)
	}

	for _, sec := range sections {
		if !sec.Found {
			observability.IncSectionMissing(sec.Name)
		}
		observability.AddQuotes(sec.Name, sec.Quotes())
	}

	snap := observability.Snapshot()
	slog.Info("extraction complete",
		"input", cfg.InputFile,
		"quotes", snap.QuotesTotal,
		"by_section", snap.QuotesBySection,
		"missing_sections", snap.SectionsMissing,
	)
}
