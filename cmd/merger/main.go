package main

import (
	"log/slog"
	"os"

	"github.com/baxromumarov/quiz-tools/internal/config"
	"github.com/baxromumarov/quiz-tools/internal/observability"
	"github.com/baxromumarov/quiz-tools/internal/questions"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := config.DefaultMerger()

	merger, err := questions.NewMerger(cfg.Indent)
	if err != nil {
		slog.Error("failed to init merger", "error", err)
		os.Exit(1)
	}

	res, err := merger.Run(cfg, os.Stdout)
	if err != nil {
		kind := observability.ClassifyError(err)
		observability.IncError(kind, "merger")
		slog.Error("merge failed",
			"first", cfg.FirstFile,
			"second", cfg.SecondFile,
			"type", kind,
			"error", err,
		)
		os.Exit(1)
	}
	observability.AddQuestionsMerged(res.Total)

	slog.Info("questions merged",
		"output", cfg.OutputFile,
		"total", observability.Snapshot().QuestionsMerged,
	)
}
