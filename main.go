package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/yaswanth09-tech/reviewinsight/config"
	"github.com/yaswanth09-tech/reviewinsight/ingest"
	"github.com/yaswanth09-tech/reviewinsight/services"
	"github.com/yaswanth09-tech/reviewinsight/storage"
	"github.com/yaswanth09-tech/reviewinsight/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(cfg.Verbose)

	runID := uuid.NewString()[:8]
	logger.Info("=== ReviewInsight analysis starting (run %s) ===", runID)
	logger.Info("Config — input: %s | report: %s | top words: %d | min token length: %d | stemming: %v",
		cfg.InputPath, cfg.ReportPath, cfg.TopWords, cfg.MinTokenLength, cfg.StemTokens)

	loader := ingest.NewLoader(cfg, logger)
	raw, err := loader.Load()
	if err != nil {
		if errors.Is(err, ingest.ErrEmptyDataset) {
			logger.Warn("Input dataset is empty — producing a blank report")
		} else {
			logger.Error("Load failed: %v", err)
			os.Exit(1)
		}
	}

	cleaner := services.NewCleaner(logger)
	reviews := cleaner.Clean(raw)

	tokenizer := services.NewTokenizer(cfg, logger)
	tokenizer.Apply(reviews)

	stats := services.NewStatsService(logger).Compute(reviews)

	counter := services.NewWordCounter(logger)
	counter.AddAll(reviews)
	topWords := counter.Top(cfg.TopWords)

	insightSvc := services.NewInsightService(logger)
	insights := insightSvc.Generate(stats, topWords)

	report := services.NewRenderer(cfg.TopWords).Render(stats, topWords, insights, time.Now())

	writer, err := storage.NewReportWriter(cfg.ReportPath)
	if err != nil {
		logger.Error("Failed to create report writer: %v", err)
		os.Exit(1)
	}
	defer writer.Close()

	if err := writer.Write(report); err != nil {
		logger.Error("Report write failed: %v", err)
		os.Exit(1)
	}
	logger.Info("Report written to %s (%d bytes)", cfg.ReportPath, len(report))

	insightSvc.PrintSummary(stats, topWords)

	fmt.Printf("  Done. Report → %s (%d reviews analysed)\n\n", cfg.ReportPath, stats.TotalReviews)
}
