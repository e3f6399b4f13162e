package services

import (
	"fmt"
	"strings"

	"github.com/yaswanth09-tech/reviewinsight/models"
	"github.com/yaswanth09-tech/reviewinsight/utils"
)

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate derives the report's key-insight sentences from the aggregates.
// Thresholds are fixed, so the same dataset always yields the same sentences.
func (s *InsightService) Generate(stats *models.Statistics, topWords []models.WordCount) []string {
	if stats.TotalReviews == 0 {
		return []string{"No reviews available for analysis"}
	}

	var insights []string

	switch {
	case stats.AvgWordCount < 15:
		insights = append(insights, "Reviews are brief, suggesting quick feedback or limited engagement")
	case stats.AvgWordCount > 50:
		insights = append(insights, "Reviews are detailed, indicating high customer engagement")
	default:
		insights = append(insights, "Reviews have moderate length, showing standard engagement levels")
	}

	if len(topWords) > 0 {
		n := len(topWords)
		if n > 3 {
			n = 3
		}
		words := make([]string, n)
		for i := 0; i < n; i++ {
			words[i] = topWords[i].Word
		}
		insights = append(insights,
			fmt.Sprintf("Most discussed topics: '%s'", strings.Join(words, "', '")))
	}

	if stats.RatedReviews > 0 {
		switch {
		case stats.AvgRating >= 4.0:
			insights = append(insights,
				fmt.Sprintf("Strong positive sentiment (avg rating: %.2f/5.0)", stats.AvgRating))
		case stats.AvgRating >= 3.0:
			insights = append(insights,
				fmt.Sprintf("Mixed sentiment (avg rating: %.2f/5.0)", stats.AvgRating))
		default:
			insights = append(insights,
				fmt.Sprintf("Negative sentiment trend (avg rating: %.2f/5.0)", stats.AvgRating))
		}
	}

	emptyPct := float64(stats.EmptyReviews) / float64(stats.TotalReviews) * 100
	if emptyPct > 10 {
		insights = append(insights, fmt.Sprintf("Data quality concern: %.1f%% empty reviews", emptyPct))
	} else {
		insights = append(insights, "Good data quality with minimal missing reviews")
	}

	if stats.NonEnglish > 0 {
		insights = append(insights,
			fmt.Sprintf("%d reviews appear to be written in another language", stats.NonEnglish))
	}

	s.logger.Info("[insights] Generated %d insight sentences", len(insights))
	return insights
}

// PrintSummary writes a condensed ANSI-coloured overview to the console.
// The full plain-text report goes to disk; this is the operator's glance.
func (s *InsightService) PrintSummary(stats *models.Statistics, topWords []models.WordCount) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📊 REVIEW ANALYTICS SUMMARY\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	// Overview
	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Total reviews : \033[1m%d\033[0m\n", stats.TotalReviews)
	fmt.Printf("  Valid reviews : \033[1m%d\033[0m\n", stats.ValidReviews)
	fmt.Printf("  Empty reviews : \033[1m%d\033[0m\n", stats.EmptyReviews)
	if stats.NonEnglish > 0 {
		fmt.Printf("  Non-English   : \033[1m%d\033[0m\n", stats.NonEnglish)
	}
	fmt.Println()

	// Ratings
	fmt.Printf("\033[1;33m  Ratings\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if stats.RatedReviews > 0 {
		fmt.Printf("  Average : \033[1;32m%.2f / 5.0\033[0m\n", stats.AvgRating)
		fmt.Printf("  Range   : \033[1;32m%d – %d\033[0m\n", stats.MinRating, stats.MaxRating)
		for star := 5; star >= 1; star-- {
			count, ok := stats.RatingCounts[star]
			if !ok {
				continue
			}
			pct := float64(count) / float64(stats.RatedReviews) * 100
			fmt.Printf("  %d★ %-20s %3d (%.1f%%)\n", star, strings.Repeat("█", int(pct/5)), count, pct)
		}
	} else {
		fmt.Printf("  No rating data available\n")
	}
	fmt.Println()

	// Top words
	fmt.Printf("\033[1;33m  Top Words\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(topWords) == 0 {
		fmt.Printf("  No words survived filtering\n")
	} else {
		maxCount := topWords[0].Count
		n := len(topWords)
		if n > 5 {
			n = 5
		}
		for i := 0; i < n; i++ {
			wc := topWords[i]
			bar := strings.Repeat("▓", wc.Count*24/maxCount)
			fmt.Printf("  \033[1m%d.\033[0m %-16s %s (%d)\n", i+1, truncate(wc.Word, 16), bar, wc.Count)
		}
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
