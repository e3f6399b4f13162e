package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/yaswanth09-tech/reviewinsight/models"
)

const reportWidth = 80

// Renderer assembles the plain-text report written to disk. Output is a pure
// function of its inputs; the caller supplies the clock, so the same dataset
// and timestamp always render byte-identical reports.
type Renderer struct {
	topN int
}

// NewRenderer creates a Renderer; topN only labels the word section header.
func NewRenderer(topN int) *Renderer {
	return &Renderer{topN: topN}
}

// Render builds the full report. Sections degrade gracefully: without any
// rated review the rating section is skipped and later sections renumber.
func (r *Renderer) Render(stats *models.Statistics, topWords []models.WordCount, insights []string, generatedAt time.Time) string {
	banner := strings.Repeat("=", reportWidth)
	divider := strings.Repeat("-", reportWidth)

	lines := []string{
		banner,
		"REVIEWINSIGHT - TEXT ANALYTICS REPORT",
		banner,
		"Generated on: " + generatedAt.Format("2006-01-02 15:04:05"),
		"",
	}

	lines = append(lines,
		"1. DATASET OVERVIEW",
		divider,
		"Total Reviews: "+humanize.Comma(int64(stats.TotalReviews)),
		"Valid Reviews: "+humanize.Comma(int64(stats.ValidReviews)),
		"Empty Reviews: "+humanize.Comma(int64(stats.EmptyReviews)),
	)
	if stats.NonEnglish > 0 {
		lines = append(lines, "Non-English Reviews: "+humanize.Comma(int64(stats.NonEnglish)))
	}
	lines = append(lines, "")

	lines = append(lines,
		"2. TEXT STATISTICS",
		divider,
		fmt.Sprintf("Average Review Length: %.2f words", stats.AvgWordCount),
		fmt.Sprintf("Median Review Length: %.1f words", stats.MedianWordCount),
		fmt.Sprintf("Shortest Review: %d words", stats.MinWordCount),
		fmt.Sprintf("Longest Review: %d words", stats.MaxWordCount),
		fmt.Sprintf("Average Character Count: %.2f characters", stats.AvgCharCount),
		"",
	)

	section := 3
	if stats.RatedReviews > 0 {
		lines = append(lines,
			"3. RATING ANALYSIS",
			divider,
			fmt.Sprintf("Average Rating: %.2f / 5.0", stats.AvgRating),
			fmt.Sprintf("Rating Range: %d - %d", stats.MinRating, stats.MaxRating),
		)
		if stats.InvalidRatings > 0 {
			lines = append(lines, fmt.Sprintf("Invalid Ratings: %d (excluded from rating aggregates)", stats.InvalidRatings))
		}
		lines = append(lines, "", "Rating Distribution:")
		for star := 5; star >= 1; star-- {
			count, ok := stats.RatingCounts[star]
			if !ok {
				continue
			}
			pct := float64(count) / float64(stats.RatedReviews) * 100
			bar := strings.Repeat("█", int(pct/2))
			lines = append(lines, fmt.Sprintf("  %d stars: %4d (%5.1f%%) %s", star, count, pct, bar))
		}
		lines = append(lines, "")
		section++
	}

	lines = append(lines,
		fmt.Sprintf("%d. MOST COMMON WORDS (TOP %d)", section, r.topN),
		divider,
		fmt.Sprintf("%-6s %-20s %-12s %s", "Rank", "Word", "Frequency", "Visual"),
		divider,
	)
	if len(topWords) > 0 {
		maxCount := topWords[0].Count
		for i, wc := range topWords {
			bar := strings.Repeat("▓", int(float64(wc.Count)/float64(maxCount)*30))
			lines = append(lines, fmt.Sprintf("%-6d %-20s %-12s %s",
				i+1, wc.Word, humanize.Comma(int64(wc.Count)), bar))
		}
	}
	lines = append(lines, "")
	section++

	lines = append(lines, fmt.Sprintf("%d. KEY INSIGHTS", section), divider)
	for _, insight := range insights {
		lines = append(lines, "• "+insight)
	}

	lines = append(lines, "", banner, "End of Report", banner)
	return strings.Join(lines, "\n")
}
