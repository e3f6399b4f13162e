package services

import (
	"sort"

	"github.com/yaswanth09-tech/reviewinsight/models"
	"github.com/yaswanth09-tech/reviewinsight/utils"
)

// StatsService aggregates descriptive statistics over the cleaned dataset.
type StatsService struct {
	logger *utils.Logger
}

// NewStatsService creates a StatsService with the given logger.
func NewStatsService(logger *utils.Logger) *StatsService {
	return &StatsService{logger: logger}
}

// Compute walks the dataset once and fills a Statistics record. An empty
// dataset returns the zero value rather than an error.
func (s *StatsService) Compute(reviews []*models.Review) *models.Statistics {
	stats := &models.Statistics{
		RatingCounts: make(map[int]int),
	}
	if len(reviews) == 0 {
		return stats
	}

	stats.TotalReviews = len(reviews)
	wordCounts := make([]int, 0, len(reviews))
	var wordTotal, charTotal, ratingTotal int

	for _, r := range reviews {
		if r.RawText == "" {
			stats.EmptyReviews++
		} else {
			stats.ValidReviews++
		}
		if r.Language != "" && r.Language != "eng" {
			stats.NonEnglish++
		}
		if r.InvalidRating {
			stats.InvalidRatings++
		}

		wordCounts = append(wordCounts, r.WordCount)
		wordTotal += r.WordCount
		charTotal += r.CharCount

		if r.Rating > 0 {
			stats.RatingCounts[r.Rating]++
			ratingTotal += r.Rating
			if stats.RatedReviews == 0 || r.Rating < stats.MinRating {
				stats.MinRating = r.Rating
			}
			if r.Rating > stats.MaxRating {
				stats.MaxRating = r.Rating
			}
			stats.RatedReviews++
		}
	}

	sort.Ints(wordCounts)
	stats.MinWordCount = wordCounts[0]
	stats.MaxWordCount = wordCounts[len(wordCounts)-1]
	stats.AvgWordCount = float64(wordTotal) / float64(stats.TotalReviews)
	stats.AvgCharCount = float64(charTotal) / float64(stats.TotalReviews)
	stats.MedianWordCount = median(wordCounts)

	if stats.RatedReviews > 0 {
		stats.AvgRating = float64(ratingTotal) / float64(stats.RatedReviews)
	}

	s.logger.Info("[stats] %d reviews — avg %.1f words, %d rated, avg rating %.2f",
		stats.TotalReviews, stats.AvgWordCount, stats.RatedReviews, stats.AvgRating)
	return stats
}

// median of a sorted int slice; even lengths average the middle pair.
func median(sorted []int) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}
