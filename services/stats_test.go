package services

import (
	"testing"

	"github.com/yaswanth09-tech/reviewinsight/models"
)

func sampleReviews() []*models.Review {
	return []*models.Review{
		{ID: "row-1", RawText: "Great phone, love it!", WordCount: 4, CharCount: 21, Rating: 5},
		{ID: "row-2", RawText: "Too slow", WordCount: 2, CharCount: 8, Rating: 4},
		{ID: "row-3", RawText: "Battery easily lasts two full days", WordCount: 6, CharCount: 34, Rating: 5},
		{ID: "row-4", RawText: "", WordCount: 0, CharCount: 0, InvalidRating: true},
		{ID: "row-5", RawText: "Screen cracked on the second day of use", WordCount: 8, CharCount: 39, Rating: 2, Language: "rus"},
	}
}

func TestStatsCounts(t *testing.T) {
	stats := NewStatsService(newTestLogger()).Compute(sampleReviews())

	if stats.TotalReviews != 5 || stats.ValidReviews != 4 || stats.EmptyReviews != 1 {
		t.Errorf("counts: got %d/%d/%d, want 5/4/1",
			stats.TotalReviews, stats.ValidReviews, stats.EmptyReviews)
	}
	if stats.InvalidRatings != 1 {
		t.Errorf("InvalidRatings: got %d, want 1", stats.InvalidRatings)
	}
	if stats.NonEnglish != 1 {
		t.Errorf("NonEnglish: got %d, want 1", stats.NonEnglish)
	}
}

func TestStatsWordNumbers(t *testing.T) {
	stats := NewStatsService(newTestLogger()).Compute(sampleReviews())

	if stats.AvgWordCount != 4.0 {
		t.Errorf("AvgWordCount: got %v, want 4.0", stats.AvgWordCount)
	}
	if stats.MedianWordCount != 4.0 {
		t.Errorf("MedianWordCount: got %v, want 4.0", stats.MedianWordCount)
	}
	if stats.MinWordCount != 0 || stats.MaxWordCount != 8 {
		t.Errorf("word range: got %d-%d, want 0-8", stats.MinWordCount, stats.MaxWordCount)
	}
	if stats.AvgCharCount != 20.4 {
		t.Errorf("AvgCharCount: got %v, want 20.4", stats.AvgCharCount)
	}
}

func TestStatsRatings(t *testing.T) {
	stats := NewStatsService(newTestLogger()).Compute(sampleReviews())

	if stats.RatedReviews != 4 {
		t.Fatalf("RatedReviews: got %d, want 4", stats.RatedReviews)
	}
	if stats.AvgRating != 4.0 {
		t.Errorf("AvgRating: got %v, want 4.0", stats.AvgRating)
	}
	if stats.MinRating != 2 || stats.MaxRating != 5 {
		t.Errorf("rating range: got %d-%d, want 2-5", stats.MinRating, stats.MaxRating)
	}
	want := map[int]int{5: 2, 4: 1, 2: 1}
	for star, count := range want {
		if stats.RatingCounts[star] != count {
			t.Errorf("RatingCounts[%d]: got %d, want %d", star, stats.RatingCounts[star], count)
		}
	}
	if len(stats.RatingCounts) != len(want) {
		t.Errorf("RatingCounts has %d entries, want %d: %v", len(stats.RatingCounts), len(want), stats.RatingCounts)
	}
}

func TestStatsEmptyDataset(t *testing.T) {
	stats := NewStatsService(newTestLogger()).Compute(nil)

	if stats.TotalReviews != 0 || stats.RatedReviews != 0 {
		t.Errorf("empty dataset should produce zeroed stats: %+v", stats)
	}
	if stats.RatingCounts == nil {
		t.Error("RatingCounts should be an empty map, not nil")
	}
	if stats.AvgWordCount != 0 || stats.AvgRating != 0 {
		t.Errorf("averages should be zero: %v / %v", stats.AvgWordCount, stats.AvgRating)
	}
}

func TestStatsUnratedOnly(t *testing.T) {
	reviews := []*models.Review{
		{ID: "row-1", RawText: "no rating here", WordCount: 3, CharCount: 14},
	}
	stats := NewStatsService(newTestLogger()).Compute(reviews)

	if stats.RatedReviews != 0 || stats.AvgRating != 0 {
		t.Errorf("unrated dataset: got %d rated, avg %v", stats.RatedReviews, stats.AvgRating)
	}
	if len(stats.RatingCounts) != 0 {
		t.Errorf("RatingCounts should be empty: %v", stats.RatingCounts)
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		sorted []int
		want   float64
	}{
		{[]int{3}, 3},
		{[]int{3, 5, 9}, 5},
		{[]int{1, 2, 3, 4}, 2.5},
		{[]int{0, 0, 10, 10}, 5},
		{nil, 0},
	}

	for _, tt := range tests {
		if got := median(tt.sorted); got != tt.want {
			t.Errorf("median(%v) = %v; want %v", tt.sorted, got, tt.want)
		}
	}
}
