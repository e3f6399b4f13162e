package services

import (
	"strings"
	"testing"

	"github.com/yaswanth09-tech/reviewinsight/models"
)

func statsWith(mutate func(*models.Statistics)) *models.Statistics {
	stats := &models.Statistics{
		TotalReviews: 10,
		ValidReviews: 10,
		AvgWordCount: 20,
		RatingCounts: map[int]int{},
	}
	mutate(stats)
	return stats
}

func TestInsightEngagementBuckets(t *testing.T) {
	tests := []struct {
		avg  float64
		want string
	}{
		{5, "brief"},
		{14.9, "brief"},
		{15, "moderate"},
		{50, "moderate"},
		{50.1, "detailed"},
		{80, "detailed"},
	}

	svc := NewInsightService(newTestLogger())
	for _, tt := range tests {
		stats := statsWith(func(s *models.Statistics) { s.AvgWordCount = tt.avg })
		insights := svc.Generate(stats, nil)
		if !strings.Contains(insights[0], tt.want) {
			t.Errorf("avg %.1f words: got %q, want substring %q", tt.avg, insights[0], tt.want)
		}
	}
}

func TestInsightSentimentBuckets(t *testing.T) {
	tests := []struct {
		avg  float64
		want string
	}{
		{4.8, "Strong positive sentiment"},
		{4.0, "Strong positive sentiment"},
		{3.2, "Mixed sentiment"},
		{3.0, "Mixed sentiment"},
		{2.9, "Negative sentiment trend"},
		{1.2, "Negative sentiment trend"},
	}

	svc := NewInsightService(newTestLogger())
	for _, tt := range tests {
		stats := statsWith(func(s *models.Statistics) {
			s.RatedReviews = 10
			s.AvgRating = tt.avg
		})
		joined := strings.Join(svc.Generate(stats, nil), "\n")
		if !strings.Contains(joined, tt.want) {
			t.Errorf("avg rating %.1f: missing %q in %q", tt.avg, tt.want, joined)
		}
	}
}

func TestInsightSentimentFormatting(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	stats := statsWith(func(s *models.Statistics) {
		s.RatedReviews = 10
		s.AvgRating = 3.54
	})
	joined := strings.Join(svc.Generate(stats, nil), "\n")
	if !strings.Contains(joined, "(avg rating: 3.54/5.0)") {
		t.Errorf("sentiment insight should embed the two-decimal average: %q", joined)
	}
}

func TestInsightTopics(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	topWords := []models.WordCount{
		{Word: "battery", Count: 12},
		{Word: "screen", Count: 9},
		{Word: "price", Count: 7},
		{Word: "camera", Count: 3},
	}

	joined := strings.Join(svc.Generate(statsWith(func(*models.Statistics) {}), topWords), "\n")
	want := "Most discussed topics: 'battery', 'screen', 'price'"
	if !strings.Contains(joined, want) {
		t.Errorf("topics insight: missing %q in %q", want, joined)
	}
}

func TestInsightTopicsFewWords(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	topWords := []models.WordCount{{Word: "battery", Count: 2}}

	joined := strings.Join(svc.Generate(statsWith(func(*models.Statistics) {}), topWords), "\n")
	if !strings.Contains(joined, "Most discussed topics: 'battery'") {
		t.Errorf("single-word topics insight: %q", joined)
	}
}

func TestInsightNoTopicsLine(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	joined := strings.Join(svc.Generate(statsWith(func(*models.Statistics) {}), nil), "\n")
	if strings.Contains(joined, "Most discussed topics") {
		t.Errorf("no top words should mean no topics insight: %q", joined)
	}
}

func TestInsightDataQuality(t *testing.T) {
	svc := NewInsightService(newTestLogger())

	concern := statsWith(func(s *models.Statistics) {
		s.EmptyReviews = 2
		s.ValidReviews = 8
	})
	joined := strings.Join(svc.Generate(concern, nil), "\n")
	if !strings.Contains(joined, "Data quality concern: 20.0% empty reviews") {
		t.Errorf("20%% empty should warn: %q", joined)
	}

	clean := statsWith(func(s *models.Statistics) { s.EmptyReviews = 1; s.ValidReviews = 9 })
	joined = strings.Join(svc.Generate(clean, nil), "\n")
	if !strings.Contains(joined, "Good data quality with minimal missing reviews") {
		t.Errorf("10%% empty is still good quality: %q", joined)
	}
}

func TestInsightNonEnglishNote(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	stats := statsWith(func(s *models.Statistics) { s.NonEnglish = 3 })
	joined := strings.Join(svc.Generate(stats, nil), "\n")
	if !strings.Contains(joined, "3 reviews appear to be written in another language") {
		t.Errorf("non-English note missing: %q", joined)
	}
}

func TestInsightEmptyDataset(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	insights := svc.Generate(&models.Statistics{}, nil)
	if len(insights) != 1 || insights[0] != "No reviews available for analysis" {
		t.Errorf("empty dataset insights: %v", insights)
	}
}
