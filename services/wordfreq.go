package services

import (
	"sort"

	"github.com/yaswanth09-tech/reviewinsight/models"
	"github.com/yaswanth09-tech/reviewinsight/utils"
)

// WordCounter accumulates token frequencies across the dataset. Ranking is
// deterministic: ties resolve to the word that appeared first in the input.
type WordCounter struct {
	counts    map[string]int
	firstSeen map[string]int
	seq       int
	logger    *utils.Logger
}

// NewWordCounter creates an empty WordCounter.
func NewWordCounter(logger *utils.Logger) *WordCounter {
	return &WordCounter{
		counts:    make(map[string]int),
		firstSeen: make(map[string]int),
		logger:    logger,
	}
}

// Add counts one review's tokens in order.
func (w *WordCounter) Add(tokens []string) {
	for _, tok := range tokens {
		if _, seen := w.counts[tok]; !seen {
			w.firstSeen[tok] = w.seq
		}
		w.counts[tok]++
		w.seq++
	}
}

// AddAll counts every review in the dataset.
func (w *WordCounter) AddAll(reviews []*models.Review) {
	for _, r := range reviews {
		w.Add(r.Tokens)
	}
	w.logger.Info("[words] Counted %d occurrences of %d distinct words", w.Total(), w.Distinct())
}

// Total returns the number of token occurrences counted so far.
func (w *WordCounter) Total() int { return w.seq }

// Distinct returns the vocabulary size.
func (w *WordCounter) Distinct() int { return len(w.counts) }

// Top returns the n most frequent words, count descending, ties broken by
// first occurrence. Fewer than n distinct words returns them all.
func (w *WordCounter) Top(n int) []models.WordCount {
	if n <= 0 || len(w.counts) == 0 {
		return nil
	}

	ranked := make([]models.WordCount, 0, len(w.counts))
	for word, count := range w.counts {
		ranked = append(ranked, models.WordCount{Word: word, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return w.firstSeen[ranked[i].Word] < w.firstSeen[ranked[j].Word]
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
