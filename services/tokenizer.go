package services

import (
	"strings"

	"github.com/kljensen/snowball"
	"github.com/kljensen/snowball/english"

	"github.com/yaswanth09-tech/reviewinsight/config"
	"github.com/yaswanth09-tech/reviewinsight/models"
	"github.com/yaswanth09-tech/reviewinsight/utils"
)

// reviewStopwords are filler words common in product reviews that the
// general English stopword list does not cover.
var reviewStopwords = []string{
	"product", "item", "thing", "really", "also", "would",
	"get", "got", "one", "much", "even", "still", "well",
}

// Tokenizer splits cleaned text into analysis tokens. Stopwords and short
// tokens are dropped; order and duplicates are preserved.
type Tokenizer struct {
	minLen int
	stem   bool
	extra  map[string]struct{}
	logger *utils.Logger
}

// NewTokenizer builds a Tokenizer from the token rules in cfg.
func NewTokenizer(cfg *config.Config, logger *utils.Logger) *Tokenizer {
	extra := make(map[string]struct{}, len(reviewStopwords)+len(cfg.ExtraStopwords))
	for _, w := range reviewStopwords {
		extra[w] = struct{}{}
	}
	for _, w := range cfg.ExtraStopwords {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			extra[w] = struct{}{}
		}
	}

	return &Tokenizer{
		minLen: cfg.MinTokenLength,
		stem:   cfg.StemTokens,
		extra:  extra,
		logger: logger,
	}
}

// IsStopword reports whether w is filtered out: the embedded English list
// plus the review-domain and configured extras.
func (t *Tokenizer) IsStopword(w string) bool {
	if _, ok := t.extra[w]; ok {
		return true
	}
	return english.IsStopWord(w)
}

// Tokens tokenizes already-cleaned text.
func (t *Tokenizer) Tokens(clean string) []string {
	if clean == "" {
		return nil
	}

	words := strings.Fields(clean)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) < t.minLen || t.IsStopword(w) {
			continue
		}
		if t.stem {
			if stemmed, err := snowball.Stem(w, "english", true); err == nil {
				w = stemmed
			}
		}
		tokens = append(tokens, w)
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// Apply fills Tokens on every review and logs the dataset totals.
func (t *Tokenizer) Apply(reviews []*models.Review) {
	var kept int
	for _, r := range reviews {
		r.Tokens = t.Tokens(r.CleanText)
		kept += len(r.Tokens)
	}
	t.logger.Info("[tokenizer] Kept %d tokens across %d reviews (min length %d, stemming %v)",
		kept, len(reviews), t.minLen, t.stem)
}
