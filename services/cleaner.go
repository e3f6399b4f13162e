package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/net/html"

	"github.com/yaswanth09-tech/reviewinsight/models"
	"github.com/yaswanth09-tech/reviewinsight/utils"
)

var (
	// urlRegexp matches http(s) URLs and bare www hosts
	urlRegexp = regexp.MustCompile(`http\S+|www\S+`)
	// emailRegexp matches any token containing an @
	emailRegexp = regexp.MustCompile(`\S+@\S+`)
	// nonLetterRegexp matches everything outside ASCII letters and whitespace
	nonLetterRegexp = regexp.MustCompile(`[^a-zA-Z\s]`)
	// spaceRegexp collapses runs of whitespace
	spaceRegexp = regexp.MustCompile(`\s+`)
)

// Cleaner transforms RawReviews into validated Reviews ready for analysis.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean processes raw reviews in input order. Rows are never dropped: empty
// text and rejected ratings are zero-filled and flagged so the aggregate
// stages can count and report them.
func (c *Cleaner) Clean(raw []*models.RawReview) []*models.Review {
	result := make([]*models.Review, 0, len(raw))
	var empty, invalid, foreign int

	for _, r := range raw {
		review := &models.Review{
			ID:      r.ID,
			RawText: r.Text,
			Meta:    r.Meta,
		}

		if r.Text == "" {
			empty++
			c.logger.Debug("[cleaner] %s: empty review text", r.ID)
		} else {
			review.WordCount = len(strings.Fields(r.Text))
			review.CharCount = utf8.RuneCountInString(r.Text)
			review.Language = detectLanguage(r.Text)
			if review.Language != "" && review.Language != "eng" {
				foreign++
				c.logger.Debug("[cleaner] %s: detected language %q", r.ID, review.Language)
			}
			review.CleanText = CleanText(r.Text)
		}

		if rawRating := strings.TrimSpace(r.Rating); rawRating != "" {
			rating, ok := parseRating(rawRating)
			if ok {
				review.Rating = rating
			} else {
				review.InvalidRating = true
				invalid++
				c.logger.Warn("[cleaner] %s: rejecting rating %q", r.ID, r.Rating)
			}
		}

		result = append(result, review)
	}

	c.logger.Info("[cleaner] Cleaned %d reviews (%d empty, %d invalid ratings, %d non-English)",
		len(result), empty, invalid, foreign)
	return result
}

// CleanText normalizes review text for tokenization: markup, URLs and email
// addresses removed, lowercased, everything outside ASCII letters replaced
// by a space, whitespace collapsed. Pure and deterministic.
func CleanText(text string) string {
	if strings.ContainsRune(text, '<') && strings.ContainsRune(text, '>') {
		text = stripHTML(text)
	}
	text = strings.ToLower(text)
	text = urlRegexp.ReplaceAllString(text, "")
	text = emailRegexp.ReplaceAllString(text, "")
	text = nonLetterRegexp.ReplaceAllString(text, " ")
	text = spaceRegexp.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// stripHTML extracts the text content of markup, skipping script and style
// subtrees. Plain text passes through html.Parse unchanged.
func stripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return b.String()
}

// parseRating accepts integral ratings in the 1-5 range, "4" or "4.0" style.
// Fractional and out-of-range values are rejected, not clamped.
func parseRating(raw string) (int, bool) {
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	if val != math.Trunc(val) || val < 1 || val > 5 {
		return 0, false
	}
	return int(val), true
}

// detectLanguage returns the ISO 639-3 code when whatlanggo classifies the
// text reliably, or "". Short reviews rarely qualify.
func detectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}
	return whatlanggo.LangToString(info.Lang)
}
