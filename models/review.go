package models

// RawReview holds one row exactly as parsed from the input file.
// The rating stays a string until the cleaner rules on it.
type RawReview struct {
	ID     string
	Text   string
	Rating string
	Meta   map[string]string
}

// Review is the cleaned, validated record the analysis stages consume.
// Word and character counts are taken from the raw text; tokens come from
// the cleaned text.
type Review struct {
	ID            string
	RawText       string
	CleanText     string
	Tokens        []string
	Rating        int    // 1-5; 0 when unrated
	InvalidRating bool   // a rating value was present but rejected
	WordCount     int    // whitespace-separated words in the raw text
	CharCount     int    // runes in the raw text
	Language      string // ISO 639-3 code when reliably detected, else ""
	Meta          map[string]string
}

// Statistics holds the aggregate numbers computed over the whole dataset.
type Statistics struct {
	TotalReviews   int
	ValidReviews   int
	EmptyReviews   int
	NonEnglish     int
	InvalidRatings int

	AvgWordCount    float64
	MedianWordCount float64
	MinWordCount    int
	MaxWordCount    int
	AvgCharCount    float64

	RatedReviews int
	AvgRating    float64
	MinRating    int
	MaxRating    int
	RatingCounts map[int]int
}

// WordCount is one ranked entry of the word frequency table.
type WordCount struct {
	Word  string
	Count int
}
