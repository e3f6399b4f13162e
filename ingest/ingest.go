package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaswanth09-tech/reviewinsight/config"
	"github.com/yaswanth09-tech/reviewinsight/models"
	"github.com/yaswanth09-tech/reviewinsight/utils"
)

// Column candidates, checked in order against the lowercased header.
var (
	textColumns   = []string{"review_text", "review", "text", "comment", "feedback"}
	ratingColumns = []string{"rating", "stars", "score"}
	idColumns     = []string{"id", "review_id"}
)

// Sentinel errors callers can branch on with errors.Is.
var (
	// ErrEmptyDataset marks an input with a header but no data rows.
	ErrEmptyDataset = errors.New("dataset contains no data rows")
	// ErrMissingColumn marks an input without a usable text or rating column.
	ErrMissingColumn = errors.New("required column not found")
)

// DataError wraps a load failure with the path that caused it.
type DataError struct {
	Path string
	Err  error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("ingest: %s: %v", e.Path, e.Err)
}

func (e *DataError) Unwrap() error { return e.Err }

// reader parses one input format into a header row plus data rows.
type reader interface {
	read(path string) (header []string, rows [][]string, err error)
}

// Loader reads the configured input file into raw review records.
type Loader struct {
	cfg    *config.Config
	logger *utils.Logger
}

// NewLoader creates a Loader with the given config and logger.
func NewLoader(cfg *config.Config, logger *utils.Logger) *Loader {
	return &Loader{cfg: cfg, logger: logger}
}

// Load reads the input file, locates the review and rating columns, and
// returns one RawReview per data row in file order. Unreadable files and
// missing columns fail fast; an input with no data rows returns a DataError
// wrapping ErrEmptyDataset so the caller can still produce a blank report.
func (l *Loader) Load() ([]*models.RawReview, error) {
	path := l.cfg.InputPath

	if _, err := os.Stat(path); err != nil {
		return nil, &DataError{Path: path, Err: err}
	}

	var r reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		r = csvReader{}
	case ".xlsx":
		r = xlsxReader{}
	case ".json":
		r = jsonReader{}
	default:
		return nil, &DataError{Path: path, Err: fmt.Errorf("unsupported input format %q", ext)}
	}

	header, rows, err := r.read(path)
	if err != nil {
		return nil, &DataError{Path: path, Err: err}
	}
	if len(rows) == 0 {
		return nil, &DataError{Path: path, Err: ErrEmptyDataset}
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, &DataError{Path: path, Err: err}
	}

	reviews := make([]*models.RawReview, 0, len(rows))
	for i, row := range rows {
		reviews = append(reviews, rowToReview(cols, header, row, i))
	}

	l.logger.Info("[ingest] Loaded %d reviews from %s (text column %q, rating column %q)",
		len(reviews), filepath.Base(path), cols.textName, cols.ratingName)
	return reviews, nil
}

// columns holds resolved header indexes; id is -1 when the file has none.
type columns struct {
	text       int
	rating     int
	id         int
	textName   string
	ratingName string
}

func resolveColumns(header []string) (*columns, error) {
	norm := make([]string, len(header))
	for i, h := range header {
		norm[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	}

	cols := &columns{}
	cols.text, cols.textName = findColumn(norm, header, textColumns)
	cols.rating, cols.ratingName = findColumn(norm, header, ratingColumns)
	cols.id, _ = findColumn(norm, header, idColumns)

	if cols.text == -1 {
		return nil, fmt.Errorf("%w: no review text column (tried %s)",
			ErrMissingColumn, strings.Join(textColumns, ", "))
	}
	if cols.rating == -1 {
		return nil, fmt.Errorf("%w: no rating column (tried %s)",
			ErrMissingColumn, strings.Join(ratingColumns, ", "))
	}
	return cols, nil
}

func findColumn(norm, raw []string, candidates []string) (int, string) {
	for _, cand := range candidates {
		for i, h := range norm {
			if h == cand {
				return i, raw[i]
			}
		}
	}
	return -1, ""
}

// rowToReview converts one data row. Rows shorter than the header (trailing
// empty cells trimmed by the XLSX reader) read missing cells as empty.
func rowToReview(cols *columns, header []string, row []string, idx int) *models.RawReview {
	cell := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return row[i]
	}

	r := &models.RawReview{
		Text:   cell(cols.text),
		Rating: cell(cols.rating),
	}

	if id := strings.TrimSpace(cell(cols.id)); id != "" {
		r.ID = id
	} else {
		r.ID = fmt.Sprintf("row-%d", idx+1)
	}

	for i, name := range header {
		if i == cols.text || i == cols.rating || i == cols.id {
			continue
		}
		if v := cell(i); v != "" {
			if r.Meta == nil {
				r.Meta = make(map[string]string)
			}
			r.Meta[strings.ToLower(strings.TrimSpace(name))] = v
		}
	}
	return r
}
