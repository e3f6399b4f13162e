package ingest

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// csvReader loads a CSV file through a gota dataframe. Every column is kept
// as a string; rating validation happens in the cleaner, not here.
type csvReader struct{}

func (csvReader) read(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("csv: open: %w", err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{}),
	)
	if df.Err != nil {
		// gota reports both a zero-byte file and a header-only file as an
		// empty frame
		if strings.Contains(df.Err.Error(), "empty DataFrame") {
			return nil, nil, ErrEmptyDataset
		}
		return nil, nil, fmt.Errorf("csv: %w", df.Err)
	}

	records := df.Records()
	return records[0], records[1:], nil
}
