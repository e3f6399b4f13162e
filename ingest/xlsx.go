package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// xlsxReader loads the first sheet of an Excel workbook.
type xlsxReader struct{}

func (xlsxReader) read(path string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("xlsx: open: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("xlsx: workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("xlsx: read sheet %q: %w", sheets[0], err)
	}
	if len(rows) <= 1 {
		return nil, nil, ErrEmptyDataset
	}
	return rows[0], rows[1:], nil
}
