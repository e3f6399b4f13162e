package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// jsonReader loads an array of flat objects, e.g.
//
//	[{"review_text": "Great phone", "rating": 5}, ...]
//
// The first object's keys become the header so JSON input flows through the
// same column discovery as CSV and XLSX.
type jsonReader struct{}

func (jsonReader) read(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("json: open: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()

	var objects []map[string]any
	if err := dec.Decode(&objects); err != nil {
		return nil, nil, fmt.Errorf("json: decode: %w", err)
	}
	if len(objects) == 0 {
		return nil, nil, ErrEmptyDataset
	}

	header := make([]string, 0, len(objects[0]))
	for k := range objects[0] {
		header = append(header, k)
	}
	sort.Strings(header)

	rows := make([][]string, 0, len(objects))
	for _, obj := range objects {
		row := make([]string, len(header))
		for i, k := range header {
			if v, ok := obj[k]; ok && v != nil {
				row[i] = fmt.Sprint(v)
			}
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}
