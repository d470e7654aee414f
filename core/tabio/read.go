package tabio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tealeg/xlsx"

	"rosterfill/core/dataset"
)

// Load reads a tabular file into a Dataset. The handler is chosen by file
// extension: .csv is read as delimited text through the configured encoding
// ladder; .xlsx/.xls/.xlsm are read as a workbook. Anything else fails with
// ErrUnsupportedFormat.
func Load(path string, cfg Config) (*dataset.Dataset, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return loadDelimited(path, cfg)
	case ".xlsx", ".xls", ".xlsm":
		return loadWorkbook(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// loadDelimited tries each candidate encoding in order. An attempt must
// decode the whole file and parse as CSV to win; any failure moves to the
// next candidate, and exhaustion surfaces ErrEncoding. Parsing tolerates
// ragged rows and stray quotes.
func loadDelimited(path string, cfg Config) (*dataset.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	candidates := cfg.EncodingList()
	for _, name := range candidates {
		text, err := decodeText(raw, name)
		if err != nil {
			continue
		}

		r := csv.NewReader(strings.NewReader(text))
		r.Comma = cfg.Comma()
		r.FieldsPerRecord = -1
		r.LazyQuotes = true

		records, err := r.ReadAll()
		if err != nil {
			continue
		}
		return recordsToDataset(records), nil
	}
	return nil, fmt.Errorf("decode %s: %w (candidates: %s)",
		path, ErrEncoding, strings.Join(candidates, ", "))
}

// loadWorkbook reads the first sheet of a workbook: header row first, data
// rows after. The library parses the whole archive on open and holds no file
// handle afterwards. Legacy BIFF .xls files pass extension dispatch but fail
// here with the open error.
func loadWorkbook(path string) (*dataset.Dataset, error) {
	wb, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	if len(wb.Sheets) == 0 {
		return dataset.New(nil, nil), nil
	}

	sheet := wb.Sheets[0]
	if len(sheet.Rows) == 0 {
		return dataset.New(nil, nil), nil
	}

	headers := make([]string, len(sheet.Rows[0].Cells))
	for i, c := range sheet.Rows[0].Cells {
		headers[i] = c.String()
	}

	rows := make([]dataset.Row, 0, len(sheet.Rows)-1)
	for _, r := range sheet.Rows[1:] {
		row := make(dataset.Row, len(headers))
		for i, h := range headers {
			if i < len(r.Cells) {
				row[h] = r.Cells[i].String()
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return dataset.New(headers, rows), nil
}

// recordsToDataset maps records positionally onto the first record's
// headers. Short rows pad with empty strings; cells beyond the header count
// are dropped.
func recordsToDataset(records [][]string) *dataset.Dataset {
	if len(records) == 0 {
		return dataset.New(nil, nil)
	}

	headers := records[0]
	rows := make([]dataset.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(dataset.Row, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				row[h] = rec[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return dataset.New(headers, rows)
}
