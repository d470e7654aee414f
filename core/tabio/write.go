package tabio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tealeg/xlsx"

	"rosterfill/core/dataset"
)

// Save writes a Dataset to path, choosing the representation by extension.
// Row keys outside the header list are dropped; headers missing from a row
// write as empty strings. A failed write may leave whatever the filesystem
// already committed.
func Save(path string, ds *dataset.Dataset, cfg Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return saveDelimited(path, ds, cfg)
	case ".xlsx", ".xls", ".xlsm":
		return saveWorkbook(path, ds)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// saveDelimited writes UTF-8 delimited text prefixed with a byte-order
// marker so spreadsheet applications pick the encoding up.
func saveDelimited(path string, ds *dataset.Dataset, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := writeDelimited(f, ds, cfg); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func writeDelimited(w io.Writer, ds *dataset.Dataset, cfg Config) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.Comma = cfg.Comma()
	if err := cw.Write(ds.Headers); err != nil {
		return err
	}

	record := make([]string, len(ds.Headers))
	for _, row := range ds.Rows {
		for i, h := range ds.Headers {
			record[i] = row[h]
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// saveWorkbook writes a single-sheet workbook: header row, then data rows in
// header order.
func saveWorkbook(path string, ds *dataset.Dataset) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Sheet1")
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}

	header := sheet.AddRow()
	for _, h := range ds.Headers {
		header.AddCell().SetString(h)
	}
	for _, row := range ds.Rows {
		r := sheet.AddRow()
		for _, h := range ds.Headers {
			r.AddCell().SetString(row[h])
		}
	}

	if err := f.Save(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}
