package tabio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat reports a file extension outside the recognized
// delimited/spreadsheet set.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Format identifies an export file format.
type Format string

const (
	// FormatCSV is delimited text output, always UTF-8 with a byte-order
	// marker.
	FormatCSV Format = "csv"
	// FormatXLSX is single-sheet spreadsheet output.
	FormatXLSX Format = "xlsx"
)

// Ext returns the format's file extension, with the leading dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// ParseFormat validates an export format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (use csv or xlsx)", ErrUnsupportedFormat, s)
	}
}

// DefaultOutputPath derives an output path next to the target file: the
// target filename with suffix appended and the extension replaced by the
// format's own.
func DefaultOutputPath(targetPath string, f Format, suffix string) string {
	ext := filepath.Ext(targetPath)
	return strings.TrimSuffix(targetPath, ext) + suffix + f.Ext()
}
