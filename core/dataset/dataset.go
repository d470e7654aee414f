package dataset

// Row holds one record as a column-name to cell-value mapping.
// Cells are always strings; a missing or null cell is the empty string.
type Row map[string]string

// Dataset is an ordered header list plus the rows sharing that schema.
// Header order is significant: it defines column order on export.
// Duplicate header names are not rejected; within a row the later column
// wins, matching positional loading into a map.
type Dataset struct {
	// Headers lists the column names in output order.
	Headers []string `json:"headers"`

	// Rows holds the records. After New, every row resolves every header
	// to a value (missing cells filled with "").
	Rows []Row `json:"rows"`
}

// New builds a Dataset from headers and rows, normalizing every row so each
// header has a lookup. A nil row becomes a fresh all-empty row. Row keys
// outside the header list are kept on the row but invisible to export.
func New(headers []string, rows []Row) *Dataset {
	ds := &Dataset{Headers: headers, Rows: rows}
	for i, row := range ds.Rows {
		if row == nil {
			row = make(Row, len(ds.Headers))
			ds.Rows[i] = row
		}
		for _, h := range ds.Headers {
			if _, ok := row[h]; !ok {
				row[h] = ""
			}
		}
	}
	return ds
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// Columns returns the number of header columns.
func (d *Dataset) Columns() int {
	return len(d.Headers)
}

// HasHeader reports whether name occurs in the header list.
// Matching is exact and case-sensitive.
func (d *Dataset) HasHeader(name string) bool {
	for _, h := range d.Headers {
		if h == name {
			return true
		}
	}
	return false
}
