package match

import "rosterfill/core/dataset"

// Mode selects how a mapping entry writes into the target schema.
type Mode string

const (
	// ModeOverwrite writes into an existing target column.
	ModeOverwrite Mode = "overwrite"

	// ModeAppend adds a new column named after the source column.
	ModeAppend Mode = "append"
)

// Mapping is one configured copy rule: take Source from the matched
// reference row and write it into the target schema.
type Mapping struct {
	// Source is the reference column supplying the value. An entry with an
	// empty Source is inert and skipped by the planner.
	Source string `json:"source"`

	// Destination is the target column to overwrite. Empty means "derive a
	// new column from Source", regardless of Mode.
	Destination string `json:"destination"`

	// Mode selects overwrite or append behavior. Append ignores Destination
	// and always derives the write column from Source.
	Mode Mode `json:"mode"`
}

// ColumnOp is one resolved write: copy Source from the matched reference row
// into the Write column of the output row.
type ColumnOp struct {
	// Source is the reference column read per matched row.
	Source string `json:"source"`

	// Write is the output column receiving the value.
	Write string `json:"write"`
}

// Plan is the resolved output schema: the final header order plus the
// ordered column writes the matcher applies to every row.
type Plan struct {
	// Headers is the output header list: the target's original headers
	// followed by appended columns in mapping order.
	Headers []string `json:"headers"`

	// Ops are the resolved writes, in mapping order.
	Ops []ColumnOp `json:"ops"`

	// Added lists the columns appended beyond the original target headers,
	// in the order they were appended.
	Added []string `json:"added"`
}

// Spec bundles the inputs of one fill run. The datasets are read-only; Run
// produces a fresh output dataset and never mutates them.
type Spec struct {
	// Reference is the complete list supplying values.
	Reference *dataset.Dataset

	// Target is the partially anonymized list being completed.
	Target *dataset.Dataset

	// ReferenceKey is the join column in the reference dataset.
	ReferenceKey string

	// TargetKey is the join column in the target dataset.
	TargetKey string

	// Mappings are the configured copy rules, in order.
	Mappings []Mapping
}

// Summary aggregates the match counts of one run.
// Matched + Unmatched always equals Total.
type Summary struct {
	// Total is the number of target rows processed.
	Total int `json:"total_rows"`

	// Matched counts target rows whose trimmed key hit the lookup table.
	Matched int `json:"matched_rows"`

	// Unmatched counts target rows with no reference match.
	Unmatched int `json:"unmatched_rows"`
}

// Result is the output of one fill run.
type Result struct {
	// Output is the completed dataset handed to the writer. It has one row
	// per target row, in target order.
	Output *dataset.Dataset `json:"-"`

	// Summary holds the aggregate counts reported to the operator.
	Summary Summary `json:"summary"`
}
