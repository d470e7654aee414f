package match

import (
	"strings"

	"rosterfill/core/dataset"
)

// BuildLookup indexes reference rows by their trimmed key value. Rows whose
// trimmed key is empty are skipped; duplicate keys keep the row seen last,
// so later reference rows win.
func BuildLookup(rows []dataset.Row, key string) map[string]dataset.Row {
	lookup := make(map[string]dataset.Row, len(rows))
	for _, row := range rows {
		k := strings.TrimSpace(row[key])
		if k == "" {
			continue
		}
		lookup[k] = row
	}
	return lookup
}

// Run executes one fill run with an already resolved plan: index the
// reference, then walk the target rows in order copying each planned column
// from the matched reference row, or the empty string when unmatched. Every
// output row is a fresh copy of its target row; the inputs are not mutated,
// no row is dropped or reordered, and matching is exact string equality of
// trimmed keys. Run assumes the spec was validated by the caller.
func Run(spec Spec, plan *Plan) *Result {
	lookup := BuildLookup(spec.Reference.Rows, spec.ReferenceKey)

	rows := make([]dataset.Row, 0, len(spec.Target.Rows))
	matched := 0
	for _, row := range spec.Target.Rows {
		out := make(dataset.Row, len(row)+len(plan.Added))
		for k, v := range row {
			out[k] = v
		}

		src, ok := lookup[strings.TrimSpace(row[spec.TargetKey])]
		if ok {
			matched++
		}
		for _, op := range plan.Ops {
			if ok {
				out[op.Write] = src[op.Source]
			} else {
				out[op.Write] = ""
			}
		}
		rows = append(rows, out)
	}

	total := len(rows)
	return &Result{
		Output: dataset.New(plan.Headers, rows),
		Summary: Summary{
			Total:     total,
			Matched:   matched,
			Unmatched: total - matched,
		},
	}
}
