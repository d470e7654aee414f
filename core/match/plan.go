package match

import "fmt"

// BuildPlan resolves mapping entries against the target's header list into
// the final output schema.
//
// Entries are processed in order; empty sources are skipped. A new-column
// entry (empty Destination, or append mode) takes the source column's name;
// when that name is already present in the output headers it gets a numeric
// fill suffix, re-checked until unique, and the resolved name is appended to
// the schema. Overwrite entries use Destination verbatim with no collision
// check: two entries writing the same destination both stay in the plan, so
// the later one wins on every row.
func BuildPlan(targetHeaders []string, mappings []Mapping) *Plan {
	headers := make([]string, len(targetHeaders))
	copy(headers, targetHeaders)

	seen := make(map[string]bool, len(headers))
	for _, h := range headers {
		seen[h] = true
	}

	plan := &Plan{Headers: headers}
	for _, m := range mappings {
		if m.Source == "" {
			continue
		}

		write := m.Destination
		if m.Destination == "" || m.Mode == ModeAppend {
			write = m.Source
			for n := 1; seen[write]; n++ {
				write = fmt.Sprintf("%s_fill%d", m.Source, n)
			}
			seen[write] = true
			plan.Headers = append(plan.Headers, write)
			plan.Added = append(plan.Added, write)
		}
		plan.Ops = append(plan.Ops, ColumnOp{Source: m.Source, Write: write})
	}
	return plan
}

// DuplicateWrites lists write columns targeted by more than one op, in first
// appearance order. The matcher applies ops in order so the last write wins
// per row; the shell surfaces duplicates as a non-fatal warning.
func (p *Plan) DuplicateWrites() []string {
	count := make(map[string]int, len(p.Ops))
	for _, op := range p.Ops {
		count[op.Write]++
	}

	var dups []string
	reported := make(map[string]bool)
	for _, op := range p.Ops {
		if count[op.Write] > 1 && !reported[op.Write] {
			dups = append(dups, op.Write)
			reported[op.Write] = true
		}
	}
	return dups
}
