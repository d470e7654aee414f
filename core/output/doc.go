// Package output renders command reports in table, JSON, or YAML form.
//
// Commands build a report value and hand it to a Formatter. The table
// formatter renders Data values directly and converts plain structs through
// reflection (single structs become Property/Value tables, struct slices
// become header+rows tables). DetectFormat picks tables for terminals and
// JSON for pipes so reports stay scriptable.
package output
