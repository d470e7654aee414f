// Package match joins a complete reference dataset against a partially
// anonymized target dataset and fills configured columns from the matched
// reference rows.
//
// # Pipeline
//
// The package splits one fill run into two pure steps:
//
//  1. BuildPlan resolves the configured mappings against the target's
//     header list into the output schema: overwrite entries reuse an
//     existing column, new-column entries append one (suffixed when the
//     name collides with the schema so far).
//
//  2. Run indexes the reference rows by trimmed key value and walks the
//     target rows once, copying each planned column from the matched
//     reference row, or writing the empty string when the key is absent.
//
// Both steps are deterministic functions over their inputs: they hold no
// state, never mutate the input datasets, and never drop or reorder target
// rows. Matching is exact string equality of trimmed key values; duplicate
// reference keys keep the row seen last.
//
// Spec.Validate covers the preconditions Run assumes (datasets loaded, key
// and mapping columns present in the loaded headers, at least one active
// mapping); the shell calls it before invoking the pipeline.
package match
