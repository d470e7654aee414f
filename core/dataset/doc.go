// Package dataset defines the in-memory model for tabular data: an ordered
// header list plus rows mapping column names to string values.
//
// # Model
//
// A Dataset is created once by the reader, consumed read-only by the match
// core, and a fresh Dataset is produced for export. Values are strings only;
// absent cells are the empty string, never a missing key. Two datasets exist
// per run: the complete reference list and the target list being filled.
package dataset
