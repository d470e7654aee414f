// Package tabio reads and writes the tabular file formats the tool
// understands: delimited text (.csv) and spreadsheet workbooks
// (.xlsx/.xls/.xlsm). Both directions speak the dataset model; the reader
// never mutates anything on disk and the writer serializes strictly in
// header order.
//
// # Formats
//
// The handler is chosen by file extension. Workbook reads use only the
// first sheet and the stored cell values (formulas come back as their last
// computed value, not formula text). Workbook writes produce a single
// sheet. Delimited writes always emit UTF-8 with a byte-order marker so
// spreadsheet applications open them correctly.
//
// # Encoding ladder
//
// Delimited input rarely arrives in one well-known encoding, so the reader
// walks an ordered candidate list (configurable, default
// utf-8-sig,utf-8,gbk,gb18030,latin-1). Each attempt must both decode and
// parse; the first success wins and exhaustion fails with ErrEncoding. The
// ladder checks decodability, not semantic correctness: a decode that
// succeeds but produced mojibake is accepted.
package tabio
