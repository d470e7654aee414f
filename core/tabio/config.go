package tabio

import "strings"

// Config holds configuration for tabular file reading and writing.
type Config struct {
	// Encodings is the comma-separated list of candidate text encodings
	// tried, in order, when decoding delimited input. Recognized names:
	// utf-8-sig, utf-8, gbk, gb18030 (also accepts gb2312), latin-1.
	Encodings string `mapstructure:"encodings" default:"utf-8-sig,utf-8,gbk,gb18030,latin-1"`
	// Delimiter is the field separator for delimited files. Only the first
	// rune is used.
	Delimiter string `mapstructure:"delimiter" default:","`
	// Format is the default export format (xlsx or csv).
	Format string `mapstructure:"format" default:"xlsx"`
	// Suffix is inserted before the extension when deriving the default
	// output filename from the target filename.
	Suffix string `mapstructure:"suffix" default:"_filled"`
}

// DefaultConfig returns a Config carrying the same values the struct tag
// defaults declare, for callers that bypass the config loader.
func DefaultConfig() Config {
	return Config{
		Encodings: "utf-8-sig,utf-8,gbk,gb18030,latin-1",
		Delimiter: ",",
		Format:    "xlsx",
		Suffix:    "_filled",
	}
}

// EncodingList splits Encodings into trimmed candidate names, dropping
// empty entries.
func (c Config) EncodingList() []string {
	parts := strings.Split(c.Encodings, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}

// Comma returns the delimiter as a rune, falling back to ','.
func (c Config) Comma() rune {
	for _, r := range c.Delimiter {
		return r
	}
	return ','
}
