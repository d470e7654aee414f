package tabio

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// ErrEncoding reports delimited input that none of the candidate encodings
// could decode.
var ErrEncoding = errors.New("undecodable text input")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeText decodes raw under the named candidate encoding. The x/text
// decoders substitute U+FFFD for invalid input instead of failing, so
// decodability is checked explicitly: UTF-8 candidates require valid UTF-8
// and table candidates must decode without replacement runes. latin-1 maps
// every byte and therefore never fails, which makes it the natural terminal
// candidate.
func decodeText(raw []byte, name string) (string, error) {
	switch strings.ToLower(name) {
	case "utf-8-sig":
		return decodeUTF8(bytes.TrimPrefix(raw, utf8BOM))
	case "utf-8", "utf8":
		return decodeUTF8(raw)
	case "gbk":
		return decodeTable(raw, simplifiedchinese.GBK)
	case "gb18030", "gb2312":
		return decodeTable(raw, simplifiedchinese.GB18030)
	case "latin-1", "latin1", "iso-8859-1":
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if err != nil {
			return "", err
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("unknown encoding %q", name)
	}
}

func decodeUTF8(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", errors.New("invalid UTF-8")
	}
	return string(raw), nil
}

func decodeTable(raw []byte, enc encoding.Encoding) (string, error) {
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", errors.New("invalid bytes for encoding")
	}
	return string(out), nil
}
