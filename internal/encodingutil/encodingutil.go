// Package encodingutil normalizes raw document bytes to UTF-8 before XML
// parsing. Feeds in the wild declare encodings the XML parser does not
// speak natively (EUC-KR, Shift_JIS, windows-1252, ...) or carry none at
// all; this package decodes them using byte-order marks, the XML
// declaration, and statistical detection, in that order.
package encodingutil

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gogs/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// declScanLimit bounds how far into the document the XML declaration is
// searched for. The declaration must open the document, so anything past
// the first kilobyte is noise.
const declScanLimit = 1024

var xmlDeclEncoding = regexp.MustCompile(`(?i)<\?xml[^?>]*\bencoding\s*=\s*["']([A-Za-z0-9._-]+)["']`)

// charsetAliases maps detector-reported names to their WHATWG labels when
// the two disagree.
var charsetAliases = map[string]string{
	"gb-18030": "gb18030",
}

// NormalizeXML returns data transcoded to UTF-8. The original XML
// declaration is left in place; the XML parser must therefore be
// configured to ignore declared encodings it would otherwise reject.
//
// Resolution order: byte-order mark, declared encoding, verbatim when the
// bytes are already valid UTF-8, then statistical detection. An error
// means the bytes could not be decoded by any of those routes.
func NormalizeXML(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return data, nil
	}
	if out, ok, err := decodeBOM(data); ok {
		return out, err
	}
	if name := declaredEncoding(data); name != "" && !isUTF8Name(name) {
		return decodeNamed(data, name)
	}
	if utf8.Valid(data) && bytes.IndexByte(data, 0) < 0 {
		return data, nil
	}
	det, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || det == nil || det.Charset == "" {
		return nil, fmt.Errorf("encoding: unable to detect character set")
	}
	if isUTF8Name(det.Charset) {
		if utf8.Valid(data) {
			return data, nil
		}
		return nil, fmt.Errorf("encoding: detected UTF-8 but data is not valid UTF-8")
	}
	return decodeNamed(data, det.Charset)
}

// decodeBOM handles inputs that open with a byte-order mark. ok is false
// when no BOM is present. UTF-32 marks are checked before UTF-16 since a
// UTF-32LE mark begins with a UTF-16LE one.
func decodeBOM(data []byte) (out []byte, ok bool, err error) {
	switch {
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		rest := data[3:]
		if !utf8.Valid(rest) {
			return nil, true, fmt.Errorf("encoding: UTF-8 byte-order mark on invalid UTF-8 data")
		}
		return rest, true, nil
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE, 0x00, 0x00}):
		out, err = decode(data, utf32.UTF32(utf32.LittleEndian, utf32.UseBOM))
		return out, true, err
	case bytes.HasPrefix(data, []byte{0x00, 0x00, 0xFE, 0xFF}):
		out, err = decode(data, utf32.UTF32(utf32.BigEndian, utf32.UseBOM))
		return out, true, err
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		out, err = decode(data, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM))
		return out, true, err
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		out, err = decode(data, unicode.UTF16(unicode.BigEndian, unicode.UseBOM))
		return out, true, err
	}
	return nil, false, nil
}

// declaredEncoding returns the encoding named in the XML declaration, or
// "" when the document has none readable as ASCII.
func declaredEncoding(data []byte) string {
	head := data
	if len(head) > declScanLimit {
		head = head[:declScanLimit]
	}
	m := xmlDeclEncoding.FindSubmatch(head)
	if m == nil {
		return ""
	}
	return string(m[1])
}

func decodeNamed(data []byte, name string) ([]byte, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		if alias, ok := charsetAliases[strings.ToLower(name)]; ok {
			enc, err = htmlindex.Get(alias)
		}
		if err != nil {
			return nil, fmt.Errorf("encoding: unsupported character set %q", name)
		}
	}
	out, err := decode(data, enc)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(out) {
		return nil, fmt.Errorf("encoding: %q data did not decode to valid UTF-8", name)
	}
	return out, nil
}

func decode(data []byte, enc encoding.Encoding) ([]byte, error) {
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("encoding: decode failed: %v", err)
	}
	return out, nil
}

func isUTF8Name(name string) bool {
	switch strings.ToLower(name) {
	case "utf-8", "utf8", "us-ascii", "ascii":
		return true
	}
	return false
}
