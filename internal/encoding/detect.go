package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// peekSize is how many bytes the detector inspects. Bank exports put their
// header rows well inside this window.
const peekSize = 4096

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// utf16BOMs maps UTF-16 byte order marks to their decoders.
var utf16BOMs = []struct {
	bom     []byte
	decoder *encoding.Decoder
}{
	{[]byte{0xFF, 0xFE}, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()},
	{[]byte{0xFE, 0xFF}, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()},
}

// charsets maps chardet results to decoders for the legacy encodings bank
// exports actually use.
var charsets = map[string]*charmap.Charmap{
	"ISO-8859-1":   charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"ISO-8859-9":   charmap.ISO8859_9,
	"ISO-8859-15":  charmap.ISO8859_15,
}

// NewUTF8Reader wraps r in a reader that yields UTF-8, detecting the source
// encoding from a prefix of the content: BOM first, then a UTF-8 validity
// check, then chardet heuristics, falling back to Windows-1252.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	buf, err := br.Peek(peekSize)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	if bytes.HasPrefix(buf, bomUTF8) {
		// Drop the BOM, the rest is already UTF-8.
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	}

	for _, entry := range utf16BOMs {
		if bytes.HasPrefix(buf, entry.bom) {
			return transform.NewReader(br, entry.decoder), nil
		}
	}

	if utf8.Valid(buf) {
		return br, nil
	}

	result, detectErr := chardet.NewTextDetector().DetectBest(buf)
	if detectErr == nil {
		if result.Charset == "UTF-8" {
			return br, nil
		}

		if cm, ok := charsets[result.Charset]; ok {
			return transform.NewReader(br, cm.NewDecoder()), nil
		}
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}
