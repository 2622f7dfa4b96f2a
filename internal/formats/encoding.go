package formats

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding names a detected text encoding.
type Encoding string

const (
	Unknown Encoding = ""
	UTF8    Encoding = "utf-8"
	UTF16LE Encoding = "utf-16le"
	UTF16BE Encoding = "utf-16be"
	Latin1  Encoding = "iso-8859-1"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// sniffBOM returns the encoding announced by a byte order mark and the mark length.
func sniffBOM(data []byte) (Encoding, int) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return UTF8, len(bomUTF8)
	case bytes.HasPrefix(data, bomUTF16LE):
		return UTF16LE, len(bomUTF16LE)
	case bytes.HasPrefix(data, bomUTF16BE):
		return UTF16BE, len(bomUTF16BE)
	default:
		return Unknown, 0
	}
}

// Detect guesses the encoding of a JSON text.
// A document starts with an ASCII character, so a zero byte in one of the first
// two positions identifies UTF-16 without a byte order mark.
func Detect(data []byte) Encoding {
	if enc, _ := sniffBOM(data); enc != Unknown {
		return enc
	}
	if len(data) >= 2 {
		switch {
		case data[0] == 0 && data[1] != 0:
			return UTF16BE
		case data[0] != 0 && data[1] == 0:
			return UTF16LE
		}
	}
	if IsUTF8(data) {
		return UTF8
	}
	return Latin1
}

// DecodeToUTF8 transcodes data to UTF-8 and reports the encoding it was read as.
// Byte order marks are removed.
func DecodeToUTF8(data []byte) ([]byte, Encoding, error) {
	enc := Detect(data)
	_, bomLen := sniffBOM(data)
	body := data[bomLen:]

	var decoder *encoding.Decoder
	switch enc {
	case UTF8:
		return body, enc, nil
	case UTF16LE:
		decoder = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	case UTF16BE:
		decoder = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	default:
		decoder = charmap.ISO8859_1.NewDecoder()
	}

	text, _, err := transform.Bytes(decoder, body)
	if err != nil {
		return nil, enc, fmt.Errorf("failed to decode %s text: %w", enc, err)
	}
	return text, enc, nil
}
