package fileutil

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const textDetectionSampleSize = 4096

type unicodeEncoding int

const (
	encodingUnknown unicodeEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

// IsTextFile reports whether content looks like text. Only the bytes are
// inspected; the file name plays no part.
func IsTextFile(content []byte) bool {
	if len(content) == 0 {
		return true
	}

	sample := content
	if len(sample) > textDetectionSampleSize {
		sample = sample[:textDetectionSampleSize]
	}

	if detectUnicodeEncoding(sample) != encodingUnknown {
		return true
	}
	return bytes.IndexByte(sample, 0x00) == -1
}

// DecodeText converts content to a UTF-8 string, honoring UTF-8 and UTF-16
// byte order marks. The second result is false when the decoded text is not
// valid UTF-8.
func DecodeText(content []byte) (string, bool) {
	if len(content) == 0 {
		return "", true
	}

	var text string
	switch detectUnicodeEncoding(content) {
	case encodingUTF8BOM:
		text = string(content[3:])
	case encodingUTF16LE:
		decoded, err := decodeUTF16(content, unicode.LittleEndian)
		if err != nil {
			return "", false
		}
		text = decoded
	case encodingUTF16BE:
		decoded, err := decodeUTF16(content, unicode.BigEndian)
		if err != nil {
			return "", false
		}
		text = decoded
	default:
		text = string(content)
	}
	return text, utf8.ValidString(text)
}

func detectUnicodeEncoding(sample []byte) unicodeEncoding {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return encodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return encodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return encodingUTF16BE
		}
	}
	return encodingUnknown
}

func decodeUTF16(content []byte, endian unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
