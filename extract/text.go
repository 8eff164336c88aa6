package extract

import (
	"errors"
	"unicode/utf8"
)

func plainText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	if !looksLikeText(data) {
		return "", errors.New("content is not valid text")
	}
	return string(data), nil
}

// looksLikeText applies the same heuristic used for content sniffing during
// filesystem scans: valid UTF-8, no NUL bytes, and a low ratio of control
// characters.
func looksLikeText(sample []byte) bool {
	if len(sample) == 0 {
		return false
	}
	if !utf8.Valid(sample) {
		return false
	}
	var control int
	for _, b := range sample {
		if b == 0 {
			return false
		}
		if b < 0x09 || (b > 0x0D && b < 0x20) {
			control++
		}
	}
	return control <= len(sample)/10
}
