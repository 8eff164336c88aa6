//go:build !ocr

package extract

import "fmt"

// imageText is unavailable without the "ocr" build tag.
func imageText(data []byte) (string, error) {
	return "", fmt.Errorf("%w: image (built without ocr)", ErrUnsupported)
}
