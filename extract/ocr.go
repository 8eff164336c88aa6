//go:build ocr

package extract

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// imageText runs optical character recognition over a raster image. Available
// only in builds tagged "ocr", which require the tesseract C library.
func imageText(data []byte) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("ocr load image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr: %w", err)
	}
	return text, nil
}
