// Package extract turns document bytes into plain text. Each supported format
// has a dedicated handler; failures surface as errors so callers can tell a
// broken file from one that genuinely contains no text.
package extract

import (
	"errors"
	"fmt"
)

// ErrUnsupported marks a format with no extraction handler in this build.
var ErrUnsupported = errors.New("unsupported format")

// Text extracts plain text from data according to the declared format. The
// returned text may be empty without error (a blank but readable document);
// corrupt or undecodable input returns an error.
func Text(data []byte, format Format) (string, error) {
	switch format {
	case FormatDocx:
		return docxText(data)
	case FormatPptx:
		return pptxText(data)
	case FormatXlsx:
		return xlsxText(data)
	case FormatPDF:
		return pdfText(data)
	case FormatText:
		return plainText(data)
	case FormatImage:
		return imageText(data)
	case FormatUnknown:
		return "", ErrUnsupported
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, format)
	}
}
