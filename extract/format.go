package extract

// Format is the closed set of content formats the extractor understands.
// Dispatch over it is exhaustive; anything else is ErrUnsupported.
type Format int

const (
	FormatUnknown Format = iota
	FormatDocx
	FormatPptx
	FormatXlsx
	FormatPDF
	FormatText
	FormatImage
)

func (f Format) String() string {
	switch f {
	case FormatDocx:
		return "docx"
	case FormatPptx:
		return "pptx"
	case FormatXlsx:
		return "xlsx"
	case FormatPDF:
		return "pdf"
	case FormatText:
		return "text"
	case FormatImage:
		return "image"
	default:
		return "unknown"
	}
}

// ParseFormat maps a normalized short format tag (an extension-style code,
// not a MIME string) to a Format. Tags without a text extraction handler map
// to FormatUnknown.
func ParseFormat(tag string) Format {
	switch tag {
	case "docx":
		return FormatDocx
	case "pptx":
		return FormatPptx
	case "xlsx":
		return FormatXlsx
	case "pdf":
		return FormatPDF
	case "txt", "md", "csv", "rtf":
		return FormatText
	case "jpg", "jpeg", "png", "webp", "bmp", "tiff":
		return FormatImage
	default:
		return FormatUnknown
	}
}
