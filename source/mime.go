package source

// mimeFormats maps MIME type strings, as reported by cloud storage listing
// APIs, to normalized short format tags. Listers for such APIs should prefer
// this over parsing file names.
var mimeFormats = map[string]string{
	// Google Workspace types
	"application/vnd.google-apps.document":     "gdoc",
	"application/vnd.google-apps.spreadsheet":  "gsheet",
	"application/vnd.google-apps.presentation": "gslides",
	"application/vnd.google-apps.drawing":      "gdraw",
	"application/vnd.google-apps.form":         "gform",
	"application/vnd.google-apps.script":       "gs",
	"application/vnd.google-apps.folder":       "folder",

	// Common document types
	"application/pdf":    "pdf",
	"application/msword": "doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   "docx",
	"application/vnd.ms-excel": "xls",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         "xlsx",
	"application/vnd.ms-powerpoint": "ppt",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": "pptx",
	"application/vnd.oasis.opendocument.text":         "odt",
	"application/vnd.oasis.opendocument.spreadsheet":  "ods",
	"application/vnd.oasis.opendocument.presentation": "odp",
	"application/x-iwork-pages-sffpages":              "pages",
	"application/x-iwork-numbers-sffnumbers":          "numbers",
	"application/x-iwork-keynote-sffkey":              "key",
	"text/markdown":                                   "md",
	"text/plain":                                      "txt",
	"text/rtf":                                        "rtf",

	// Images
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
	"image/bmp":  "bmp",
	"image/tiff": "tiff",
	"image/heic": "heic",

	// Video
	"video/mp4":        "mp4",
	"video/quicktime":  "mov",
	"video/x-msvideo":  "avi",
	"video/x-ms-wmv":   "wmv",
	"video/webm":       "webm",
	"video/x-matroska": "mkv",

	// Audio
	"audio/mpeg":     "mp3",
	"audio/wav":      "wav",
	"audio/ogg":      "ogg",
	"audio/mp4":      "m4a",
	"audio/x-ms-wma": "wma",

	// Archives
	"application/zip":             "zip",
	"application/x-rar-compressed": "rar",
	"application/x-7z-compressed": "7z",
	"application/x-tar":           "tar",
	"application/gzip":            "gz",

	// Text and code
	"text/javascript": "js",
	"text/x-python":   "py",
	"text/x-java":     "java",
	"text/x-c":        "c",
	"text/x-cpp":      "cpp",
	"text/x-csharp":   "cs",
	"text/x-php":      "php",
	"text/x-ruby":     "rb",
	"text/x-swift":    "swift",
}

// FormatFromMIME maps a MIME type to a normalized format tag; empty when the
// MIME type is not recognized.
func FormatFromMIME(mimeType string) string {
	return mimeFormats[mimeType]
}
