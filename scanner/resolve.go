package scanner

import (
	"strings"
	"time"

	"docsentry/classify"
)

// Age group buckets, keyed the way dashboard and notification consumers
// expect them.
const (
	ageLessThanOneYear    = "lessThanOneYear"
	ageOneToThreeYears    = "oneToThreeYears"
	ageMoreThanThreeYears = "moreThanThreeYears"
)

const fileTypeOthers = "others"

// fileTypes is the closed category set, in stable order.
var fileTypes = []string{
	"documents",
	"spreadsheets",
	"presentations",
	"pdfs",
	"images",
	"videos",
	"audio",
	"archives",
	"code",
}

// extensionTypes maps normalized format tags to file type categories.
var extensionTypes = map[string]string{
	"docx": "documents", "txt": "documents", "doc": "documents",
	"rtf": "documents", "odt": "documents", "pages": "documents",
	"md": "documents", "gdoc": "documents",

	"xlsx": "spreadsheets", "xls": "spreadsheets", "csv": "spreadsheets",
	"ods": "spreadsheets", "numbers": "spreadsheets", "gsheet": "spreadsheets",

	"pptx": "presentations", "ppt": "presentations", "odp": "presentations",
	"key": "presentations", "gslides": "presentations",

	"pdf": "pdfs",

	"jpg": "images", "jpeg": "images", "png": "images", "webp": "images",
	"gif": "images", "bmp": "images", "tiff": "images", "heic": "images",
	"gdraw": "images",

	"mp4": "videos", "mov": "videos", "avi": "videos", "wmv": "videos",
	"flv": "videos", "mkv": "videos", "webm": "videos",

	"mp3": "audio", "wav": "audio", "ogg": "audio", "m4a": "audio",
	"wma": "audio",

	"zip": "archives", "rar": "archives", "7z": "archives", "tar": "archives",
	"gz": "archives",

	"py": "code", "js": "code", "java": "code", "cpp": "code", "h": "code",
	"cs": "code", "php": "code", "rb": "code", "swift": "code", "gs": "code",
}

// textBearingTypes are the file type categories routed through text
// extraction. Everything else is counted but never fetched.
var textBearingTypes = map[string]bool{
	"documents":     true,
	"spreadsheets":  true,
	"presentations": true,
	"pdfs":          true,
}

// resolveFileType maps a format tag to its file type category; unrecognized
// tags land in "others".
func resolveFileType(format string) string {
	if t, ok := extensionTypes[strings.ToLower(format)]; ok {
		return t
	}
	return fileTypeOthers
}

// resolveAgeGroup buckets a file by modification age against the scan-start
// instant, so every file in a batch is measured against the same "now". An
// unknown modification time gets the middle bucket.
func resolveAgeGroup(modified time.Time, scanStart time.Time) string {
	if modified.IsZero() {
		return ageOneToThreeYears
	}
	days := int(scanStart.Sub(modified).Hours() / 24)
	switch {
	case days <= 365:
		return ageLessThanOneYear
	case days <= 1095:
		return ageOneToThreeYears
	default:
		return ageMoreThanThreeYears
	}
}

// resolveDepartment maps file owner identities through the configured
// owner→department table. The first owner with a mapping wins; files with no
// mapped owner fall into the default bucket.
func resolveDepartment(owners []string, departments map[string]string, fallback string) string {
	for _, owner := range owners {
		if dept, ok := departments[strings.ToLower(strings.TrimSpace(owner))]; ok {
			return dept
		}
	}
	return fallback
}

func sensitivityKeys() []string {
	cats := classify.Categories()
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return out
}
