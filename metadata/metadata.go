// Package metadata pulls document properties (author, title, capture device)
// out of fetched file content. Findings land on the file record for analysts;
// nothing here affects classification or scoring.
package metadata

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"time"

	"docsentry/extract"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/rwcarlsen/goexif/exif"
)

// Extract returns format-specific document metadata, or nil when the format
// carries none we know how to read. Failures are silent: metadata is
// best-effort enrichment.
func Extract(data []byte, format extract.Format) map[string]interface{} {
	switch format {
	case extract.FormatPDF:
		return pdfMetadata(data)
	case extract.FormatDocx, extract.FormatPptx, extract.FormatXlsx:
		return ooxmlCoreMetadata(data)
	case extract.FormatImage:
		return imageMetadata(data)
	default:
		return nil
	}
}

// pdfMetadata reads standard PDF document information.
func pdfMetadata(data []byte) map[string]interface{} {
	info, err := api.PDFInfo(bytes.NewReader(data), "", nil, false, nil)
	if err != nil {
		return nil
	}

	meta := make(map[string]interface{})
	if info.Title != "" {
		meta["title"] = info.Title
	}
	if info.Author != "" {
		meta["author"] = info.Author
	}
	if info.Creator != "" {
		meta["creator"] = info.Creator
	}
	if info.Producer != "" {
		meta["producer"] = info.Producer
	}
	if len(meta) == 0 {
		return nil
	}
	return meta
}

// imageMetadata extracts a subset of EXIF tags.
func imageMetadata(data []byte) map[string]interface{} {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}

	meta := make(map[string]interface{})
	if tm, err := x.DateTime(); err == nil {
		meta["datetime"] = tm.Format(time.RFC3339)
	}
	if makeTag, err := x.Get(exif.Make); err == nil {
		meta["make"] = makeTag.String()
	}
	if modelTag, err := x.Get(exif.Model); err == nil {
		meta["model"] = modelTag.String()
	}
	if len(meta) == 0 {
		return nil
	}
	return meta
}

type coreProperties struct {
	Title          string `xml:"title"`
	Creator        string `xml:"creator"`
	LastModifiedBy string `xml:"lastModifiedBy"`
	Created        string `xml:"created"`
	Modified       string `xml:"modified"`
}

// ooxmlCoreMetadata parses docProps/core.xml, shared by docx/pptx/xlsx.
func ooxmlCoreMetadata(data []byte) map[string]interface{} {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil
	}
	var coreFile *zip.File
	for _, f := range zr.File {
		if f.Name == "docProps/core.xml" {
			coreFile = f
			break
		}
	}
	if coreFile == nil {
		return nil
	}
	rc, err := coreFile.Open()
	if err != nil {
		return nil
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil
	}
	var props coreProperties
	if err := xml.Unmarshal(raw, &props); err != nil {
		return nil
	}

	meta := make(map[string]interface{})
	if props.Title != "" {
		meta["title"] = props.Title
	}
	if props.Creator != "" {
		meta["creator"] = props.Creator
	}
	if props.LastModifiedBy != "" {
		meta["last_modified_by"] = props.LastModifiedBy
	}
	if props.Created != "" {
		meta["created"] = props.Created
	}
	if props.Modified != "" {
		meta["modified"] = props.Modified
	}
	if len(meta) == 0 {
		return nil
	}
	return meta
}
