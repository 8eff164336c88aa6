package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// OOXML documents are zip archives of XML parts. Visible text lives in <w:t>
// (Word), <a:t> (PowerPoint) and <t> (shared strings, inline strings)
// elements, so pulling character data from elements locally named "t" covers
// them all. Spreadsheet cell values are the exception: numbers sit in <v>
// elements inside worksheet parts and never reach the shared string table,
// so worksheets get their own collector.

// partCollector pulls the visible text out of one archive part.
type partCollector func(io.Reader) (string, error)

func docxText(data []byte) (string, error) {
	return ooxmlText(data, func(name string) partCollector {
		if name == "word/document.xml" ||
			strings.HasPrefix(name, "word/header") ||
			strings.HasPrefix(name, "word/footer") {
			return xmlTextContent
		}
		return nil
	})
}

func pptxText(data []byte) (string, error) {
	return ooxmlText(data, func(name string) partCollector {
		if strings.HasPrefix(name, "ppt/slides/slide") ||
			strings.HasPrefix(name, "ppt/notesSlides/notesSlide") {
			return xmlTextContent
		}
		return nil
	})
}

func xlsxText(data []byte) (string, error) {
	return ooxmlText(data, func(name string) partCollector {
		switch {
		case name == "xl/sharedStrings.xml":
			return xmlTextContent
		case strings.HasPrefix(name, "xl/worksheets/sheet"):
			return sheetTextContent
		}
		return nil
	})
}

func ooxmlText(data []byte, collectorFor func(name string) partCollector) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open archive: %w", err)
	}

	var parts []string
	matched := false
	for _, f := range zr.File {
		collect := collectorFor(f.Name)
		if collect == nil {
			continue
		}
		matched = true
		rc, err := f.Open()
		if err != nil {
			// A single unreadable part does not spoil the document.
			continue
		}
		text, err := collect(rc)
		rc.Close()
		if err != nil {
			continue
		}
		if text != "" {
			parts = append(parts, text)
		}
	}
	if !matched {
		return "", fmt.Errorf("no text parts found in archive")
	}
	return strings.Join(parts, "\n"), nil
}

// xmlTextContent collects character data from all elements locally named "t".
func xmlTextContent(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var sb strings.Builder
	depth := 0
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "t" {
				depth++
			}
		case xml.EndElement:
			if el.Name.Local == "t" && depth > 0 {
				depth--
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if depth > 0 {
				sb.Write(el)
			}
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

// sheetTextContent collects cell values from a worksheet part: <v> holds
// numeric and formula results, <is><t> holds inline strings. Cells typed
// t="s" keep a string table index in <v>; their text comes from
// xl/sharedStrings.xml, so the index itself is skipped.
func sheetTextContent(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var sb strings.Builder
	cellType := ""
	collecting := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "c":
				cellType = ""
				for _, attr := range el.Attr {
					if attr.Name.Local == "t" {
						cellType = attr.Value
					}
				}
			case "v":
				collecting = cellType != "s"
			case "t":
				collecting = true
			}
		case xml.EndElement:
			if (el.Name.Local == "v" || el.Name.Local == "t") && collecting {
				collecting = false
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if collecting {
				sb.Write(el)
			}
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
