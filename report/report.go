// Package report persists finished scans: a versioned JSON envelope on disk
// and, when configured, an OTLP log export of the scan summary.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"docsentry/scanner"
	"docsentry/systeminfo"
)

// SchemaVersion identifies the envelope layout. Bump on any breaking change
// to field names or nesting.
const SchemaVersion = "1.0"

// Metrics describes one scan run for operators: when it ran and how much it
// covered. Aggregate findings live in the report's own stats.
type Metrics struct {
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	DurationSeconds float64 `json:"duration_seconds"`
	TotalFiles      int     `json:"total_files"`
	FilesProcessed  int     `json:"files_processed"`
	FilesFailed     int     `json:"files_failed"`
	FilesSensitive  int     `json:"files_sensitive"`
}

// NewMetrics derives run metrics from a finished report.
func NewMetrics(start, end time.Time, r *scanner.ScanReport) Metrics {
	m := Metrics{
		StartTime:       start.UTC().Format(time.RFC3339),
		EndTime:         end.UTC().Format(time.RFC3339),
		DurationSeconds: end.Sub(start).Seconds(),
	}
	if r != nil {
		m.TotalFiles = r.TotalFiles
		m.FilesProcessed = r.ProcessedFiles
		m.FilesFailed = len(r.FailedFiles)
		m.FilesSensitive = r.Stats.TotalSensitive
	}
	return m
}

// Envelope is the persisted form of a scan: the report itself plus the
// context needed to interpret it later.
type Envelope struct {
	SchemaVersion string                 `json:"schema_version"`
	SystemInfo    *systeminfo.SystemInfo `json:"system_info,omitempty"`
	Metrics       Metrics                `json:"metrics"`
	Report        *scanner.ScanReport    `json:"report"`
}

func NewEnvelope(sysInfo *systeminfo.SystemInfo, metrics Metrics, r *scanner.ScanReport) *Envelope {
	return &Envelope{
		SchemaVersion: SchemaVersion,
		SystemInfo:    sysInfo,
		Metrics:       metrics,
		Report:        r,
	}
}

// Encode writes the envelope as indented JSON.
func (e *Envelope) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// WriteFile persists the envelope to path. Reports can name people and
// documents, so the file is created owner-readable only.
func (e *Envelope) WriteFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open report file: %w", err)
	}
	buf := bufio.NewWriterSize(f, 1024*1024)
	if err := e.Encode(buf); err != nil {
		f.Close()
		return err
	}
	if err := buf.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush report file: %w", err)
	}
	_ = f.Sync()
	return f.Close()
}
