// Package notify decides whether a finished scan warrants telling anyone, and
// renders the short summary the notification carries. Delivery is the
// caller's concern.
package notify

import (
	"fmt"
	"strings"

	"docsentry/scanner"
)

// Flags are the notification triggers derived from a scan's aggregates.
type Flags struct {
	// OldFiles is set when the batch contains files untouched for over three
	// years.
	OldFiles bool
	// SensitiveFiles is set when at least one file carries sensitive findings.
	SensitiveFiles bool
}

// Any reports whether anything at all should be sent.
func (f Flags) Any() bool {
	return f.OldFiles || f.SensitiveFiles
}

// Evaluate derives notification triggers from scan statistics.
func Evaluate(stats scanner.Stats) Flags {
	return Flags{
		OldFiles:       stats.ByAgeGroup["moreThanThreeYears"] > 0,
		SensitiveFiles: stats.TotalSensitive > 0,
	}
}

// Summary renders the one-paragraph notification body for the given scan.
// Empty when there is nothing to report.
func Summary(stats scanner.Stats) string {
	flags := Evaluate(stats)
	if !flags.Any() {
		return ""
	}
	var parts []string
	if flags.SensitiveFiles {
		parts = append(parts, fmt.Sprintf("%d of %d scanned files contain sensitive content (%d high risk)",
			stats.TotalSensitive, stats.TotalDocuments, stats.ByRiskLevel["high"]))
	}
	if flags.OldFiles {
		parts = append(parts, fmt.Sprintf("%d files have not been modified in over three years",
			stats.ByAgeGroup["moreThanThreeYears"]))
	}
	return "Scan findings: " + strings.Join(parts, "; ") + "."
}
