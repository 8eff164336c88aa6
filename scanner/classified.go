package scanner

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"docsentry/classify"
	"docsentry/risk"
)

// classifiedFile pairs a record with its final findings. Scoring runs only
// over these values, after the classification pass over a file is complete,
// so a score can never be computed from a partial findings set.
type classifiedFile struct {
	record   *FileRecord
	findings classify.Findings
	created  time.Time
	accessed time.Time
}

// newClassifiedFile stamps the sensitivity fields onto the record and returns
// the typed intermediate used by the scoring pass. Findings must be non-empty.
func newClassifiedFile(record *FileRecord, findings classify.Findings, created, accessed time.Time) *classifiedFile {
	cats := findings.CategoryList()
	names := make([]string, len(cats))
	explanations := make([]string, 0, len(cats))
	for i, cat := range cats {
		names[i] = string(cat)
		explanations = append(explanations, fmt.Sprintf("Found %s in %s category",
			strings.Join(findings[cat], ", "), cat))
	}
	sort.Strings(names)

	record.SensitiveCategories = names
	record.SensitivityExplanation = strings.Join(explanations, "; ")
	record.SensitivityReason = string(risk.PrimaryCategory(findings))
	record.Confidence = 0.8

	return &classifiedFile{
		record:   record,
		findings: findings,
		created:  created,
		accessed: accessed,
	}
}

// score fills in the risk fields on the record and returns the level label.
func (cf *classifiedFile) score(scanStart time.Time) string {
	value := risk.Score(cf.findings, cf.created, cf.accessed, scanStart)
	level := string(risk.LevelFor(value))
	cf.record.RiskScore = &value
	cf.record.RiskLevel = level
	return level
}
