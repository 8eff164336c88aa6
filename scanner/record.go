package scanner

// FileRecord is one scanned file's complete outcome. Risk fields are present
// only when the file has sensitive findings: a clean file carries neither a
// score nor a level, because absence means "not assessed", not "assessed as
// zero risk".
type FileRecord struct {
	ID                     string                 `json:"id"`
	Name                   string                 `json:"name"`
	Format                 string                 `json:"format,omitempty"`
	Size                   int64                  `json:"size,omitempty"`
	CreatedTime            string                 `json:"createdTime,omitempty"`
	ModifiedTime           string                 `json:"modifiedTime,omitempty"`
	FileType               string                 `json:"fileType"`
	AgeGroup               string                 `json:"ageGroup"`
	Department             string                 `json:"department"`
	SensitiveCategories    []string               `json:"sensitiveCategories"`
	SensitivityExplanation string                 `json:"sensitivityExplanation,omitempty"`
	SensitivityReason      string                 `json:"sensitivityReason,omitempty"`
	Confidence             float64                `json:"confidence,omitempty"`
	RiskScore              *float64               `json:"riskScore,omitempty"`
	RiskLevel              string                 `json:"riskLevel,omitempty"`
	ContentDigest          string                 `json:"contentDigest,omitempty"`
	FuzzyHash              string                 `json:"fuzzyHash,omitempty"`
	Metadata               map[string]interface{} `json:"metadata,omitempty"`
}

// Sensitive reports whether the record carries at least one sensitive
// category.
func (r *FileRecord) Sensitive() bool {
	return r != nil && len(r.SensitiveCategories) > 0
}

// Stats aggregates a batch scan. Counter maps are pre-seeded with every valid
// key so consumers never have to guard against missing buckets.
type Stats struct {
	TotalDocuments  int            `json:"total_documents"`
	TotalSensitive  int            `json:"total_sensitive"`
	TotalDuplicates int            `json:"total_duplicates"`
	ByFileType      map[string]int `json:"by_file_type"`
	BySensitivity   map[string]int `json:"by_sensitivity"`
	ByAgeGroup      map[string]int `json:"by_age_group"`
	ByRiskLevel     map[string]int `json:"by_risk_level"`
	ByDepartment    map[string]int `json:"by_department"`
}

// ScanReport is the complete output of one batch scan invocation. The core
// never mutates it after returning; later edits (department reassignment and
// the like) belong to whoever persists it.
type ScanReport struct {
	Files          []*FileRecord `json:"files"`
	Stats          Stats         `json:"stats"`
	ScanComplete   bool          `json:"scan_complete"`
	ProcessedFiles int           `json:"processed_files"`
	TotalFiles     int           `json:"total_files"`
	FailedFiles    []string      `json:"failed_files"`
}

func newReport() *ScanReport {
	report := &ScanReport{
		Files:       []*FileRecord{},
		FailedFiles: []string{},
		Stats: Stats{
			ByFileType:    make(map[string]int, len(fileTypes)+1),
			BySensitivity: make(map[string]int, 4),
			ByAgeGroup: map[string]int{
				ageLessThanOneYear:    0,
				ageOneToThreeYears:    0,
				ageMoreThanThreeYears: 0,
			},
			ByRiskLevel: map[string]int{
				"low":    0,
				"medium": 0,
				"high":   0,
			},
			ByDepartment: make(map[string]int),
		},
	}
	for _, ft := range fileTypes {
		report.Stats.ByFileType[ft] = 0
	}
	report.Stats.ByFileType[fileTypeOthers] = 0
	for _, cat := range sensitivityKeys() {
		report.Stats.BySensitivity[cat] = 0
	}
	return report
}
