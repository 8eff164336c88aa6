package scanner

import (
	"testing"
	"time"
)

func TestResolveFileType(t *testing.T) {
	cases := []struct {
		format string
		want   string
	}{
		{"docx", "documents"},
		{"DOCX", "documents"},
		{"gdoc", "documents"},
		{"xlsx", "spreadsheets"},
		{"gsheet", "spreadsheets"},
		{"pptx", "presentations"},
		{"pdf", "pdfs"},
		{"png", "images"},
		{"mp4", "videos"},
		{"mp3", "audio"},
		{"zip", "archives"},
		{"py", "code"},
		{"xyz123", "others"},
		{"", "others"},
	}
	for _, tc := range cases {
		if got := resolveFileType(tc.format); got != tc.want {
			t.Errorf("resolveFileType(%q) = %q, want %q", tc.format, got, tc.want)
		}
	}
}

func TestResolveAgeGroup(t *testing.T) {
	scanStart := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	daysAgo := func(d int) time.Time { return scanStart.AddDate(0, 0, -d) }

	cases := []struct {
		name     string
		modified time.Time
		want     string
	}{
		{"yesterday", daysAgo(1), ageLessThanOneYear},
		{"exactly one year", daysAgo(365), ageLessThanOneYear},
		{"just over one year", daysAgo(366), ageOneToThreeYears},
		{"exactly three years", daysAgo(1095), ageOneToThreeYears},
		{"just over three years", daysAgo(1096), ageMoreThanThreeYears},
		{"decade old", daysAgo(3650), ageMoreThanThreeYears},
		{"unknown modification time", time.Time{}, ageOneToThreeYears},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveAgeGroup(tc.modified, scanStart); got != tc.want {
				t.Errorf("resolveAgeGroup = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolveDepartment(t *testing.T) {
	departments := map[string]string{
		"alex.kim@example.com":  "Finance",
		"jo.patel@example.com":  "Legal",
		"sam.jones@example.com": "Engineering",
	}

	cases := []struct {
		name   string
		owners []string
		want   string
	}{
		{"direct match", []string{"alex.kim@example.com"}, "Finance"},
		{"case insensitive", []string{"Alex.Kim@Example.com"}, "Finance"},
		{"padded identity", []string{"  jo.patel@example.com "}, "Legal"},
		{"first mapped owner wins", []string{"unknown@example.com", "sam.jones@example.com"}, "Engineering"},
		{"no mapped owner", []string{"unknown@example.com"}, "Others"},
		{"no owners at all", nil, "Others"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveDepartment(tc.owners, departments, "Others"); got != tc.want {
				t.Errorf("resolveDepartment(%v) = %q, want %q", tc.owners, got, tc.want)
			}
		})
	}
}
