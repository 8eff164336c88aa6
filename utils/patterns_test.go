package utils

import "testing"

func TestPatternMatcherInclude(t *testing.T) {
	m := NewPatternMatcher([]string{"*.txt"}, nil)
	if !m.ShouldInclude("/data/notes.txt") {
		t.Fatal("expected txt to be included")
	}
	if m.ShouldInclude("/data/notes.pdf") {
		t.Fatal("expected pdf to be excluded by include list")
	}
}

func TestPatternMatcherExclude(t *testing.T) {
	m := NewPatternMatcher(nil, []string{"**/tmp/**"})
	if m.ShouldInclude("/data/tmp/scratch.docx") {
		t.Fatal("expected tmp path to be excluded")
	}
	if !m.ShouldInclude("/data/reports/q3.docx") {
		t.Fatal("expected non-tmp path to be included")
	}
}

func TestPatternMatcherRegexFallback(t *testing.T) {
	m := NewPatternMatcher([]string{`report-\d+`}, nil)
	if !m.ShouldInclude("/data/report-2024.xlsx") {
		t.Fatal("expected regex include to match")
	}
}

func TestPatternMatcherNil(t *testing.T) {
	var m *PatternMatcher
	if !m.ShouldInclude("anything") {
		t.Fatal("nil matcher should include everything")
	}
}
