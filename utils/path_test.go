package utils

import "testing"

func TestIsPathWithin(t *testing.T) {
	roots := []string{"/data/docs"}
	if !IsPathWithin("/data/docs/a/b.txt", roots) {
		t.Fatal("expected nested path to be within root")
	}
	if IsPathWithin("/data/other/b.txt", roots) {
		t.Fatal("expected sibling path to be outside root")
	}
	if IsPathWithin("/data", roots) {
		t.Fatal("expected parent path to be outside root")
	}
	if !IsPathWithin("/data/docs", roots) {
		t.Fatal("expected root itself to be within")
	}
}
