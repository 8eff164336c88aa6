package main

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"docsentry/config"
	"docsentry/logger"
)

func TestHandleSignalEventCancelsContext(t *testing.T) {
	logger.Init("error")

	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)

	done := make(chan struct{})
	go func() {
		handleSignalEvent(cancel, sigChan)
		close(done)
	}()

	sigChan <- syscall.SIGTERM

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("expected context to be canceled")
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("signal handler did not return")
	}
}

func TestBuildClassifierMergesCustomRules(t *testing.T) {
	cfg := &config.Config{
		CustomKeywords: map[string][]string{"pii": {"badge number"}},
		CustomPatterns: map[string]config.PatternRule{
			"employee_id": {Category: "pii", Regex: `EMP-\d{6}`},
		},
	}

	classifier, err := buildClassifier(cfg)
	if err != nil {
		t.Fatalf("buildClassifier: %v", err)
	}

	findings := classifier.Classify("badge number EMP-123456 on file")
	evidence := findings["pii"]
	var sawKeyword, sawPattern bool
	for _, e := range evidence {
		switch e {
		case "badge number":
			sawKeyword = true
		case "employee_id":
			sawPattern = true
		}
	}
	if !sawKeyword || !sawPattern {
		t.Errorf("custom rules missing from findings: %v", findings)
	}
}

func TestBuildClassifierRejectsBadRegex(t *testing.T) {
	cfg := &config.Config{
		CustomPatterns: map[string]config.PatternRule{
			"broken": {Category: "pii", Regex: "("},
		},
	}
	if _, err := buildClassifier(cfg); err == nil {
		t.Fatal("expected error for invalid regex")
	}
}
