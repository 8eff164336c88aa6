package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"docsentry/cache"
	"docsentry/classify"
	"docsentry/config"
	"docsentry/logger"
	"docsentry/notify"
	"docsentry/report"
	"docsentry/scanner"
	"docsentry/source"
	"docsentry/systeminfo"
	"docsentry/tracing"
)

func main() {
	if err := tracing.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start trace: %v\n", err)
	} else {
		defer tracing.Stop()
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(cfg.LogLevel)

	classifier, err := buildClassifier(cfg)
	if err != nil {
		logger.Fatalf("Invalid detection rules: %v", err)
	}

	// Gather system information if requested
	var sysInfo *systeminfo.SystemInfo
	if cfg.CollectSystemInfo {
		sysInfo = systeminfo.Collect()
	}

	exporter, err := report.NewExporter(report.OtelOptions{
		Endpoint:       cfg.OtelEndpoint,
		FromEnv:        cfg.OtelFromEnv,
		Headers:        cfg.OtelHeaders,
		Timeout:        cfg.OtelTimeout,
		ServiceName:    cfg.OtelServiceName,
		ExportFindings: cfg.OtelExportFindings,
	})
	if err != nil {
		logger.Warnf("OTEL export disabled: %v", err)
	}
	defer exporter.Shutdown()

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	src := source.NewLocal(cfg.StartPaths, cfg.IncludePatterns, cfg.ExcludePatterns, cfg.MaxFileSize)
	sc := scanner.New(classifier, scanner.Options{
		Concurrency:       cfg.ConcurrencyLevel,
		Timeout:           cfg.ScanTimeout,
		MaxFetchPerSecond: cfg.MaxFetchPerSecond,
		CollectMetadata:   cfg.CollectMetadata,
		FuzzyHash:         cfg.FuzzyHash,
		Departments:       cfg.Departments,
		DefaultDepartment: cfg.DefaultDepartment,
		ShowProgress:      cfg.ShowProgress,
	})

	store := cache.NewMemory(cfg.CacheTTL)
	target := strings.Join(cfg.StartPaths, ",")

	// Record start time
	startTime := time.Now()

	result, cached := store.Get(cfg.CacheScope, target)
	if !cached {
		result, err = sc.Scan(ctx, src)
		if err != nil {
			logger.Fatalf("Scanning failed: %v", err)
		}
		// Partial reports are never cached: a rescan may cover more files.
		if result.ScanComplete {
			store.Put(cfg.CacheScope, target, result)
		}
	}

	metrics := report.NewMetrics(startTime, time.Now(), result)
	env := report.NewEnvelope(sysInfo, metrics, result)
	if err := env.WriteFile(cfg.OutputFileName); err != nil {
		logger.Fatalf("Failed to write report: %v", err)
	}
	exporter.EmitSummary(env)

	if summary := notify.Summary(result.Stats); summary != "" {
		logger.Warn(summary)
	}
	if result.ScanComplete {
		logger.Infof("Scan complete: %d files, %d sensitive, report written to %s",
			result.Stats.TotalDocuments, result.Stats.TotalSensitive, cfg.OutputFileName)
	} else {
		logger.Warnf("Partial report written to %s: %d of %d files processed",
			cfg.OutputFileName, result.ProcessedFiles, result.TotalFiles)
	}
}

// buildClassifier merges the built-in rule tables with user-supplied keywords
// and patterns from the configuration.
func buildClassifier(cfg *config.Config) (*classify.Classifier, error) {
	keywords := classify.DefaultKeywords()
	for category, terms := range cfg.CustomKeywords {
		cat := classify.Category(strings.ToLower(strings.TrimSpace(category)))
		keywords[cat] = append(keywords[cat], terms...)
	}

	patterns := classify.DefaultPatterns()
	names := make([]string, 0, len(cfg.CustomPatterns))
	for name := range cfg.CustomPatterns {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rule := cfg.CustomPatterns[name]
		p, err := classify.CompilePattern(name, classify.Category(strings.ToLower(rule.Category)), rule.Regex)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}

	return classify.New(keywords, patterns), nil
}

func handleSignals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	handleSignalEvent(cancel, sigChan)
}

func handleSignalEvent(cancel context.CancelFunc, sigChan <-chan os.Signal) {
	<-sigChan
	logger.Info("Interrupt signal received. Shutting down...")
	cancel()
}
