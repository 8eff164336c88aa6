// Package config resolves scan settings from defaults, an optional JSON
// config file, and command-line flags, in that order of precedence.
package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"regexp"
	"runtime"
	"strings"
	"time"

	"docsentry/version"
)

// PatternRule is a user-supplied detection pattern: the regex and the
// sensitivity category its matches count toward.
type PatternRule struct {
	Category string `json:"category"`
	Regex    string `json:"regex"`
}

type Config struct {
	StartPaths         []string               `json:"start_paths"`
	OutputFileName     string                 `json:"output_file_name"`
	LogLevel           string                 `json:"log_level"`
	ConcurrencyLevel   int                    `json:"concurrency_level"`
	ScanTimeout        time.Duration          `json:"scan_timeout"`
	MaxFileSize        int64                  `json:"max_file_size"`
	MaxFetchPerSecond  int                    `json:"max_fetch_per_second"`
	IncludePatterns    []string               `json:"include_patterns"`
	ExcludePatterns    []string               `json:"exclude_patterns"`
	CustomKeywords     map[string][]string    `json:"custom_keywords"`
	CustomPatterns     map[string]PatternRule `json:"custom_patterns"`
	Departments        map[string]string      `json:"departments"`
	DefaultDepartment  string                 `json:"default_department"`
	CollectMetadata    bool                   `json:"collect_metadata"`
	FuzzyHash          bool                   `json:"fuzzy_hash"`
	CollectSystemInfo  bool                   `json:"collect_system_info"`
	ShowProgress       bool                   `json:"show_progress"`
	CacheTTL           time.Duration          `json:"cache_ttl"`
	CacheScope         string                 `json:"cache_scope"`
	OtelEndpoint       string                 `json:"otel_endpoint"`
	OtelFromEnv        bool                   `json:"otel_from_env"`
	OtelHeaders        map[string]string      `json:"otel_headers"`
	OtelServiceName    string                 `json:"otel_service_name"`
	OtelTimeout        time.Duration          `json:"otel_timeout"`
	OtelExportFindings bool                   `json:"otel_export_findings"`
	ConfigFile         string                 `json:"config_file"`
}

func LoadConfig() (*Config, error) {
	now := time.Now().UTC()
	timestamp := now.Format("20060102-150405")
	cfg := &Config{
		StartPaths:        []string{"."},
		OutputFileName:    fmt.Sprintf("docsentry-%s-%d.json", timestamp, now.Unix()),
		LogLevel:          "info",
		ConcurrencyLevel:  runtime.NumCPU(),
		MaxFileSize:       10485760,
		CustomKeywords:    map[string][]string{},
		CustomPatterns:    map[string]PatternRule{},
		Departments:       map[string]string{},
		DefaultDepartment: "Others",
		CollectMetadata:   true,
		CollectSystemInfo: true,
		CacheTTL:          60 * time.Minute,
		CacheScope:        "default",
		OtelHeaders:       map[string]string{},
		OtelServiceName:   "docsentry",
		OtelTimeout:       5 * time.Second,
	}

	startPath := flag.String("path", strings.Join(cfg.StartPaths, ","), fmt.Sprintf("Comma-separated list of start paths to scan (default: %s).", strings.Join(cfg.StartPaths, ",")))
	output := flag.String("output", cfg.OutputFileName, "Output file name (default: docsentry-<timestamp>-<unix>.json).")
	logLevel := flag.String("log-level", cfg.LogLevel, fmt.Sprintf("Log level: debug, info, warn, error, fatal, or panic (default: %s).", cfg.LogLevel))
	concurrency := flag.Int("concurrency", cfg.ConcurrencyLevel, fmt.Sprintf("Concurrency level (default: %d).", cfg.ConcurrencyLevel))
	scanTimeout := flag.Duration("scan-timeout", cfg.ScanTimeout, "Time limit for the whole scan; a partial report is written on expiry (default: 0/off).")
	maxFileSize := flag.Int64("max-file-size", cfg.MaxFileSize, fmt.Sprintf("Maximum file size to process in bytes (default: %d).", cfg.MaxFileSize))
	maxFetch := flag.Int("max-fetch-per-second", cfg.MaxFetchPerSecond, "Maximum content fetches per second (default: 0/unlimited).")
	includes := flag.String("include", "", "Comma-separated list of include patterns (default: none).")
	excludes := flag.String("exclude", "", "Comma-separated list of exclude patterns (default: none).")
	customKeywords := flag.String("custom-keywords", "", "Custom keywords as a JSON object mapping categories to term lists (default: none).")
	customPatterns := flag.String("custom-patterns", "", `Custom patterns as a JSON object mapping names to {"category","regex"} (default: none).`)
	departments := flag.String("departments", "", "Owner-to-department assignments as a JSON object (default: none).")
	defaultDepartment := flag.String("default-department", cfg.DefaultDepartment, fmt.Sprintf("Department for files with no mapped owner (default: %s).", cfg.DefaultDepartment))
	collectMetadata := flag.Bool("collect-metadata", cfg.CollectMetadata, fmt.Sprintf("Extract document properties into each record (default: %t).", cfg.CollectMetadata))
	fuzzyHash := flag.Bool("fuzzy-hash", cfg.FuzzyHash, fmt.Sprintf("Compute TLSH fuzzy hashes for fetched content (default: %t).", cfg.FuzzyHash))
	collectSystemInfo := flag.Bool("collect-system-info", cfg.CollectSystemInfo, fmt.Sprintf("Include a host snapshot in the report (default: %t).", cfg.CollectSystemInfo))
	showProgress := flag.Bool("progress", cfg.ShowProgress, fmt.Sprintf("Show a progress bar during the scan (default: %t).", cfg.ShowProgress))
	cacheTTL := flag.Duration("cache-ttl", cfg.CacheTTL, "How long a scan report stays servable from cache (default: 1h).")
	cacheScope := flag.String("cache-scope", cfg.CacheScope, fmt.Sprintf("Cache partition for this invocation (default: %s).", cfg.CacheScope))
	otelEndpoint := flag.String("otel-endpoint", cfg.OtelEndpoint, "OTLP/HTTP logs endpoint (default: none).")
	otelFromEnv := flag.Bool("otel-from-env", cfg.OtelFromEnv, "Allow OTEL endpoint fallback from OTEL environment variables (default: false).")
	otelHeaders := flag.String("otel-headers", "", "Comma-separated OTEL headers (key=value) for export (default: none).")
	otelServiceName := flag.String("otel-service-name", cfg.OtelServiceName, fmt.Sprintf("OTEL service name for export (default: %s).", cfg.OtelServiceName))
	otelTimeout := flag.Duration("otel-timeout", cfg.OtelTimeout, "OTEL export timeout (default: 5s).")
	otelExportFindings := flag.Bool("otel-export-findings", cfg.OtelExportFindings, "Include per-file sensitive detail in OTEL payloads (default: false).")
	configFile := flag.String("config", "", "Path to JSON configuration file (default: none).")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = displayHelp
	flag.Parse()

	if *showVersion {
		fmt.Printf("Docsentry version %s\n", version.Version)
		os.Exit(0)
	}

	if *configFile != "" {
		cfg.ConfigFile = *configFile
		if err := cfg.loadFromFile(cfg.ConfigFile); err != nil {
			return nil, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "path":
			cfg.StartPaths = parseCommaSeparated(*startPath)
		case "output":
			cfg.OutputFileName = *output
		case "log-level":
			cfg.LogLevel = *logLevel
		case "concurrency":
			cfg.ConcurrencyLevel = *concurrency
		case "scan-timeout":
			cfg.ScanTimeout = *scanTimeout
		case "max-file-size":
			cfg.MaxFileSize = *maxFileSize
		case "max-fetch-per-second":
			cfg.MaxFetchPerSecond = *maxFetch
		case "include":
			cfg.IncludePatterns = parseCommaSeparated(*includes)
		case "exclude":
			cfg.ExcludePatterns = parseCommaSeparated(*excludes)
		case "custom-keywords":
			cfg.CustomKeywords = parseCustomKeywords(*customKeywords)
		case "custom-patterns":
			cfg.CustomPatterns = parseCustomPatterns(*customPatterns)
		case "departments":
			cfg.Departments = parseStringMap(*departments)
		case "default-department":
			cfg.DefaultDepartment = strings.TrimSpace(*defaultDepartment)
		case "collect-metadata":
			cfg.CollectMetadata = *collectMetadata
		case "fuzzy-hash":
			cfg.FuzzyHash = *fuzzyHash
		case "collect-system-info":
			cfg.CollectSystemInfo = *collectSystemInfo
		case "progress":
			cfg.ShowProgress = *showProgress
		case "cache-ttl":
			cfg.CacheTTL = *cacheTTL
		case "cache-scope":
			cfg.CacheScope = strings.TrimSpace(*cacheScope)
		case "otel-endpoint":
			cfg.OtelEndpoint = strings.TrimSpace(*otelEndpoint)
		case "otel-from-env":
			cfg.OtelFromEnv = *otelFromEnv
		case "otel-headers":
			cfg.OtelHeaders = parseHeaders(*otelHeaders)
		case "otel-service-name":
			cfg.OtelServiceName = strings.TrimSpace(*otelServiceName)
		case "otel-timeout":
			cfg.OtelTimeout = *otelTimeout
		case "otel-export-findings":
			cfg.OtelExportFindings = *otelExportFindings
		}
	})

	if len(cfg.StartPaths) == 0 {
		cfg.StartPaths = []string{"."}
	}
	if cfg.DefaultDepartment == "" {
		cfg.DefaultDepartment = "Others"
	}
	if cfg.CacheScope == "" {
		cfg.CacheScope = "default"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func displayHelp() {
	fmt.Println("Docsentry - Document Sensitivity Scanner")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  docsentry [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  docsentry --path \"/srv/shared\"")
	fmt.Println("  docsentry --path \"/home,/var\" --exclude \"**/.git/**\"")
	fmt.Println("  docsentry --path \"/srv/shared\" --fuzzy-hash --otel-endpoint https://collector:4318")
}

func (cfg *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read config file: %v", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("invalid config file format: %v", err)
	}
	return nil
}

func (cfg *Config) validate() error {
	if cfg.ConcurrencyLevel <= 0 {
		return fmt.Errorf("concurrency level must be positive")
	}
	if cfg.LogLevel != "debug" && cfg.LogLevel != "info" && cfg.LogLevel != "warn" &&
		cfg.LogLevel != "error" && cfg.LogLevel != "fatal" && cfg.LogLevel != "panic" {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}
	if cfg.OutputFileName == "" {
		return fmt.Errorf("output file name must not be empty")
	}
	if cfg.ScanTimeout < 0 {
		return fmt.Errorf("scan-timeout must be zero or positive")
	}
	if cfg.MaxFileSize < 0 {
		return fmt.Errorf("max-file-size must be zero or positive")
	}
	if cfg.MaxFetchPerSecond < 0 {
		return fmt.Errorf("max-fetch-per-second must be zero or positive")
	}
	if cfg.CacheTTL < 0 {
		return fmt.Errorf("cache-ttl must be zero or positive")
	}
	if cfg.OtelTimeout < 0 {
		return fmt.Errorf("otel-timeout must be zero or positive")
	}
	if cfg.OtelEndpoint != "" {
		if !strings.HasPrefix(cfg.OtelEndpoint, "http://") && !strings.HasPrefix(cfg.OtelEndpoint, "https://") {
			return fmt.Errorf("otel-endpoint must include scheme (http or https)")
		}
	}
	for name, rule := range cfg.CustomPatterns {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("custom pattern name must not be empty")
		}
		if rule.Category == "" {
			return fmt.Errorf("custom pattern %q needs a category", name)
		}
		if _, err := regexp.Compile(rule.Regex); err != nil {
			return fmt.Errorf("custom pattern %q: %v", name, err)
		}
	}
	for category, terms := range cfg.CustomKeywords {
		if strings.TrimSpace(category) == "" {
			return fmt.Errorf("custom keyword category must not be empty")
		}
		for _, term := range terms {
			if strings.TrimSpace(term) == "" {
				return fmt.Errorf("custom keyword category %q contains an empty term", category)
			}
		}
	}
	return nil
}

func parseCommaSeparated(input string) []string {
	if input == "" {
		return []string{}
	}
	items := strings.Split(input, ",")
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
	}
	return items
}

func parseCustomKeywords(input string) map[string][]string {
	keywords := make(map[string][]string)
	if input == "" {
		return keywords
	}
	if err := json.Unmarshal([]byte(input), &keywords); err != nil {
		fmt.Fprintf(os.Stderr, "invalid custom keywords: %v\n", err)
		return map[string][]string{}
	}
	return keywords
}

func parseCustomPatterns(input string) map[string]PatternRule {
	patterns := make(map[string]PatternRule)
	if input == "" {
		return patterns
	}
	if err := json.Unmarshal([]byte(input), &patterns); err != nil {
		fmt.Fprintf(os.Stderr, "invalid custom patterns: %v\n", err)
		return map[string]PatternRule{}
	}
	return patterns
}

func parseStringMap(input string) map[string]string {
	out := make(map[string]string)
	if input == "" {
		return out
	}
	if err := json.Unmarshal([]byte(input), &out); err != nil {
		fmt.Fprintf(os.Stderr, "invalid JSON map: %v\n", err)
		return map[string]string{}
	}
	return out
}

func parseHeaders(input string) map[string]string {
	headers := make(map[string]string)
	if input == "" {
		return headers
	}
	items := strings.Split(input, ",")
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		parts := strings.SplitN(item, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key == "" {
			continue
		}
		headers[key] = value
	}
	return headers
}
