package config

import (
	"flag"
	"os"
	"testing"
	"time"
)

func TestParseCommaSeparated(t *testing.T) {
	res := parseCommaSeparated("a,b , c")
	if len(res) != 3 || res[1] != "b" {
		t.Fatalf("unexpected result: %v", res)
	}
	if res := parseCommaSeparated(""); len(res) != 0 {
		t.Fatalf("expected empty slice")
	}
}

func TestParseCustomKeywords(t *testing.T) {
	res := parseCustomKeywords(`{"pii":["badge number","staff id"]}`)
	if len(res["pii"]) != 2 || res["pii"][0] != "badge number" {
		t.Fatalf("unexpected result: %v", res)
	}
	if res := parseCustomKeywords(""); len(res) != 0 {
		t.Fatalf("expected empty map")
	}
	if res := parseCustomKeywords("{broken"); len(res) != 0 {
		t.Fatalf("expected empty map on invalid JSON, got %v", res)
	}
}

func TestParseCustomPatterns(t *testing.T) {
	res := parseCustomPatterns(`{"badge":{"category":"pii","regex":"EMP-\\d{6}"}}`)
	rule, ok := res["badge"]
	if !ok || rule.Category != "pii" || rule.Regex != `EMP-\d{6}` {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res := parseCustomPatterns(""); len(res) != 0 {
		t.Fatalf("expected empty map")
	}
}

func TestParseHeaders(t *testing.T) {
	res := parseHeaders("Authorization=Bearer test, Env=prod, malformed")
	if res["Authorization"] != "Bearer test" || res["Env"] != "prod" {
		t.Fatalf("unexpected headers: %v", res)
	}
	if len(res) != 2 {
		t.Fatalf("malformed item should be skipped: %v", res)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmp, err := os.CreateTemp("", "cfg*.json")
	if err != nil {
		t.Fatalf("temp: %v", err)
	}
	tmp.WriteString(`{"start_paths":["/tmp"],"fuzzy_hash":true,"departments":{"alex@example.com":"Finance"}}`)
	tmp.Close()
	defer os.Remove(tmp.Name())

	cfg := &Config{}
	if err := cfg.loadFromFile(tmp.Name()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StartPaths[0] != "/tmp" || !cfg.FuzzyHash {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if cfg.Departments["alex@example.com"] != "Finance" {
		t.Fatalf("departments not loaded: %v", cfg.Departments)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			OutputFileName:   "out.json",
			LogLevel:         "info",
			ConcurrencyLevel: 1,
		}
	}

	if err := base().validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := base()
	cfg.ConcurrencyLevel = 0
	if err := cfg.validate(); err == nil {
		t.Fatal("expected invalid concurrency")
	}

	cfg = base()
	cfg.LogLevel = "bad"
	if err := cfg.validate(); err == nil {
		t.Fatal("expected invalid log level")
	}

	cfg = base()
	cfg.OtelEndpoint = "collector:4318"
	if err := cfg.validate(); err == nil {
		t.Fatal("expected invalid otel endpoint")
	}

	cfg = base()
	cfg.CustomPatterns = map[string]PatternRule{"bad": {Category: "pii", Regex: "("}}
	if err := cfg.validate(); err == nil {
		t.Fatal("expected invalid custom pattern regex")
	}

	cfg = base()
	cfg.CustomPatterns = map[string]PatternRule{"badge": {Regex: "EMP-\\d+"}}
	if err := cfg.validate(); err == nil {
		t.Fatal("expected missing category error")
	}

	cfg = base()
	cfg.CacheTTL = -time.Minute
	if err := cfg.validate(); err == nil {
		t.Fatal("expected invalid cache ttl")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	oldFlag := flag.CommandLine
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	defer func() { flag.CommandLine = oldFlag }()

	os.Args = []string{"cmd"}
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.StartPaths) != 1 || cfg.StartPaths[0] != "." {
		t.Fatalf("unexpected start paths: %v", cfg.StartPaths)
	}
	if cfg.CacheTTL != 60*time.Minute {
		t.Fatalf("unexpected cache ttl: %v", cfg.CacheTTL)
	}
	if !cfg.CollectMetadata || !cfg.CollectSystemInfo {
		t.Fatalf("expected metadata and system info collection by default: %+v", cfg)
	}
	if cfg.DefaultDepartment != "Others" {
		t.Fatalf("unexpected default department: %q", cfg.DefaultDepartment)
	}
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	tmp, err := os.CreateTemp("", "cfg*.json")
	if err != nil {
		t.Fatalf("temp: %v", err)
	}
	tmp.WriteString(`{"log_level":"debug","concurrency_level":2}`)
	tmp.Close()
	defer os.Remove(tmp.Name())

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	oldFlag := flag.CommandLine
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	defer func() { flag.CommandLine = oldFlag }()

	os.Args = []string{"cmd", "--config", tmp.Name(), "--log-level", "warn"}
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("flag should override file, got %q", cfg.LogLevel)
	}
	if cfg.ConcurrencyLevel != 2 {
		t.Fatalf("file value should survive, got %d", cfg.ConcurrencyLevel)
	}
}

func TestScanTimeoutFlag(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	oldFlag := flag.CommandLine
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	defer func() { flag.CommandLine = oldFlag }()

	os.Args = []string{"cmd", "--scan-timeout", "90s", "--max-fetch-per-second", "25"}
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ScanTimeout != 90*time.Second {
		t.Fatalf("unexpected scan timeout: %v", cfg.ScanTimeout)
	}
	if cfg.MaxFetchPerSecond != 25 {
		t.Fatalf("unexpected fetch rate: %d", cfg.MaxFetchPerSecond)
	}
}

func TestOtelFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	oldFlag := flag.CommandLine
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	defer func() { flag.CommandLine = oldFlag }()

	os.Args = []string{
		"cmd",
		"--otel-endpoint", "https://otel.example.com/v1/logs",
		"--otel-headers", "Authorization=Bearer test,Env=prod",
		"--otel-service-name", "docsentry-agent",
		"--otel-timeout", "10s",
		"--otel-export-findings",
	}
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OtelEndpoint != "https://otel.example.com/v1/logs" {
		t.Fatalf("unexpected otel endpoint: %s", cfg.OtelEndpoint)
	}
	if cfg.OtelServiceName != "docsentry-agent" {
		t.Fatalf("unexpected otel service name: %s", cfg.OtelServiceName)
	}
	if cfg.OtelTimeout != 10*time.Second {
		t.Fatalf("unexpected otel timeout: %v", cfg.OtelTimeout)
	}
	if !cfg.OtelExportFindings {
		t.Fatal("expected otel findings export enabled")
	}
	if cfg.OtelHeaders["Authorization"] != "Bearer test" || cfg.OtelHeaders["Env"] != "prod" {
		t.Fatalf("unexpected otel headers: %v", cfg.OtelHeaders)
	}
}
