package report

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	otelLog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"

	"docsentry/logger"
	"docsentry/scanner"
)

// OtelOptions configure the optional OTLP export of scan summaries.
type OtelOptions struct {
	// Endpoint is the OTLP/HTTP logs endpoint, scheme included. Empty
	// disables export unless FromEnv is set.
	Endpoint string
	// FromEnv falls back to the standard OTEL_EXPORTER_OTLP_* variables when
	// Endpoint is empty.
	FromEnv     bool
	Headers     map[string]string
	Timeout     time.Duration
	ServiceName string
	// ExportFindings includes per-file sensitive detail in the export.
	// Off by default: category names and file names leave the host otherwise.
	ExportFindings bool
}

// Exporter ships scan summaries to an OTLP logs endpoint.
type Exporter struct {
	provider *sdklog.LoggerProvider
	logger   otelLog.Logger
	timeout  time.Duration
	endpoint string
	findings bool
}

// NewExporter builds an Exporter, or returns (nil, nil) when no endpoint is
// configured. A nil *Exporter is safe to use; every method is a no-op.
func NewExporter(opts OtelOptions) (*Exporter, error) {
	endpoint := resolveEndpoint(opts)
	if endpoint == "" {
		return nil, nil
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		return nil, fmt.Errorf("otel endpoint must include scheme (http or https)")
	}

	expOpts := []otlploghttp.Option{otlploghttp.WithEndpointURL(endpoint)}
	if len(opts.Headers) > 0 {
		expOpts = append(expOpts, otlploghttp.WithHeaders(opts.Headers))
	}
	if opts.Timeout > 0 {
		expOpts = append(expOpts, otlploghttp.WithTimeout(opts.Timeout))
	}

	exp, err := otlploghttp.New(context.Background(), expOpts...)
	if err != nil {
		return nil, err
	}

	serviceName := opts.ServiceName
	if serviceName == "" {
		serviceName = "docsentry"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	provider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exp)),
		sdklog.WithResource(res),
	)

	return &Exporter{
		provider: provider,
		logger:   provider.Logger("docsentry"),
		timeout:  opts.Timeout,
		endpoint: endpoint,
		findings: opts.ExportFindings,
	}, nil
}

func resolveEndpoint(opts OtelOptions) string {
	if endpoint := strings.TrimSpace(opts.Endpoint); endpoint != "" {
		return endpoint
	}
	if !opts.FromEnv {
		return ""
	}
	if endpoint := strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_LOGS_ENDPOINT")); endpoint != "" {
		return endpoint
	}
	return strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
}

func (e *Exporter) Endpoint() string {
	if e == nil {
		return ""
	}
	return e.endpoint
}

// EmitSummary exports one log record describing the finished scan. Per-file
// detail rides along only when findings export is enabled.
func (e *Exporter) EmitSummary(env *Envelope) {
	if e == nil || e.logger == nil || env == nil || env.Report == nil {
		return
	}

	var record otelLog.Record
	now := time.Now()
	record.SetTimestamp(now)
	record.SetObservedTimestamp(now)
	record.SetEventName("docsentry.scan")
	record.AddAttributes(
		otelLog.String("schema_version", env.SchemaVersion),
		otelLog.Bool("scan_complete", env.Report.ScanComplete),
		otelLog.Int("total_files", env.Report.TotalFiles),
		otelLog.Int("files_processed", env.Report.ProcessedFiles),
		otelLog.Int("files_failed", len(env.Report.FailedFiles)),
		otelLog.Int("total_documents", env.Report.Stats.TotalDocuments),
		otelLog.Int("total_sensitive", env.Report.Stats.TotalSensitive),
		otelLog.Int("total_duplicates", env.Report.Stats.TotalDuplicates),
	)
	for level, count := range env.Report.Stats.ByRiskLevel {
		record.AddAttributes(otelLog.Int("risk_level."+level, count))
	}
	record.SetBody(otelLog.MapValue(
		otelLog.KeyValue{Key: "start_time", Value: otelLog.StringValue(env.Metrics.StartTime)},
		otelLog.KeyValue{Key: "end_time", Value: otelLog.StringValue(env.Metrics.EndTime)},
		otelLog.KeyValue{Key: "duration_seconds", Value: otelLog.Float64Value(env.Metrics.DurationSeconds)},
	))
	e.logger.Emit(context.Background(), record)

	if e.findings {
		for _, rec := range env.Report.Files {
			if rec.Sensitive() {
				e.emitFinding(rec)
			}
		}
	}
}

func (e *Exporter) emitFinding(rec *scanner.FileRecord) {
	var record otelLog.Record
	now := time.Now()
	record.SetTimestamp(now)
	record.SetObservedTimestamp(now)
	record.SetEventName("docsentry.finding")
	record.AddAttributes(
		otelLog.String("file_id", rec.ID),
		otelLog.String(string(semconv.FileNameKey), rec.Name),
		otelLog.String("file_type", rec.FileType),
		otelLog.String("risk_level", rec.RiskLevel),
	)
	if rec.RiskScore != nil {
		record.AddAttributes(otelLog.Float64("risk_score", *rec.RiskScore))
	}
	values := make([]otelLog.Value, 0, len(rec.SensitiveCategories))
	for _, cat := range rec.SensitiveCategories {
		values = append(values, otelLog.StringValue(cat))
	}
	record.AddAttributes(otelLog.KeyValue{Key: "categories", Value: otelLog.SliceValue(values...)})
	e.logger.Emit(context.Background(), record)
}

// Shutdown flushes buffered records and stops the exporter.
func (e *Exporter) Shutdown() {
	if e == nil || e.provider == nil {
		return
	}
	timeout := e.timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := e.provider.Shutdown(ctx); err != nil {
		logger.Debugf("OTEL shutdown failed: %v", err)
	}
}
