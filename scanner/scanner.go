// Package scanner orchestrates batch document scans: it walks a file listing,
// routes text-bearing files through extraction and classification, scores the
// sensitive ones, and folds everything into an aggregate report. One file's
// failure never aborts the batch.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"docsentry/classify"
	"docsentry/extract"
	"docsentry/logger"
	"docsentry/metadata"
	"docsentry/source"
	"docsentry/tracing"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/time/rate"
)

// Options tune one batch scan. Zero values give a sequentialish scan with no
// timeout, no throttling and no optional enrichment.
type Options struct {
	// Concurrency bounds the worker pool issuing content fetches. Fetch
	// latency dominates extraction and classification cost, so this is
	// effectively the fetch parallelism. Defaults to NumCPU.
	Concurrency int
	// Timeout caps the whole batch. On expiry the report is returned partial
	// with scan_complete=false; unscanned files are absent, not failed.
	Timeout time.Duration
	// MaxFetchPerSecond throttles calls to the content fetcher. 0 = unlimited.
	MaxFetchPerSecond int
	// CollectMetadata attaches document properties to each fetched record.
	CollectMetadata bool
	// FuzzyHash attaches a TLSH hash to each fetched record.
	FuzzyHash bool
	// Departments maps lowercase owner identities to department labels.
	Departments map[string]string
	// DefaultDepartment is the bucket for unmapped owners. Defaults to "Others".
	DefaultDepartment string
	// ShowProgress renders a progress bar on stderr.
	ShowProgress bool
}

// Scanner runs batch scans with a fixed classifier and option set. Safe for
// concurrent use: all per-scan state lives in Scan.
type Scanner struct {
	classifier *classify.Classifier
	opts       Options
}

func New(classifier *classify.Classifier, opts Options) *Scanner {
	if opts.Concurrency <= 0 {
		opts.Concurrency = runtime.NumCPU()
	}
	if opts.DefaultDepartment == "" {
		opts.DefaultDepartment = "Others"
	}
	return &Scanner{classifier: classifier, opts: opts}
}

// fileOutcome is what a worker hands the aggregation loop for one entry.
type fileOutcome struct {
	record     *FileRecord
	classified *classifiedFile
	failedID   string
	// skipped marks an entry abandoned because the scan was cancelled; it
	// must appear nowhere in the report.
	skipped bool
}

// Scan processes every file the source lists. It always returns a report,
// possibly partial; the only hard failure is the listing call itself.
func (s *Scanner) Scan(ctx context.Context, src source.Source) (*ScanReport, error) {
	ctx, endTask := tracing.StartTask(ctx, "batch_scan")
	defer endTask()

	entries, err := src.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	// One timestamp for the whole batch keeps age buckets consistent across
	// files no matter how long the scan runs.
	scanStart := time.Now()

	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	report := newReport()
	report.TotalFiles = len(entries)

	var limiter *rate.Limiter
	if s.opts.MaxFetchPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(s.opts.MaxFetchPerSecond), s.opts.MaxFetchPerSecond)
	}

	var bar *progressbar.ProgressBar
	if s.opts.ShowProgress {
		bar = progressbar.NewOptions(len(entries),
			progressbar.OptionSetDescription("Scanning files"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionFullWidth(),
		)
	}

	tasks := make(chan source.Entry)
	outcomes := make(chan fileOutcome, s.opts.Concurrency)

	var wg sync.WaitGroup
	for range s.opts.Concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for entry := range tasks {
				outcomes <- s.processEntry(ctx, src, limiter, entry, scanStart)
			}
		}()
	}

	go func() {
		defer close(tasks)
		for _, entry := range entries {
			select {
			case <-ctx.Done():
				return
			case tasks <- entry:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	// Aggregation is serialized here: workers only fetch, extract and
	// classify; every counter mutation happens on this goroutine.
	var classified []*classifiedFile
	sensitiveIDs := make(map[string]struct{})
	digests := make(map[string]struct{})
	for out := range outcomes {
		if bar != nil {
			_ = bar.Add(1)
		}
		if out.skipped {
			continue
		}
		if out.failedID != "" {
			report.FailedFiles = append(report.FailedFiles, out.failedID)
			continue
		}

		rec := out.record
		report.Files = append(report.Files, rec)
		report.ProcessedFiles++
		report.Stats.ByFileType[rec.FileType]++
		report.Stats.ByAgeGroup[rec.AgeGroup]++
		report.Stats.ByDepartment[rec.Department]++

		if out.classified != nil {
			classified = append(classified, out.classified)
			for _, cat := range rec.SensitiveCategories {
				report.Stats.BySensitivity[cat]++
			}
			// total_sensitive counts distinct file ids, so retried or
			// re-listed entries cannot double-count.
			sensitiveIDs[rec.ID] = struct{}{}
		}
		if rec.ContentDigest != "" {
			if _, dup := digests[rec.ContentDigest]; dup {
				report.Stats.TotalDuplicates++
			} else {
				digests[rec.ContentDigest] = struct{}{}
			}
		}
	}

	// Second pass: score only after every file's findings are final, then
	// count risk levels. The typed classifiedFile intermediate guarantees
	// scoring cannot run against partial findings.
	for _, cf := range classified {
		level := cf.score(scanStart)
		report.Stats.ByRiskLevel[level]++
	}

	report.Stats.TotalDocuments = len(report.Files)
	report.Stats.TotalSensitive = len(sensitiveIDs)
	report.ScanComplete = len(report.Files)+len(report.FailedFiles) == len(entries)
	if !report.ScanComplete {
		logger.Warnf("Scan incomplete: %d of %d files processed", report.ProcessedFiles, len(entries))
	}
	return report, nil
}

func (s *Scanner) processEntry(ctx context.Context, src source.Source, limiter *rate.Limiter, entry source.Entry, scanStart time.Time) fileOutcome {
	ctx, endTask := tracing.StartTask(ctx, "scan_file")
	tracing.Log(ctx, "file", entry.Name)
	defer endTask()

	select {
	case <-ctx.Done():
		return fileOutcome{skipped: true}
	default:
	}

	record := &FileRecord{
		ID:                  entry.ID,
		Name:                entry.Name,
		Format:              entry.Format,
		Size:                entry.Size,
		FileType:            resolveFileType(entry.Format),
		AgeGroup:            resolveAgeGroup(entry.Modified, scanStart),
		Department:          resolveDepartment(entry.Owners, s.opts.Departments, s.opts.DefaultDepartment),
		SensitiveCategories: []string{},
	}
	if !entry.Created.IsZero() {
		record.CreatedTime = entry.Created.Format(time.RFC3339)
	}
	if !entry.Modified.IsZero() {
		record.ModifiedTime = entry.Modified.Format(time.RFC3339)
	}

	// Non-text-bearing categories are counted in the stats but never fetched.
	if !textBearingTypes[record.FileType] {
		return fileOutcome{record: record}
	}

	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return fileOutcome{skipped: true}
		}
	}

	endRegion := tracing.StartRegion(ctx, "fetch_content")
	data, err := src.Fetch(ctx, entry.ID)
	endRegion()
	if err != nil {
		if ctx.Err() != nil {
			return fileOutcome{skipped: true}
		}
		logger.Warnf("Failed to fetch %s: %v", entry.Name, err)
		return fileOutcome{failedID: entry.ID}
	}

	record.ContentDigest = contentDigest(data)
	if s.opts.FuzzyHash {
		record.FuzzyHash = fuzzyHash(data)
	}

	format := extract.ParseFormat(entry.Format)
	if s.opts.CollectMetadata {
		record.Metadata = metadata.Extract(data, format)
	}

	text, err := extractGuarded(data, format)
	if err != nil {
		// A format without a handler is a scope decision, not a failure: the
		// file stays in the report with no findings. Corrupt content fails
		// the file.
		if errors.Is(err, extract.ErrUnsupported) {
			return fileOutcome{record: record}
		}
		logger.Warnf("Failed to extract text from %s: %v", entry.Name, err)
		return fileOutcome{failedID: entry.ID}
	}

	findings, err := classifyGuarded(s.classifier, text)
	if err != nil {
		logger.Warnf("Failed to classify %s: %v", entry.Name, err)
		return fileOutcome{failedID: entry.ID}
	}
	if len(findings) == 0 {
		return fileOutcome{record: record}
	}

	cf := newClassifiedFile(record, findings, entry.Created, entry.Accessed)
	return fileOutcome{record: record, classified: cf}
}

func extractGuarded(data []byte, format extract.Format) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extraction panic: %v", r)
		}
	}()
	return extract.Text(data, format)
}

// classifyGuarded converts a classifier panic on pathological input into an
// ordinary per-file failure.
func classifyGuarded(c *classify.Classifier, text string) (findings classify.Findings, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("classification panic: %v", r)
		}
	}()
	return c.Classify(text), nil
}
