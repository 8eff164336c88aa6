package source

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"docsentry/logger"
	"docsentry/utils"

	"github.com/djherbis/times"
	"github.com/h2non/filetype"
)

// Local lists and fetches files from directories on the local filesystem.
// Unlike cloud listings, the local source usually can supply creation and
// access times (via birthtime/atime where the platform records them).
type Local struct {
	roots       []string
	matcher     *utils.PatternMatcher
	maxFileSize int64
}

// NewLocal builds a local source rooted at the given directories. Include and
// exclude patterns filter by path; maxFileSize of 0 means no limit.
func NewLocal(roots []string, includePatterns, excludePatterns []string, maxFileSize int64) *Local {
	return &Local{
		roots:       append([]string(nil), roots...),
		matcher:     utils.NewPatternMatcher(includePatterns, excludePatterns),
		maxFileSize: maxFileSize,
	}
}

func (l *Local) List(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	for _, root := range l.roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Warnf("Failed to access %s: %v", path, err)
				return nil
			}
			if d == nil || d.IsDir() {
				return nil
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if !l.matcher.ShouldInclude(path) {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				logger.Warnf("Failed to stat %s: %v", path, err)
				return nil
			}
			if l.maxFileSize > 0 && info.Size() > l.maxFileSize {
				logger.Debugf("Skipping large file %s", path)
				return nil
			}
			entries = append(entries, l.entryFor(path, info))
			return nil
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}
	return entries, nil
}

func (l *Local) entryFor(path string, info fs.FileInfo) Entry {
	entry := Entry{
		ID:       path,
		Name:     info.Name(),
		Format:   formatTag(path),
		Size:     info.Size(),
		Modified: info.ModTime(),
	}
	if ts, err := times.Stat(path); err == nil {
		entry.Accessed = ts.AccessTime()
		if ts.HasBirthTime() {
			entry.Created = ts.BirthTime()
		}
	}
	return entry
}

func (l *Local) Fetch(ctx context.Context, id string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	if !utils.IsPathWithin(id, l.roots) {
		return nil, fmt.Errorf("file outside scan roots: %s", id)
	}
	f, err := os.Open(id)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reader io.Reader = f
	if l.maxFileSize > 0 {
		reader = io.LimitReader(f, l.maxFileSize)
	}
	return io.ReadAll(reader)
}

// formatTag derives the normalized short format tag for a path, preferring
// the extension and falling back to magic-byte sniffing for files without
// one.
func formatTag(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext != "" {
		return ext
	}
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	buf := make([]byte, 261)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return ""
	}
	kind, err := filetype.Match(buf[:n])
	if err != nil || kind == filetype.Unknown {
		return ""
	}
	return kind.Extension
}
