// Package source defines the collaborators a scan pulls files from: a Lister
// that enumerates file entries and a Fetcher that supplies their content.
// Implementations wrap cloud storage APIs or, for on-host scans, the local
// filesystem.
package source

import (
	"context"
	"time"
)

// Entry is one file as reported by a listing collaborator. Created and
// Accessed are frequently unavailable; a zero time means unknown, never
// "the epoch".
type Entry struct {
	ID       string
	Name     string
	Format   string // normalized short format tag, e.g. "docx"
	Size     int64
	Created  time.Time
	Modified time.Time
	Accessed time.Time
	Owners   []string
}

// Lister enumerates the files in scope for a scan. A Lister failure is the
// only error that aborts a whole scan.
type Lister interface {
	List(ctx context.Context) ([]Entry, error)
}

// Fetcher returns the raw content of a listed file. Errors (not found,
// permission, network) fail only the file in question.
type Fetcher interface {
	Fetch(ctx context.Context, id string) ([]byte, error)
}

// Source is a complete file storage collaborator.
type Source interface {
	Lister
	Fetcher
}
