package app

import (
	"context"
	"io/fs"
	"time"

	"photriage/internal/domain"
)

type FileSystem interface {
	ReadDir(path string) ([]fs.DirEntry, error)
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) (bool, error)
	MkdirAll(path string, perm fs.FileMode) error
	CopyFile(src, dst string) error
	MoveFile(src, dst string) error
	// SoftDelete relocates src to a temporary holding directory and returns
	// the new location. Nothing is ever erased.
	SoftDelete(src string) (string, error)
}

type DateReader interface {
	TakenAt(ctx context.Context, path string) (time.Time, error)
}

type Previewer interface {
	Render(ctx context.Context, path string, format domain.PreviewFormat) error
}

type Prompter interface {
	Choose(ctx context.Context, entry domain.PhotoEntry) (domain.Action, error)
}

// Reporter receives human-readable progress notices. The triage loop never
// writes to the console directly so tests can capture what it says.
type Reporter interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Verbosef(format string, args ...any)
}
