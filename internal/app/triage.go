package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"

	"photriage/internal/domain"
	apperrors "photriage/internal/errors"
)

// Triager runs the interactive per-file decision loop: preview the file,
// resolve its date, compute the effective destination, prompt for an action
// and apply it. Strictly sequential, one file at a time.
type Triager struct {
	FS       FileSystem
	Dates    DateReader
	Preview  Previewer // nil disables previews
	Prompt   Prompter
	Reporter Reporter
}

// Run visits every regular file of sourceDir in listing order and applies the
// action the user chooses for it. The destination directory path is returned
// for chaining regardless of whether any file ended up there.
func (t *Triager) Run(ctx context.Context, sourceDir, destDir, subdirPattern string) (string, domain.TriageSummary, error) {
	var summary domain.TriageSummary

	if t.FS == nil || t.Dates == nil || t.Prompt == nil || t.Reporter == nil {
		return "", summary, apperrors.Wrap(apperrors.Internal, "triage", "",
			errors.New("triager requires FS, Dates, Prompt and Reporter"))
	}

	// The source must exist before any side effect, including creating the
	// destination.
	info, err := t.FS.Stat(sourceDir)
	if err != nil {
		return "", summary, apperrors.Wrap(apperrors.InvalidInput, "stat", sourceDir, err)
	}
	if !info.IsDir() {
		return "", summary, apperrors.Wrap(apperrors.InvalidInput, "stat", sourceDir,
			errors.New("not a directory"))
	}

	dirEntries, err := t.FS.ReadDir(sourceDir)
	if err != nil {
		return "", summary, apperrors.Wrap(apperrors.IOFailure, "readdir", sourceDir, err)
	}

	var files []fs.DirEntry
	for _, de := range dirEntries {
		if !de.IsDir() {
			files = append(files, de)
		}
	}
	summary.Found = len(files)
	t.Reporter.Infof("Found %d files in %s", len(files), sourceDir)

	exists, err := t.FS.Exists(destDir)
	if err != nil {
		return "", summary, apperrors.Wrap(apperrors.IOFailure, "stat", destDir, err)
	}
	if !exists {
		if err := t.FS.MkdirAll(destDir, 0o755); err != nil {
			return "", summary, apperrors.Wrap(apperrors.IOFailure, "mkdir", destDir, err)
		}
		t.Reporter.Infof("Created destination directory %s", destDir)
	}

	for i, de := range files {
		if err := ctx.Err(); err != nil {
			return destDir, summary, err
		}

		entry, err := t.prepare(ctx, sourceDir, destDir, subdirPattern, de.Name(), &summary)
		if err != nil {
			return destDir, summary, err
		}

		action, err := t.Prompt.Choose(ctx, entry)
		if err != nil {
			return destDir, summary, apperrors.Wrap(apperrors.Internal, "prompt", entry.SourcePath, err)
		}

		if action == domain.ActionExit {
			summary.Exited = true
			t.Reporter.Infof("Exiting, %d of %d files left untouched", len(files)-i, len(files))
			break
		}
		if err := t.apply(entry, action, &summary); err != nil {
			return destDir, summary, err
		}
	}

	return destDir, summary, nil
}

// prepare builds the entry for one file: preview (or warn), resolve its date
// and create the effective destination directory before the prompt is shown.
func (t *Triager) prepare(ctx context.Context, sourceDir, destDir, subdirPattern, name string, summary *domain.TriageSummary) (domain.PhotoEntry, error) {
	entry := domain.NewPhotoEntry(filepath.Join(sourceDir, name))

	if entry.Format == domain.FormatUnsupported {
		warning := fmt.Sprintf("No preview for %s: unsupported extension %q", entry.Name, entry.Ext)
		t.Reporter.Warnf("%s", warning)
		summary.Warnings = append(summary.Warnings, warning)
	} else if t.Preview != nil {
		if err := t.Preview.Render(ctx, entry.SourcePath, entry.Format); err != nil {
			// A broken image is still offered for triage.
			warning := fmt.Sprintf("Preview failed for %s: %v", entry.Name, err)
			t.Reporter.Warnf("%s", warning)
			summary.Warnings = append(summary.Warnings, warning)
		}
	}

	takenAt, err := t.Dates.TakenAt(ctx, entry.SourcePath)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return entry, err
		}
		info, statErr := t.FS.Stat(entry.SourcePath)
		if statErr != nil {
			return entry, apperrors.Wrap(apperrors.IOFailure, "stat", entry.SourcePath, statErr)
		}
		takenAt = info.ModTime()
		t.Reporter.Verbosef("No EXIF date for %s, using file modification time", entry.Name)
	}
	entry.TakenAt = takenAt

	entry.DestDir = destDir
	if subdirPattern != "" {
		entry.DestDir = filepath.Join(destDir, domain.FormatPattern(takenAt, subdirPattern))
		exists, err := t.FS.Exists(entry.DestDir)
		if err != nil {
			return entry, apperrors.Wrap(apperrors.IOFailure, "stat", entry.DestDir, err)
		}
		if !exists {
			if err := t.FS.MkdirAll(entry.DestDir, 0o755); err != nil {
				return entry, apperrors.Wrap(apperrors.IOFailure, "mkdir", entry.DestDir, err)
			}
			t.Reporter.Verbosef("Created %s", entry.DestDir)
		}
	}

	t.Reporter.Infof("%s  taken %s  destination %s",
		entry.Name, takenAt.Format("2006-01-02 15:04"), entry.DestDir)
	zerolog.Ctx(ctx).Debug().
		Str("file", entry.Name).
		Str("format", entry.Format.String()).
		Time("taken_at", takenAt).
		Str("dest", entry.DestDir).
		Msg("prepared entry")

	return entry, nil
}

func (t *Triager) apply(entry domain.PhotoEntry, action domain.Action, summary *domain.TriageSummary) error {
	switch action {
	case domain.ActionMove:
		if err := t.FS.MoveFile(entry.SourcePath, entry.DestPath()); err != nil {
			return apperrors.Wrap(apperrors.IOFailure, "move", entry.SourcePath, err)
		}
		summary.Moved++
		t.Reporter.Infof("Moved %s to %s", entry.Name, entry.DestDir)
	case domain.ActionCopy:
		if err := t.FS.CopyFile(entry.SourcePath, entry.DestPath()); err != nil {
			return apperrors.Wrap(apperrors.IOFailure, "copy", entry.SourcePath, err)
		}
		summary.Copied++
		t.Reporter.Infof("Copied %s to %s", entry.Name, entry.DestDir)
	case domain.ActionSkip:
		summary.Skipped++
		t.Reporter.Verbosef("Skipped %s", entry.Name)
	case domain.ActionDelete:
		trashPath, err := t.FS.SoftDelete(entry.SourcePath)
		if err != nil {
			return apperrors.Wrap(apperrors.IOFailure, "delete", entry.SourcePath, err)
		}
		summary.Deleted++
		summary.TrashDir = filepath.Dir(trashPath)
		t.Reporter.Infof("Deleted %s (recoverable at %s)", entry.Name, trashPath)
	default:
		return apperrors.Wrap(apperrors.Internal, "apply", entry.SourcePath,
			fmt.Errorf("unknown action %d", action))
	}
	return nil
}
