package presentation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"photriage/internal/domain"
)

func TestPrintSummaryCountsAndDestination(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	printer.PrintSummary("/photos/out", domain.TriageSummary{
		Found:   5,
		Moved:   2,
		Copied:  1,
		Skipped: 2,
	})

	out := buf.String()
	assert.Contains(t, out, "Moved 2, copied 1, skipped 2, deleted 0 of 5 files.")
	assert.Contains(t, out, "Destination: /photos/out")
	assert.NotContains(t, out, "Stopped early")
	assert.NotContains(t, out, "recovered")
}

func TestPrintSummaryMentionsTrashAfterDeletes(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	printer.PrintSummary("/photos/out", domain.TriageSummary{
		Found:    1,
		Deleted:  1,
		TrashDir: "/tmp/photriage-trash-123",
	})

	assert.Contains(t, buf.String(), "recovered from /tmp/photriage-trash-123")
}

func TestPrintSummaryEarlyExitAndWarnings(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	printer.PrintSummary("/photos/out", domain.TriageSummary{
		Found:    4,
		Skipped:  1,
		Exited:   true,
		Warnings: []string{"No preview for notes.txt"},
	})

	out := buf.String()
	assert.Contains(t, out, "Stopped early.")
	assert.Contains(t, out, "1 warning(s):")
	assert.Contains(t, out, "- No preview for notes.txt")
}
