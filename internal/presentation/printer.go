package presentation

import (
	"fmt"
	"io"

	"photriage/internal/domain"
)

type Printer struct {
	Writer io.Writer
}

// PrintSummary renders the closing report of a run.
func (p Printer) PrintSummary(dest string, s domain.TriageSummary) {
	fmt.Fprintln(p.Writer)
	if s.Exited {
		fmt.Fprintln(p.Writer, "Stopped early.")
	}
	fmt.Fprintf(p.Writer, "Moved %d, copied %d, skipped %d, deleted %d of %d files.\n",
		s.Moved, s.Copied, s.Skipped, s.Deleted, s.Found)
	fmt.Fprintf(p.Writer, "Destination: %s\n", dest)
	if s.Deleted > 0 {
		fmt.Fprintf(p.Writer, "Deleted files can be recovered from %s.\n", s.TrashDir)
	}
	if len(s.Warnings) > 0 {
		fmt.Fprintf(p.Writer, "%d warning(s):\n", len(s.Warnings))
		for _, warning := range s.Warnings {
			fmt.Fprintln(p.Writer, "- "+warning)
		}
	}
}
