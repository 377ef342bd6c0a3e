package presentation

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"photriage/internal/domain"
)

// StdinPrompter is the line-mode alternative to the interactive menu. It
// prints a numbered list and reads a 1-based index; EOF and "q" resolve to
// ActionExit.
type StdinPrompter struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

func (p *StdinPrompter) Choose(ctx context.Context, entry domain.PhotoEntry) (domain.Action, error) {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}
	actions := domain.MenuActions()

	for {
		select {
		case <-ctx.Done():
			return domain.ActionExit, ctx.Err()
		default:
		}

		fmt.Fprintf(p.Out, "%s:\n", entry.Name)
		for i, action := range actions {
			fmt.Fprintf(p.Out, "  %d) %s\n", i+1, action)
		}
		fmt.Fprintf(p.Out, "Choose an action [1-%d]: ", len(actions))

		line, err := p.reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(p.Out)
			return domain.ActionExit, nil
		}
		line = strings.TrimSpace(strings.ToLower(line))
		if line == "q" || line == "exit" {
			return domain.ActionExit, nil
		}
		index, convErr := strconv.Atoi(line)
		if convErr != nil || index < 1 || index > len(actions) {
			fmt.Fprintf(p.Out, "Enter a number between 1 and %d.\n", len(actions))
			continue
		}
		return actions[index-1], nil
	}
}
