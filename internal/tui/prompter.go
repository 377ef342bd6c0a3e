package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"photriage/internal/domain"
)

// Prompter runs one menu program per photo, blocking until the user picks an
// action. This keeps the triage loop strictly sequential: the loop owns the
// control flow, the TUI only answers one question at a time.
type Prompter struct{}

func (Prompter) Choose(ctx context.Context, entry domain.PhotoEntry) (domain.Action, error) {
	prog := tea.NewProgram(NewModel(entry), tea.WithContext(ctx))
	final, err := prog.Run()
	if err != nil {
		return domain.ActionExit, err
	}
	m, ok := final.(Model)
	if !ok {
		return domain.ActionExit, fmt.Errorf("unexpected model type %T", final)
	}
	return m.Choice, nil
}
