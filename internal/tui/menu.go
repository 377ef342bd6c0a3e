package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"photriage/internal/domain"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "exit")),
}

// Model prompts for the action to take on a single photo. Cancelling the
// prompt resolves to ActionExit, never to a null choice.
type Model struct {
	Entry  domain.PhotoEntry
	Choice domain.Action

	actions []domain.Action
	cursor  int
	help    help.Model
	done    bool
}

func NewModel(entry domain.PhotoEntry) Model {
	return Model{
		Entry:   entry,
		Choice:  domain.ActionExit,
		actions: domain.MenuActions(),
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(m.actions)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.Select):
		m.Choice = m.actions[m.cursor]
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Quit):
		m.Choice = domain.ActionExit
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.Entry.Name))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(fmt.Sprintf("taken %s  %s %s",
		m.Entry.TakenAt.Format("2006-01-02 15:04"), iconArrow, m.Entry.DestDir)))
	b.WriteString("\n\n")

	for i, action := range m.actions {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + action.String()))
		} else {
			b.WriteString(itemStyle.Render("  " + action.String()))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(keys)))
	return b.String()
}
