package domain

// Action is the per-file triage decision. Exit is an explicit variant so the
// prompt never has to signal cancellation with a null value.
type Action int

const (
	ActionMove Action = iota
	ActionCopy
	ActionSkip
	ActionDelete
	ActionExit
)

func (a Action) String() string {
	switch a {
	case ActionMove:
		return "Move"
	case ActionCopy:
		return "Copy"
	case ActionSkip:
		return "Skip"
	case ActionDelete:
		return "Delete"
	case ActionExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// MenuActions is the ordered list presented to the user for every file.
func MenuActions() []Action {
	return []Action{ActionMove, ActionCopy, ActionSkip, ActionDelete, ActionExit}
}
