package components

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "roadmap/internal/platform/errors"
)

// ResultMsg reports the outcome of a mutation to the root model, which shows
// it in the status bar and reloads every tab when state changed.
type ResultMsg struct {
	Action string
	Err    error
}

// Changed is true when the mutation took effect, persisted or not.
func (r ResultMsg) Changed() bool {
	return r.Err == nil || errors.Is(r.Err, apperrors.ErrNotSaved)
}

func (r ResultMsg) Status() string {
	switch {
	case r.Err == nil:
		return r.Action
	case errors.Is(r.Err, apperrors.ErrNotSaved):
		return fmt.Sprintf("%s (warning: %v)", r.Action, r.Err)
	default:
		return fmt.Sprintf("%s failed: %v", r.Action, r.Err)
	}
}

// Result wraps a blocking mutation into a command yielding ResultMsg.
func Result(fn func() (string, error)) tea.Cmd {
	return func() tea.Msg {
		action, err := fn()
		return ResultMsg{Action: action, Err: err}
	}
}
