package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mistakeknot/formshell/internal/formshell/form"
)

// Run starts the interactive form and blocks until the user quits or the
// submission succeeds.
func Run(def *form.Definition, opts Options) error {
	model, err := NewModel(def, opts)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
