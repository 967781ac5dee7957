package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// View is the interface both tabs implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// StatusMsg updates the status line at the bottom of the screen.
type StatusMsg string

// ErrMsg surfaces an operation failure in the status line.
type ErrMsg struct {
	Err error
}
