// Package term implements the native backend contract on top of a
// Bubble Tea program, rendering the dialog page in the terminal. It
// exists so the session engine behaves identically during development
// and in the demo driver, where the comctl control is out of reach.
// Notifications are delivered synchronously from the program's update
// loop, preserving the single-thread cooperative model of the native
// subsystem.
package term

import (
	"fmt"

	"github.com/atomicstack/taskdialog-control/internal/native"
	tea "github.com/charmbracelet/bubbletea"
)

// Backend renders dialogs in the terminal. The zero value is not usable;
// call New.
type Backend struct {
	m *model
}

// New returns a terminal backend.
func New() *Backend {
	return &Backend{}
}

// Available always succeeds: the renderer has no native dependency.
func (b *Backend) Available() error {
	return nil
}

// Open runs the dialog program and blocks until the page is destroyed.
func (b *Backend) Open(cfg *native.Config, cb native.Callback) (native.Result, error) {
	m := newModel(cfg, cb)
	b.m = m
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err := program.Run()
	b.m = nil
	if err != nil {
		return native.Result{}, fmt.Errorf("run terminal dialog: %w", err)
	}
	return m.result, nil
}

// Send delivers one interaction to the live page. Sends against a
// closed or never-created page are absorbed silently.
func (b *Backend) Send(h native.Handle, in native.Interaction) {
	m := b.m
	if m == nil || m.finished || h == 0 || h != m.handle {
		return
	}
	m.apply(in)
}
