//go:build !windows

// Package comctl implements the native backend on the comctl32 task
// dialog control. On other platforms the control does not exist; the
// stub reports that through the shared unavailability condition so
// callers can fall back to the terminal backend.
package comctl

import (
	"fmt"
	"runtime"

	"github.com/atomicstack/taskdialog-control/internal/native"
)

// Backend is the non-Windows placeholder for the comctl32 control.
type Backend struct{}

// New returns the comctl backend.
func New() *Backend {
	return &Backend{}
}

// Available always reports the control as unreachable on this platform.
func (b *Backend) Available() error {
	return fmt.Errorf("%w: comctl32 task dialogs require windows, running on %s", native.ErrUnavailable, runtime.GOOS)
}

// Open fails with the unavailability condition.
func (b *Backend) Open(cfg *native.Config, cb native.Callback) (native.Result, error) {
	return native.Result{}, b.Available()
}

// Send is a no-op without a live control.
func (b *Backend) Send(h native.Handle, in native.Interaction) {}
