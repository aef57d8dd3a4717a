// Package app wires configuration, backend selection, and the demo
// dialog together behind a single Run entry point.
package app

import (
	"fmt"

	"github.com/atomicstack/taskdialog-control/internal/dialog"
	"github.com/atomicstack/taskdialog-control/internal/logging/events"
	"github.com/atomicstack/taskdialog-control/internal/native"
	"github.com/atomicstack/taskdialog-control/internal/native/comctl"
	"github.com/atomicstack/taskdialog-control/internal/native/term"
	"github.com/atomicstack/taskdialog-control/internal/tray"
)

// Config describes user-provided application options.
type Config struct {
	Backend string
	Width   int
	Verbose bool
}

// Button and radio ids used by the demo dialog.
const (
	btnPause  = 101
	btnResume = 102

	radioSlow = 201
	radioFast = 202
)

// Run opens the demo dialog on the selected backend and blocks until it
// closes. The demo drives a simulated long-running operation from the
// callback timer: progress updates, bar-color transitions at
// thresholds, and a close that is refused while work is in flight.
func Run(cfg Config) error {
	backend, name, err := selectBackend(cfg.Backend)
	if err != nil {
		return err
	}
	events.App.BackendSelected(name)

	var session *dialog.Session

	progress := 0
	step := 1
	paused := false
	done := false

	finish := func() {
		done = true
		session.SetProgressState(native.ProgressNormal)
		session.SetBarColor(dialog.BarGreen)
		session.SetElementText(native.ElementMainInstruction, "Operation complete")
		session.SetElementText(native.ElementContent, "All items processed. The dialog can be closed now.")
		session.EnableButton(btnPause, false)
		session.EnableButton(btnResume, false)
	}

	handlers := dialog.Handlers{
		OnCreated: func() {
			session.EnableButton(btnResume, false)
		},
		OnTimer: func(t *dialog.TimerTick) {
			if done || paused {
				return
			}
			if t.Elapsed < 400 {
				// Let ticks accumulate so progress advances about twice a
				// second regardless of the 200ms callback cadence.
				t.KeepTickCount()
				return
			}
			progress += step
			if progress >= 100 {
				progress = 100
			}
			session.SetProgressPosition(progress)
			switch {
			case progress >= 100:
				finish()
			case progress >= 75:
				session.SetBarColor(dialog.BarYellow)
			}
		},
		OnButtonClicked: func(c *dialog.ButtonClick) {
			switch c.ID {
			case btnPause:
				c.SuppressClose()
				paused = true
				session.SetProgressState(native.ProgressPaused)
				session.EnableButton(btnPause, false)
				session.EnableButton(btnResume, true)
			case btnResume:
				c.SuppressClose()
				paused = false
				session.SetProgressState(native.ProgressNormal)
				session.EnableButton(btnPause, true)
				session.EnableButton(btnResume, false)
			case native.IDCancel, native.IDClose:
				if !done {
					// Refuse the close while work is in flight; the footer
					// explains how to get out.
					c.SuppressClose()
					session.SetBarColor(dialog.BarRed)
					session.SetElementText(native.ElementFooter, "Still working. Pause first, or wait for completion.")
				}
			}
		},
		OnRadioClicked: func(id int) {
			switch id {
			case radioSlow:
				step = 1
			case radioFast:
				step = 5
			}
		},
		OnHelp: func() {
			// The popup collaborator is display-only on this side of the
			// boundary: show, block, map the selection back onto the
			// dialog's own radio buttons.
			menu := (&tray.Menu{}).Add("Slow updates").Add("Fast updates")
			idx, err := tray.Show(session.WindowHandle(), menu)
			if err != nil || idx < 0 {
				return
			}
			if idx == 0 {
				session.ClickRadioButton(radioSlow)
			} else {
				session.ClickRadioButton(radioFast)
			}
		},
	}

	session = dialog.New(backend, handlers)
	result, err := session.Open(&dialog.Spec{
		Title:       "taskdialog-control",
		Instruction: "Processing items",
		Content:     "A simulated long-running operation drives this dialog through the callback timer.",
		Footer:      "Progress updates arrive from inside the timer notification.",
		BarColor:    dialog.BarBlue,
		Buttons: []native.ButtonDef{
			{ID: btnPause, Text: "Pause"},
			{ID: btnResume, Text: "Resume"},
		},
		Radios: []native.ButtonDef{
			{ID: radioSlow, Text: "Slow"},
			{ID: radioFast, Text: "Fast"},
		},
		DefaultRadio:    radioSlow,
		CommonButtons:   native.ButtonClose,
		AllowCancel:     true,
		ShowProgressBar: true,
		CallbackTimer:   true,
		Width:           cfg.Width,
	})
	if err != nil {
		return err
	}
	if cfg.Verbose {
		fmt.Printf("button=%d radio=%d verification=%t\n", result.Button, result.Radio, result.VerificationChecked)
	}
	return nil
}

// selectBackend resolves the configured backend name. Auto prefers the
// native control and falls back to the terminal renderer when the
// control is unreachable.
func selectBackend(name string) (native.Backend, string, error) {
	switch name {
	case "comctl":
		return comctl.New(), name, nil
	case "term":
		return term.New(), name, nil
	case "", "auto":
		control := comctl.New()
		if err := control.Available(); err == nil {
			return control, "comctl", nil
		}
		return term.New(), "term", nil
	}
	return nil, "", fmt.Errorf("unknown backend %q", name)
}
