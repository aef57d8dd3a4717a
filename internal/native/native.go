// Package native defines the boundary with the modal task-dialog
// subsystem: the wire configuration, the interaction messages a live
// window accepts, the notification codes delivered back through the
// callback, and the buffer arena used when marshaling a configuration
// for a native call. Concrete backends live in the comctl and term
// subpackages.
package native

import "errors"

// Handle identifies a live dialog window. Zero means no window.
type Handle uintptr

// Message enumerates the interaction messages a live dialog accepts.
type Message int

const (
	MsgNavigate Message = iota
	MsgClickButton
	MsgClickRadioButton
	MsgClickVerification
	MsgEnableButton
	MsgEnableRadioButton
	MsgSetElevationRequired
	MsgSetProgressRange
	MsgSetProgressPos
	MsgSetProgressState
	MsgSetMarquee
	MsgUpdateElementText
	MsgUpdateIcon
)

// Interaction is one fire-and-forget message to a live window. A carries
// the primary integer payload (button id, progress position, checked
// state), B the secondary one (range upper bound, marquee speed, enable
// flag). Text and Elem ride on element-text updates, Icon on icon
// updates, and Config only on MsgNavigate.
type Interaction struct {
	Msg    Message
	A      int
	B      int
	Elem   Element
	Text   string
	Icon   IconRef
	Config *Config
}

// Notification enumerates the callback events a dialog emits.
type Notification int

const (
	NoteCreated Notification = iota
	NoteNavigated
	NoteButtonClicked
	NoteRadioClicked
	NoteHyperlinkClicked
	NoteVerificationClicked
	NoteExpandoClicked
	NoteTimer
	NoteHelp
	NoteDestroyed
)

// String names the notification for trace output.
func (n Notification) String() string {
	switch n {
	case NoteCreated:
		return "created"
	case NoteNavigated:
		return "navigated"
	case NoteButtonClicked:
		return "button-clicked"
	case NoteRadioClicked:
		return "radio-clicked"
	case NoteHyperlinkClicked:
		return "hyperlink-clicked"
	case NoteVerificationClicked:
		return "verification-clicked"
	case NoteExpandoClicked:
		return "expando-clicked"
	case NoteTimer:
		return "timer"
	case NoteHelp:
		return "help"
	case NoteDestroyed:
		return "destroyed"
	}
	return "unknown"
}

// HandledCode is returned from the notification callback. Suppress tells
// the native layer to skip the default action for the notification: for
// a button click it refuses the close, for a timer tick it keeps the
// tick counter running.
type HandledCode int

const (
	HandledDefault  HandledCode = 0
	HandledSuppress HandledCode = 1
)

// Callback receives every native notification for one session. Arg
// carries the button/radio id, tick count, or toggle state; Ref carries
// hyperlink targets. Callbacks run synchronously on the thread that
// opened the dialog.
type Callback func(h Handle, code Notification, arg int, ref string) HandledCode

// Result is the terminal outcome reported by the native open call.
type Result struct {
	Button              int
	Radio               int
	VerificationChecked bool
}

// ErrUnavailable reports that the modern dialog control cannot be
// reached on this host.
var ErrUnavailable = errors.New("task dialog control unavailable")

// Backend abstracts the native dialog subsystem.
type Backend interface {
	// Available reports whether the modern dialog control can be used.
	Available() error
	// Open shows the dialog described by cfg and blocks until it is
	// destroyed, delivering notifications through cb on the calling
	// thread.
	Open(cfg *Config, cb Callback) (Result, error)
	// Send delivers one interaction to the live window. Implementations
	// must absorb sends against a stale or zero handle silently.
	Send(h Handle, in Interaction)
}
