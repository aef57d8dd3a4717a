package dialog

import "github.com/atomicstack/taskdialog-control/internal/native"

// Step is one scripted native notification.
type Step struct {
	Note native.Notification
	Arg  int
	Ref  string
}

// Script is a scripted stand-in for the native backend. It drives a
// session through a canned notification sequence, records every
// interaction the session sends, and mimics the native close semantics
// for button clicks so suppression behavior can be observed.
type Script struct {
	Steps       []Step
	Unavailable error
	OpenErr     error

	Opened       []*native.Config
	Sent         []native.Interaction
	Returns      []native.HandledCode
	RefusedClose int

	cb     native.Callback
	result native.Result
	closed bool
}

func (f *Script) Available() error {
	return f.Unavailable
}

func (f *Script) Open(cfg *native.Config, cb native.Callback) (native.Result, error) {
	f.Opened = append(f.Opened, cfg)
	if f.OpenErr != nil {
		return native.Result{}, f.OpenErr
	}
	f.cb = cb
	f.result = native.Result{}
	f.closed = false
	for _, step := range f.Steps {
		code := cb(1, step.Note, step.Arg, step.Ref)
		f.Returns = append(f.Returns, code)
		switch step.Note {
		case native.NoteButtonClicked:
			if code == native.HandledSuppress {
				f.RefusedClose++
			} else if f.result.Button == 0 {
				f.result.Button = step.Arg
			}
		case native.NoteRadioClicked:
			f.result.Radio = step.Arg
		case native.NoteVerificationClicked:
			f.result.VerificationChecked = step.Arg != 0
		case native.NoteDestroyed:
			f.closed = true
		}
	}
	return f.result, nil
}

// Send records the interaction and mirrors the native navigate handling:
// a navigate message synchronously tears down and rebuilds the page, so
// the Navigated notification fires before Send returns.
func (f *Script) Send(h native.Handle, in native.Interaction) {
	if f.closed {
		return
	}
	f.Sent = append(f.Sent, in)
	if in.Msg == native.MsgNavigate && f.cb != nil {
		f.cb(h, native.NoteNavigated, 0, "")
	}
}

// SentMessages lists the message kinds sent, in order.
func (f *Script) SentMessages() []native.Message {
	msgs := make([]native.Message, len(f.Sent))
	for i, in := range f.Sent {
		msgs[i] = in.Msg
	}
	return msgs
}
