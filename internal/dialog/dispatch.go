package dialog

import (
	"github.com/atomicstack/taskdialog-control/internal/logging/events"
	"github.com/atomicstack/taskdialog-control/internal/native"
)

// dispatch is the session's notification callback. Every native
// notification maps to exactly one typed event; the dispatcher also
// keeps the preservation store in sync with user-driven changes before
// the caller's handler runs, so handlers observe the post-change state.
func (s *Session) dispatch(h native.Handle, code native.Notification, arg int, ref string) native.HandledCode {
	if s.live == nil {
		return native.HandledDefault
	}
	events.Native.Notification(code.String(), arg)

	switch code {
	case native.NoteCreated:
		s.live.handle = h
		events.Session.Created(uintptr(h))
		if real, ok := s.store.RealIcon(); ok {
			// Construction rendered the shield variant; the visible icon
			// now becomes the caller's intended one while the bar color
			// sticks.
			s.send(native.Interaction{Msg: native.MsgUpdateIcon, Icon: real})
		}
		if s.handlers.OnCreated != nil {
			s.handlers.OnCreated()
		}

	case native.NoteNavigated:
		steps := s.store.Replay(func(in native.Interaction) { s.send(in) })
		events.Navigate.Replayed(steps)
		if s.handlers.OnNavigated != nil {
			s.handlers.OnNavigated()
		}

	case native.NoteButtonClicked:
		ev := &ButtonClick{ID: arg}
		if s.handlers.OnButtonClicked != nil {
			s.handlers.OnButtonClicked(ev)
		}
		if ev.suppress {
			events.Session.SuppressedClose(arg)
			return native.HandledSuppress
		}

	case native.NoteRadioClicked:
		s.store.SetRadio(arg)
		if s.handlers.OnRadioClicked != nil {
			s.handlers.OnRadioClicked(arg)
		}

	case native.NoteVerificationClicked:
		s.store.SetVerification(arg != 0)
		if s.handlers.OnVerificationClicked != nil {
			s.handlers.OnVerificationClicked(arg != 0)
		}

	case native.NoteExpandoClicked:
		s.store.SetExpanded(arg != 0)
		if s.handlers.OnExpandoClicked != nil {
			s.handlers.OnExpandoClicked(arg != 0)
		}

	case native.NoteHyperlinkClicked:
		if s.handlers.OnHyperlinkClicked != nil {
			s.handlers.OnHyperlinkClicked(ref)
		}

	case native.NoteTimer:
		ev := &TimerTick{Elapsed: arg}
		if s.handlers.OnTimer != nil {
			s.handlers.OnTimer(ev)
		}
		if ev.suppress {
			return native.HandledSuppress
		}

	case native.NoteHelp:
		if s.handlers.OnHelp != nil {
			s.handlers.OnHelp()
		}

	case native.NoteDestroyed:
		events.Session.Destroyed()
		if s.handlers.OnDestroyed != nil {
			s.handlers.OnDestroyed()
		}
		// Terminal state: every later interaction becomes a no-op even
		// though the blocking open call has not unwound yet.
		s.live.handle = 0
	}

	return native.HandledDefault
}
