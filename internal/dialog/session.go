package dialog

import (
	"fmt"

	"github.com/atomicstack/taskdialog-control/internal/dialog/state"
	"github.com/atomicstack/taskdialog-control/internal/logging/events"
	"github.com/atomicstack/taskdialog-control/internal/native"
)

// Session opens and drives at most one live dialog at a time. All of its
// methods are thread-affine: the dialog's message loop runs on the
// thread that called Open, and only that thread may send interactions
// without external marshaling.
type Session struct {
	backend  native.Backend
	handlers Handlers

	live  *liveSession
	store *state.Store
	bar   BarColor
}

// liveSession exists between Open and the terminal destroyed
// notification.
type liveSession struct {
	handle     native.Handle
	lastConfig *native.Config
}

// New returns a session bound to a backend and a handler set.
func New(backend native.Backend, handlers Handlers) *Session {
	return &Session{backend: backend, handlers: handlers}
}

// Open shows the dialog described by spec and blocks until the session
// reaches its terminal state. A second Open while a session is live
// fails with ErrSessionActive; an unreachable native control fails with
// a *ConfigurationError.
func (s *Session) Open(spec *Spec) (Result, error) {
	if s.live != nil {
		return Result{}, ErrSessionActive
	}
	if err := s.backend.Available(); err != nil {
		events.Session.Unavailable(err)
		return Result{}, &ConfigurationError{Err: err}
	}

	cfg, err := BuildConfig(spec)
	if err != nil {
		return Result{}, err
	}

	s.store = state.New()
	s.bar = spec.BarColor
	if s.bar != BarNone {
		// The bar color can only be established by opening with the
		// shield icon on the wire; the caller's icon is swapped back in
		// once the window exists.
		s.store.SetRealIcon(cfg.MainIcon)
		cfg.MainIcon = shieldIconRef(s.bar)
	}

	s.live = &liveSession{lastConfig: cfg}
	events.Session.Open(spec.Title, len(cfg.Buttons), len(cfg.Radios))

	res, err := s.backend.Open(cfg, s.dispatch)

	s.live = nil
	s.store = nil
	s.bar = BarNone
	if err != nil {
		return Result{}, fmt.Errorf("open dialog: %w", err)
	}
	events.Session.Result(res.Button, res.Radio, res.VerificationChecked)
	return Result(res), nil
}

// send forwards one interaction to the live window. With no live window
// it is a silent no-op for every message kind: interactions are
// best-effort against a resource that closes asynchronously.
func (s *Session) send(in native.Interaction) {
	if s.live == nil || s.live.handle == 0 {
		events.Native.DroppedSend(in.Msg.String())
		return
	}
	events.Native.Send(in.Msg.String(), uintptr(s.live.handle))
	s.backend.Send(s.live.handle, in)
}

// navigate performs a full-page rebuild: compose the new wire config
// from the last snapshot, the delta, and the preserved state, then send
// a single navigate message. The replay runs when the Navigated
// notification arrives.
func (s *Session) navigate(reason string, delta func(*native.Config)) {
	if s.live == nil || s.live.handle == 0 {
		return
	}
	events.Navigate.Begin(reason)
	cfg := s.store.Compose(s.live.lastConfig, delta)
	if s.bar != BarNone {
		// The rebuilt page must carry the shield variant, never the
		// caller's real icon: the bar renders from the construction-time
		// icon, and the real icon is restored by the replay afterwards.
		cfg.MainIcon = shieldIconRef(s.bar)
	}
	s.live.lastConfig = cfg
	s.send(native.Interaction{Msg: native.MsgNavigate, Config: cfg})
}

// Navigate rebuilds the page with a caller-supplied delta applied on top
// of the last composed snapshot. All preserved state survives the
// rebuild.
func (s *Session) Navigate(delta func(*native.Config)) {
	s.navigate("caller", delta)
}

// SetBarColor changes the emulated bar color. The icon update alone
// recolors the visible bar; the additional full navigation deliberately
// resynchronizes every other preserved property in the same pass.
func (s *Session) SetBarColor(c BarColor) {
	if s.live == nil {
		return
	}
	events.Navigate.BarColor(s.bar.String(), c.String())
	prev := s.bar
	s.bar = c

	if c == BarNone {
		real, ok := s.store.RealIcon()
		if !ok {
			if prev == BarNone {
				return
			}
			real = native.IconRef{}
		}
		s.store.ClearRealIcon()
		s.send(native.Interaction{Msg: native.MsgUpdateIcon, Icon: real})
		s.navigate("bar-color", func(cfg *native.Config) {
			cfg.MainIcon = real
		})
		return
	}

	if _, ok := s.store.RealIcon(); !ok {
		s.store.SetRealIcon(s.live.lastConfig.MainIcon)
	}
	s.send(native.Interaction{Msg: native.MsgUpdateIcon, Icon: shieldIconRef(c)})
	s.navigate("bar-color", nil)
}

// UpdateIcon changes the caller's intended main icon. Under bar
// emulation the intended icon is tracked separately from the shield
// variant on the wire.
func (s *Session) UpdateIcon(icon native.IconRef) {
	if s.live == nil {
		return
	}
	if s.bar != BarNone {
		s.store.SetRealIcon(icon)
	} else {
		cfg := s.live.lastConfig.Clone()
		cfg.MainIcon = icon
		s.live.lastConfig = cfg
	}
	s.send(native.Interaction{Msg: native.MsgUpdateIcon, Icon: icon})
}

// SetProgressRange sets the progress-bar bounds.
func (s *Session) SetProgressRange(min, max int) {
	if s.live == nil {
		return
	}
	p := s.store.EnsureProgress()
	p.Min, p.Max = min, max
	p.Marquee = false
	s.send(native.Interaction{Msg: native.MsgSetProgressRange, A: min, B: max})
}

// SetProgressPosition moves the progress bar.
func (s *Session) SetProgressPosition(pos int) {
	if s.live == nil {
		return
	}
	p := s.store.EnsureProgress()
	p.Pos = pos
	p.Marquee = false
	s.send(native.Interaction{Msg: native.MsgSetProgressPos, A: pos})
}

// SetProgressState sets the progress-bar state.
func (s *Session) SetProgressState(st native.ProgressState) {
	if s.live == nil {
		return
	}
	p := s.store.EnsureProgress()
	p.State = st
	s.send(native.Interaction{Msg: native.MsgSetProgressState, A: int(st)})
}

// SetMarquee switches the progress bar in or out of marquee mode.
func (s *Session) SetMarquee(on bool, speed int) {
	if s.live == nil {
		return
	}
	p := s.store.EnsureProgress()
	p.Marquee = on
	p.MarqueeSpeed = speed
	s.send(native.Interaction{Msg: native.MsgSetMarquee, A: boolArg(on), B: speed})
}

// EnableButton toggles a button.
func (s *Session) EnableButton(id int, enabled bool) {
	if s.live == nil {
		return
	}
	s.store.SetButtonEnabled(id, enabled)
	s.send(native.Interaction{Msg: native.MsgEnableButton, A: id, B: boolArg(enabled)})
}

// EnableRadioButton toggles a radio button.
func (s *Session) EnableRadioButton(id int, enabled bool) {
	if s.live == nil {
		return
	}
	s.store.SetRadioEnabled(id, enabled)
	s.send(native.Interaction{Msg: native.MsgEnableRadioButton, A: id, B: boolArg(enabled)})
}

// SetElevationRequired marks a button as needing elevated privileges.
func (s *Session) SetElevationRequired(id int, required bool) {
	if s.live == nil {
		return
	}
	s.store.SetElevationRequired(id, required)
	s.send(native.Interaction{Msg: native.MsgSetElevationRequired, A: id, B: boolArg(required)})
}

// SetElementText overrides the text of one dialog element.
func (s *Session) SetElementText(elem native.Element, text string) {
	if s.live == nil {
		return
	}
	s.store.SetText(elem, text)
	s.send(native.Interaction{Msg: native.MsgUpdateElementText, Elem: elem, Text: text})
}

// ClickButton simulates a button click.
func (s *Session) ClickButton(id int) {
	s.send(native.Interaction{Msg: native.MsgClickButton, A: id})
}

// ClickRadioButton simulates a radio-button click.
func (s *Session) ClickRadioButton(id int) {
	s.send(native.Interaction{Msg: native.MsgClickRadioButton, A: id})
}

// ClickVerification sets the verification checkbox.
func (s *Session) ClickVerification(checked bool) {
	s.send(native.Interaction{Msg: native.MsgClickVerification, A: boolArg(checked)})
}

// WindowHandle returns the live window token, or zero when no window
// exists. Collaborators that anchor to the window (popup menus) take it
// as an opaque parent token.
func (s *Session) WindowHandle() uintptr {
	if s.live == nil {
		return 0
	}
	return uintptr(s.live.handle)
}

// StateSnapshot exposes an immutable copy of the preserved state for
// diagnostics and tests. The second return is false with no live
// session.
func (s *Session) StateSnapshot() (state.Snapshot, bool) {
	if s.store == nil {
		return state.Snapshot{}, false
	}
	return s.store.Snapshot(), true
}

func boolArg(v bool) int {
	if v {
		return 1
	}
	return 0
}
