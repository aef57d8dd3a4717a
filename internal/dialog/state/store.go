// Package state holds the per-session record of every caller- or
// user-driven change to a live dialog. The native subsystem cannot be
// queried for current state, so each property that can change is tracked
// here and replayed deterministically after a full-page navigation.
package state

import "github.com/atomicstack/taskdialog-control/internal/native"

// Progress captures the progress-bar settings a caller has applied.
type Progress struct {
	Pos          int
	Min          int
	Max          int
	State        native.ProgressState
	Marquee      bool
	MarqueeSpeed int
}

// Store is lazily populated: an entry exists only once the caller or the
// user has actually touched the property. Nothing is defaulted from the
// declarative spec beyond its initial values, which live in the composed
// config snapshots instead.
type Store struct {
	radio               int
	radioTouched        bool
	verification        bool
	verificationTouched bool
	expanded            bool
	expandedTouched     bool

	progress *Progress

	buttonEnabled map[int]bool
	radioEnabled  map[int]bool
	elevation     map[int]bool
	texts         map[native.Element]string

	realIcon    native.IconRef
	realIconSet bool
}

// New returns an empty store for one session.
func New() *Store {
	return &Store{}
}

// SetRadio records the current radio selection.
func (s *Store) SetRadio(id int) {
	s.radio = id
	s.radioTouched = true
}

// Radio returns the recorded selection and whether one was ever made.
func (s *Store) Radio() (int, bool) {
	return s.radio, s.radioTouched
}

// SetVerification records the verification checkbox state.
func (s *Store) SetVerification(checked bool) {
	s.verification = checked
	s.verificationTouched = true
}

// Verification returns the recorded checkbox state and whether it was
// ever toggled.
func (s *Store) Verification() (bool, bool) {
	return s.verification, s.verificationTouched
}

// SetExpanded records the expander state.
func (s *Store) SetExpanded(expanded bool) {
	s.expanded = expanded
	s.expandedTouched = true
}

// Expanded returns the recorded expander state and whether it was ever
// toggled.
func (s *Store) Expanded() (bool, bool) {
	return s.expanded, s.expandedTouched
}

// EnsureProgress returns the progress record, creating it on first use.
func (s *Store) EnsureProgress() *Progress {
	if s.progress == nil {
		s.progress = &Progress{State: native.ProgressNormal}
	}
	return s.progress
}

// Progress returns the progress record, or nil when untouched.
func (s *Store) Progress() *Progress {
	return s.progress
}

// SetButtonEnabled records per-button enablement.
func (s *Store) SetButtonEnabled(id int, enabled bool) {
	if s.buttonEnabled == nil {
		s.buttonEnabled = make(map[int]bool)
	}
	s.buttonEnabled[id] = enabled
}

// SetRadioEnabled records per-radio enablement.
func (s *Store) SetRadioEnabled(id int, enabled bool) {
	if s.radioEnabled == nil {
		s.radioEnabled = make(map[int]bool)
	}
	s.radioEnabled[id] = enabled
}

// SetElevationRequired records the elevation marker for a button.
func (s *Store) SetElevationRequired(id int, required bool) {
	if s.elevation == nil {
		s.elevation = make(map[int]bool)
	}
	s.elevation[id] = required
}

// SetText records a dynamic text override for an element.
func (s *Store) SetText(elem native.Element, text string) {
	if s.texts == nil {
		s.texts = make(map[native.Element]string)
	}
	s.texts[elem] = text
}

// Text returns the recorded override for an element.
func (s *Store) Text(elem native.Element) (string, bool) {
	text, ok := s.texts[elem]
	return text, ok
}

// SetRealIcon records the caller's intended icon while the colored-bar
// emulation has a shield icon on the wire instead.
func (s *Store) SetRealIcon(icon native.IconRef) {
	s.realIcon = icon
	s.realIconSet = true
}

// RealIcon returns the recorded caller icon and whether one is held.
func (s *Store) RealIcon() (native.IconRef, bool) {
	return s.realIcon, s.realIconSet
}

// ClearRealIcon drops the recorded caller icon once the emulation ends.
func (s *Store) ClearRealIcon() {
	s.realIcon = native.IconRef{}
	s.realIconSet = false
}
