package state

import "github.com/atomicstack/taskdialog-control/internal/native"

// Snapshot is an immutable value copy of the store, used by tests and by
// the navigation path to keep the overlay order auditable.
type Snapshot struct {
	Radio               int
	RadioTouched        bool
	Verification        bool
	VerificationTouched bool
	Expanded            bool
	ExpandedTouched     bool

	Progress *Progress

	ButtonEnabled map[int]bool
	RadioEnabled  map[int]bool
	Elevation     map[int]bool
	Texts         map[native.Element]string

	RealIcon    native.IconRef
	RealIconSet bool
}

// Snapshot returns a deep value copy of the current store contents.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		Radio:               s.radio,
		RadioTouched:        s.radioTouched,
		Verification:        s.verification,
		VerificationTouched: s.verificationTouched,
		Expanded:            s.expanded,
		ExpandedTouched:     s.expandedTouched,
		ButtonEnabled:       cloneIntBoolMap(s.buttonEnabled),
		RadioEnabled:        cloneIntBoolMap(s.radioEnabled),
		Elevation:           cloneIntBoolMap(s.elevation),
		Texts:               cloneTextMap(s.texts),
		RealIcon:            s.realIcon,
		RealIconSet:         s.realIconSet,
	}
	if s.progress != nil {
		dup := *s.progress
		snap.Progress = &dup
	}
	return snap
}

func cloneIntBoolMap(src map[int]bool) map[int]bool {
	if len(src) == 0 {
		return nil
	}
	dup := make(map[int]bool, len(src))
	for k, v := range src {
		dup[k] = v
	}
	return dup
}

func cloneTextMap(src map[native.Element]string) map[native.Element]string {
	if len(src) == 0 {
		return nil
	}
	dup := make(map[native.Element]string, len(src))
	for k, v := range src {
		dup[k] = v
	}
	return dup
}
