package state

import "github.com/atomicstack/taskdialog-control/internal/native"

// Compose builds the wire config for a full-page navigation. The page is
// rebuilt from scratch by the native subsystem, so the result must carry
// everything the user could otherwise lose: it starts from the last
// fully-composed snapshot, applies the caller's delta, then overlays the
// recorded flag and radio state. The overlay runs after the delta so a
// delta can never silently discard user-driven state.
func (s *Store) Compose(last *native.Config, delta func(*native.Config)) *native.Config {
	cfg := last.Clone()
	if delta != nil {
		delta(cfg)
	}

	if checked, ok := s.Verification(); ok {
		if checked {
			cfg.Flags |= native.FlagVerificationChecked
		} else {
			cfg.Flags &^= native.FlagVerificationChecked
		}
	}
	if expanded, ok := s.Expanded(); ok {
		if expanded {
			cfg.Flags |= native.FlagExpandedByDefault
		} else {
			cfg.Flags &^= native.FlagExpandedByDefault
		}
	}

	// The rebuilt page only accepts a default radio selection, not a
	// current one. Substituting the recorded selection into the default
	// field is what makes navigation observationally equivalent to an
	// in-place update.
	if radio, ok := s.Radio(); ok {
		cfg.DefaultRadio = radio
		if radio == 0 {
			cfg.Flags |= native.FlagNoDefaultRadio
		} else {
			cfg.Flags &^= native.FlagNoDefaultRadio
		}
	}

	// Dynamic text overrides ride in the config as well; the per-element
	// replay after the Navigated notification re-applies them for regions
	// the rebuild does not honor from the config alone.
	if text, ok := s.Text(native.ElementMainInstruction); ok {
		cfg.Instruction = text
	}
	if text, ok := s.Text(native.ElementContent); ok {
		cfg.Content = text
	}
	if text, ok := s.Text(native.ElementExpandedInfo); ok {
		cfg.ExpandedInfo = text
	}
	if text, ok := s.Text(native.ElementFooter); ok {
		cfg.Footer = text
	}

	return cfg
}
