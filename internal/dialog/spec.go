package dialog

import (
	"fmt"

	"github.com/atomicstack/taskdialog-control/internal/native"
)

// Spec declares the dialog a caller wants to open. It is mutable until
// Open consumes it; after that the session works from composed wire
// snapshots only.
type Spec struct {
	Title       string
	Instruction string
	Content     string
	Footer      string

	ExpandedInfo         string
	ExpandedControlText  string
	CollapsedControlText string
	ExpandedByDefault    bool

	VerificationText    string
	VerificationChecked bool

	MainIcon   native.IconRef
	FooterIcon native.IconRef

	// BarColor layers the colored-bar emulation over MainIcon.
	// BarNone leaves the icon untouched.
	BarColor BarColor

	CommonButtons native.CommonButtons

	// Buttons and Radios keep caller order. Ids must be non-zero and
	// unique within their list; id 0 is reserved for "no selection".
	Buttons []native.ButtonDef
	Radios  []native.ButtonDef

	DefaultButton  int
	DefaultRadio   int
	NoDefaultRadio bool

	CommandLinks       bool
	CommandLinksNoIcon bool
	EnableHyperlinks   bool
	AllowCancel        bool
	CanBeMinimized     bool
	RTLLayout          bool
	SizeToContent      bool

	ShowProgressBar    bool
	MarqueeProgressBar bool
	CallbackTimer      bool

	Width int
}

// Validate checks the id rules the wire format cannot express.
func (s *Spec) Validate() error {
	if err := validateDefs("button", s.Buttons); err != nil {
		return err
	}
	return validateDefs("radio button", s.Radios)
}

func validateDefs(kind string, defs []native.ButtonDef) error {
	seen := make(map[int]struct{}, len(defs))
	for _, def := range defs {
		if def.ID == 0 {
			return fmt.Errorf("dialog: %s id 0 is reserved for no selection", kind)
		}
		if _, dup := seen[def.ID]; dup {
			return fmt.Errorf("dialog: duplicate %s id %d", kind, def.ID)
		}
		seen[def.ID] = struct{}{}
	}
	return nil
}

// Result is the terminal outcome of one session.
type Result struct {
	Button              int
	Radio               int
	VerificationChecked bool
}
