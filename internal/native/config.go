package native

// Flags mirrors the wire flag bits of the task-dialog configuration.
type Flags uint32

const (
	FlagEnableHyperlinks        Flags = 0x0001
	FlagUseIconHandle           Flags = 0x0002
	FlagUseFooterIconHandle     Flags = 0x0004
	FlagAllowCancel             Flags = 0x0008
	FlagCommandLinks            Flags = 0x0010
	FlagCommandLinksNoIcon      Flags = 0x0020
	FlagExpandFooterArea        Flags = 0x0040
	FlagExpandedByDefault       Flags = 0x0080
	FlagVerificationChecked     Flags = 0x0100
	FlagShowProgressBar         Flags = 0x0200
	FlagShowMarqueeProgress     Flags = 0x0400
	FlagCallbackTimer           Flags = 0x0800
	FlagPositionRelativeToOwner Flags = 0x1000
	FlagRTLLayout               Flags = 0x2000
	FlagNoDefaultRadio          Flags = 0x4000
	FlagCanBeMinimized          Flags = 0x8000
	FlagSizeToContent           Flags = 0x1000000
)

// CommonButtons is the bitset of pre-defined buttons.
type CommonButtons uint32

const (
	ButtonOK     CommonButtons = 0x01
	ButtonYes    CommonButtons = 0x02
	ButtonNo     CommonButtons = 0x04
	ButtonCancel CommonButtons = 0x08
	ButtonRetry  CommonButtons = 0x10
	ButtonClose  CommonButtons = 0x20
)

// Fixed result ids reported for common buttons.
const (
	IDOK     = 1
	IDCancel = 2
	IDRetry  = 4
	IDYes    = 6
	IDNo     = 7
	IDClose  = 8
)

var commonButtonIDs = []struct {
	bit CommonButtons
	id  int
}{
	{ButtonOK, IDOK},
	{ButtonYes, IDYes},
	{ButtonNo, IDNo},
	{ButtonCancel, IDCancel},
	{ButtonRetry, IDRetry},
	{ButtonClose, IDClose},
}

// IDs returns the result ids of every button present in the set, in the
// native display order.
func (b CommonButtons) IDs() []int {
	ids := make([]int, 0, 6)
	for _, entry := range commonButtonIDs {
		if b&entry.bit != 0 {
			ids = append(ids, entry.id)
		}
	}
	return ids
}

// Contains reports whether id belongs to a button present in the set.
func (b CommonButtons) Contains(id int) bool {
	for _, entry := range commonButtonIDs {
		if b&entry.bit != 0 && entry.id == id {
			return true
		}
	}
	return false
}

// Label returns the conventional label for a common-button id.
func CommonButtonLabel(id int) string {
	switch id {
	case IDOK:
		return "OK"
	case IDCancel:
		return "Cancel"
	case IDRetry:
		return "Retry"
	case IDYes:
		return "Yes"
	case IDNo:
		return "No"
	case IDClose:
		return "Close"
	}
	return ""
}

// Predefined icon identifiers. The shield variants double as the only
// mechanism for tinting the dialog's title-bar accent.
const (
	IconNone         = 0
	IconWarning      = -1
	IconError        = -2
	IconInformation  = -3
	IconShield       = -4
	IconShieldBlue   = -5
	IconShieldYellow = -6
	IconShieldRed    = -7
	IconShieldGreen  = -8
	IconShieldGray   = -9
)

// IconRef selects either a predefined icon by identifier or an explicit
// icon handle. A non-zero handle takes precedence and flips the
// use-icon-handle flag bit during the build.
type IconRef struct {
	ID     int
	Handle uintptr
}

// IsZero reports whether the reference selects no icon at all.
func (r IconRef) IsZero() bool {
	return r.ID == IconNone && r.Handle == 0
}

// Element identifies a text region of a live dialog.
type Element int

const (
	ElementContent Element = iota
	ElementExpandedInfo
	ElementFooter
	ElementMainInstruction
)

// String names the element for trace output.
func (e Element) String() string {
	switch e {
	case ElementContent:
		return "content"
	case ElementExpandedInfo:
		return "expanded-info"
	case ElementFooter:
		return "footer"
	case ElementMainInstruction:
		return "main-instruction"
	}
	return "unknown"
}

// ProgressState mirrors the native progress-bar state values.
type ProgressState int

const (
	ProgressNormal ProgressState = 1
	ProgressError  ProgressState = 2
	ProgressPaused ProgressState = 3
)

// ButtonDef is one custom button or radio button in caller order.
type ButtonDef struct {
	ID   int
	Text string
}

// Config is the full wire representation of one dialog page. It is
// treated as an immutable snapshot once composed; navigation clones it
// and overlays the changes.
type Config struct {
	Flags         Flags
	CommonButtons CommonButtons

	Title       string
	Instruction string
	Content     string

	MainIcon   IconRef
	FooterIcon IconRef

	Buttons       []ButtonDef
	DefaultButton int
	Radios        []ButtonDef
	DefaultRadio  int

	VerificationText     string
	ExpandedInfo         string
	ExpandedControlText  string
	CollapsedControlText string
	Footer               string

	Width int
}

// Clone returns a deep copy safe to overlay without touching the
// original snapshot.
func (c *Config) Clone() *Config {
	dup := *c
	dup.Buttons = cloneButtons(c.Buttons)
	dup.Radios = cloneButtons(c.Radios)
	return &dup
}

func cloneButtons(defs []ButtonDef) []ButtonDef {
	if len(defs) == 0 {
		return nil
	}
	dup := make([]ButtonDef, len(defs))
	copy(dup, defs)
	return dup
}
