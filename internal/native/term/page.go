package term

import "github.com/atomicstack/taskdialog-control/internal/native"

// buttonEntry is one clickable button in display order: custom buttons
// first in caller order, then the common buttons in native order.
type buttonEntry struct {
	id     int
	label  string
	common bool
}

// applied classifies the outcome of delivering one interaction to the
// page: most messages just mutate page state, but clicks and navigation
// need the surrounding model to act.
type applied int

const (
	appliedState applied = iota
	appliedClickButton
	appliedClickRadio
	appliedClickVerification
	appliedNavigate
)

// page mirrors the state a native dialog window would hold for the
// current configuration. It is rebuilt wholesale on navigation; the
// title-bar accent color is fixed at construction time from the config's
// icon, and later icon updates change only the visible glyph. That
// mirrors the rendering quirk the colored-bar emulation relies on.
type page struct {
	cfg *native.Config

	barIcon int
	icon    native.IconRef

	texts map[native.Element]string

	verification bool
	expanded     bool
	radio        int

	showProgress  bool
	progressPos   int
	progressMin   int
	progressMax   int
	progressState native.ProgressState
	marquee       bool
	marqueeSpeed  int

	buttonEnabled map[int]bool
	radioEnabled  map[int]bool
	elevation     map[int]bool
}

func newPage(cfg *native.Config) *page {
	p := &page{
		cfg:           cfg,
		icon:          cfg.MainIcon,
		texts:         make(map[native.Element]string),
		buttonEnabled: make(map[int]bool),
		radioEnabled:  make(map[int]bool),
		elevation:     make(map[int]bool),
		verification:  cfg.Flags&native.FlagVerificationChecked != 0,
		expanded:      cfg.Flags&native.FlagExpandedByDefault != 0,
		showProgress:  cfg.Flags&(native.FlagShowProgressBar|native.FlagShowMarqueeProgress) != 0,
		marquee:       cfg.Flags&native.FlagShowMarqueeProgress != 0,
		progressMax:   100,
		progressState: native.ProgressNormal,
	}
	if cfg.MainIcon.Handle == 0 {
		p.barIcon = cfg.MainIcon.ID
	}
	if cfg.Flags&native.FlagNoDefaultRadio == 0 {
		switch {
		case cfg.DefaultRadio != 0:
			p.radio = cfg.DefaultRadio
		case len(cfg.Radios) > 0:
			p.radio = cfg.Radios[0].ID
		}
	}
	return p
}

// apply delivers one interaction. State-only messages mutate the page;
// the rest are classified for the model to act on.
func (p *page) apply(in native.Interaction) applied {
	switch in.Msg {
	case native.MsgEnableButton:
		p.buttonEnabled[in.A] = in.B != 0
	case native.MsgEnableRadioButton:
		p.radioEnabled[in.A] = in.B != 0
	case native.MsgSetElevationRequired:
		p.elevation[in.A] = in.B != 0
	case native.MsgSetProgressRange:
		p.progressMin, p.progressMax = in.A, in.B
	case native.MsgSetProgressPos:
		p.progressPos = in.A
		p.marquee = false
	case native.MsgSetProgressState:
		p.progressState = native.ProgressState(in.A)
	case native.MsgSetMarquee:
		p.marquee = in.A != 0
		p.marqueeSpeed = in.B
	case native.MsgUpdateElementText:
		p.texts[in.Elem] = in.Text
	case native.MsgUpdateIcon:
		p.icon = in.Icon
	case native.MsgClickButton:
		return appliedClickButton
	case native.MsgClickRadioButton:
		return appliedClickRadio
	case native.MsgClickVerification:
		return appliedClickVerification
	case native.MsgNavigate:
		return appliedNavigate
	}
	return appliedState
}

// text returns the element text, preferring dynamic overrides.
func (p *page) text(elem native.Element) string {
	if text, ok := p.texts[elem]; ok {
		return text
	}
	switch elem {
	case native.ElementMainInstruction:
		return p.cfg.Instruction
	case native.ElementContent:
		return p.cfg.Content
	case native.ElementExpandedInfo:
		return p.cfg.ExpandedInfo
	case native.ElementFooter:
		return p.cfg.Footer
	}
	return ""
}

// buttons lists every clickable button in display order.
func (p *page) buttons() []buttonEntry {
	entries := make([]buttonEntry, 0, len(p.cfg.Buttons)+6)
	for _, def := range p.cfg.Buttons {
		entries = append(entries, buttonEntry{id: def.ID, label: def.Text})
	}
	for _, id := range p.cfg.CommonButtons.IDs() {
		entries = append(entries, buttonEntry{id: id, label: native.CommonButtonLabel(id), common: true})
	}
	return entries
}

func (p *page) buttonIsEnabled(id int) bool {
	enabled, ok := p.buttonEnabled[id]
	return !ok || enabled
}

func (p *page) radioIsEnabled(id int) bool {
	enabled, ok := p.radioEnabled[id]
	return !ok || enabled
}
