package dialog

import "github.com/atomicstack/taskdialog-control/internal/native"

// BarColor selects the emulated colored title-bar accent. The native
// subsystem has no bar concept; the five non-default colors exist only
// as a side effect of the fixed shield icon identifiers, and the default
// color corresponds to no special icon at all.
type BarColor int

const (
	// BarNone disables the emulation entirely.
	BarNone BarColor = iota
	BarDefault
	BarBlue
	BarYellow
	BarRed
	BarGreen
	BarGray
)

// String names the bar color for trace output.
func (c BarColor) String() string {
	switch c {
	case BarNone:
		return "none"
	case BarDefault:
		return "default"
	case BarBlue:
		return "blue"
	case BarYellow:
		return "yellow"
	case BarRed:
		return "red"
	case BarGreen:
		return "green"
	case BarGray:
		return "gray"
	}
	return "unknown"
}

var barShieldIcons = map[BarColor]int{
	BarDefault: native.IconNone,
	BarBlue:    native.IconShieldBlue,
	BarYellow:  native.IconShieldYellow,
	BarRed:     native.IconShieldRed,
	BarGreen:   native.IconShieldGreen,
	BarGray:    native.IconShieldGray,
}

// ShieldIcon maps a bar color onto the icon identifier that renders it.
// The mapping is total over the six colors and invertible.
func ShieldIcon(c BarColor) (int, bool) {
	id, ok := barShieldIcons[c]
	return id, ok
}

// BarColorForIcon is the inverse of ShieldIcon.
func BarColorForIcon(id int) (BarColor, bool) {
	for color, icon := range barShieldIcons {
		if icon == id {
			return color, true
		}
	}
	return BarNone, false
}

func shieldIconRef(c BarColor) native.IconRef {
	id, ok := barShieldIcons[c]
	if !ok {
		return native.IconRef{}
	}
	return native.IconRef{ID: id}
}
