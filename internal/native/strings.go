package native

// String names the message for trace output.
func (m Message) String() string {
	switch m {
	case MsgNavigate:
		return "navigate"
	case MsgClickButton:
		return "click-button"
	case MsgClickRadioButton:
		return "click-radio-button"
	case MsgClickVerification:
		return "click-verification"
	case MsgEnableButton:
		return "enable-button"
	case MsgEnableRadioButton:
		return "enable-radio-button"
	case MsgSetElevationRequired:
		return "set-elevation-required"
	case MsgSetProgressRange:
		return "set-progress-range"
	case MsgSetProgressPos:
		return "set-progress-pos"
	case MsgSetProgressState:
		return "set-progress-state"
	case MsgSetMarquee:
		return "set-marquee"
	case MsgUpdateElementText:
		return "update-element-text"
	case MsgUpdateIcon:
		return "update-icon"
	}
	return "unknown"
}
