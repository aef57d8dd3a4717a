package state

import (
	"sort"

	"github.com/atomicstack/taskdialog-control/internal/native"
)

// Sender delivers one replay interaction to the live window. Sends are
// fire-and-forget: if the window closed mid-replay the remaining sends
// become silent no-ops.
type Sender func(native.Interaction)

// replayElements fixes the order dynamic-text overrides are re-applied
// in.
var replayElements = []native.Element{
	native.ElementMainInstruction,
	native.ElementContent,
	native.ElementExpandedInfo,
	native.ElementFooter,
}

// Replay re-applies every recorded entry to a freshly rebuilt page. The
// order is fixed so no later step can be undone by an earlier one:
// progress bar first, then button enablement, radio enablement,
// elevation markers, text overrides, and last the caller's real icon
// when the colored-bar emulation holds one. The icon goes last so the
// bar color established by the navigate config is settled before the
// swap.
func (s *Store) Replay(send Sender) int {
	steps := 0

	if p := s.progress; p != nil {
		if p.Marquee {
			send(native.Interaction{Msg: native.MsgSetMarquee, A: 1, B: p.MarqueeSpeed})
			steps++
		} else {
			send(native.Interaction{Msg: native.MsgSetProgressRange, A: p.Min, B: p.Max})
			send(native.Interaction{Msg: native.MsgSetProgressState, A: int(p.State)})
			send(native.Interaction{Msg: native.MsgSetProgressPos, A: p.Pos})
			steps += 3
		}
	}

	for _, id := range sortedKeys(s.buttonEnabled) {
		send(native.Interaction{Msg: native.MsgEnableButton, A: id, B: boolArg(s.buttonEnabled[id])})
		steps++
	}
	for _, id := range sortedKeys(s.radioEnabled) {
		send(native.Interaction{Msg: native.MsgEnableRadioButton, A: id, B: boolArg(s.radioEnabled[id])})
		steps++
	}
	for _, id := range sortedKeys(s.elevation) {
		send(native.Interaction{Msg: native.MsgSetElevationRequired, A: id, B: boolArg(s.elevation[id])})
		steps++
	}

	for _, elem := range replayElements {
		if text, ok := s.texts[elem]; ok {
			send(native.Interaction{Msg: native.MsgUpdateElementText, Elem: elem, Text: text})
			steps++
		}
	}

	if s.realIconSet {
		send(native.Interaction{Msg: native.MsgUpdateIcon, Icon: s.realIcon})
		steps++
	}

	return steps
}

func sortedKeys(m map[int]bool) []int {
	if len(m) == 0 {
		return nil
	}
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func boolArg(v bool) int {
	if v {
		return 1
	}
	return 0
}
