package native

import "unicode/utf16"

// Marshaled holds the UTF-16 buffers for one native call. Every buffer
// belongs to the embedded arena; Release must run on every exit path of
// the call that produced it, including failed opens.
type Marshaled struct {
	arena Arena

	Title                []uint16
	Instruction          []uint16
	Content              []uint16
	VerificationText     []uint16
	ExpandedInfo         []uint16
	ExpandedControlText  []uint16
	CollapsedControlText []uint16
	Footer               []uint16

	// ButtonTexts and RadioTexts are NUL-terminated slices into the
	// contiguous text blocks below, one entry per definition, in caller
	// order.
	ButtonTexts []([]uint16)
	RadioTexts  []([]uint16)

	buttonBlock []uint16
	radioBlock  []uint16
}

// MarshalConfig builds the temporary buffers for cfg. The caller owns
// the result and must call Release when the native call returns.
func MarshalConfig(cfg *Config) *Marshaled {
	m := &Marshaled{}
	m.Title = m.arena.UTF16(cfg.Title)
	m.Instruction = m.arena.UTF16(cfg.Instruction)
	m.Content = m.arena.UTF16(cfg.Content)
	m.VerificationText = m.arena.UTF16(cfg.VerificationText)
	m.ExpandedInfo = m.arena.UTF16(cfg.ExpandedInfo)
	m.ExpandedControlText = m.arena.UTF16(cfg.ExpandedControlText)
	m.CollapsedControlText = m.arena.UTF16(cfg.CollapsedControlText)
	m.Footer = m.arena.UTF16(cfg.Footer)
	m.buttonBlock, m.ButtonTexts = m.marshalDefs(cfg.Buttons)
	m.radioBlock, m.RadioTexts = m.marshalDefs(cfg.Radios)
	return m
}

// marshalDefs packs every definition text into one contiguous block and
// returns per-entry windows into it.
func (m *Marshaled) marshalDefs(defs []ButtonDef) ([]uint16, [][]uint16) {
	if len(defs) == 0 {
		return nil, nil
	}
	encoded := make([][]uint16, len(defs))
	total := 0
	for i, def := range defs {
		encoded[i] = utf16.Encode([]rune(def.Text))
		total += len(encoded[i]) + 1
	}
	block := m.arena.Block(total)
	texts := make([][]uint16, len(defs))
	off := 0
	for i, units := range encoded {
		end := off + len(units) + 1
		copy(block[off:end-1], units)
		block[end-1] = 0
		texts[i] = block[off:end]
		off = end
	}
	return block, texts
}

// Live reports the number of temporary buffers still owned.
func (m *Marshaled) Live() int {
	return m.arena.Live()
}

// Release frees every temporary buffer built for the call.
func (m *Marshaled) Release() {
	m.arena.Release()
	m.Title = nil
	m.Instruction = nil
	m.Content = nil
	m.VerificationText = nil
	m.ExpandedInfo = nil
	m.ExpandedControlText = nil
	m.CollapsedControlText = nil
	m.Footer = nil
	m.ButtonTexts = nil
	m.RadioTexts = nil
	m.buttonBlock = nil
	m.radioBlock = nil
}
