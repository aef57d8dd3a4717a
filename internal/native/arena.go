package native

import "unicode/utf16"

// Arena owns every temporary buffer marshaled for one native call. All
// buffers are released together so no exit path can leak part of a
// configuration.
type Arena struct {
	bufs [][]uint16
}

// UTF16 appends a NUL-terminated UTF-16 copy of s to the arena and
// returns it. Empty strings produce no buffer and return nil, matching
// the wire convention of a null string pointer.
func (a *Arena) UTF16(s string) []uint16 {
	if s == "" {
		return nil
	}
	buf := append(utf16.Encode([]rune(s)), 0)
	a.bufs = append(a.bufs, buf)
	return buf
}

// Block reserves one contiguous buffer of n UTF-16 units owned by the
// arena. Used for the packed button-text block so a whole button array
// rides on a single allocation.
func (a *Arena) Block(n int) []uint16 {
	if n <= 0 {
		return nil
	}
	buf := make([]uint16, n)
	a.bufs = append(a.bufs, buf)
	return buf
}

// Live reports how many temporary buffers the arena currently owns.
func (a *Arena) Live() int {
	return len(a.bufs)
}

// Release drops every owned buffer. Safe to call more than once.
func (a *Arena) Release() {
	for i := range a.bufs {
		a.bufs[i] = nil
	}
	a.bufs = nil
}
