//go:build windows

package comctl

import (
	"encoding/binary"
	"unsafe"

	"github.com/atomicstack/taskdialog-control/internal/native"
)

const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// configSize is the byte-packed TASKDIALOGCONFIG size: the header packs
// its members with single-byte alignment, so the struct cannot be
// expressed as a plain Go struct.
const configSize = 4 + // cbSize
	ptrSize + // hwndParent
	ptrSize + // hInstance
	4 + // dwFlags
	4 + // dwCommonButtons
	ptrSize + // pszWindowTitle
	ptrSize + // main icon union
	ptrSize + // pszMainInstruction
	ptrSize + // pszContent
	4 + // cButtons
	ptrSize + // pButtons
	4 + // nDefaultButton
	4 + // cRadioButtons
	ptrSize + // pRadioButtons
	4 + // nDefaultRadioButton
	ptrSize + // pszVerificationText
	ptrSize + // pszExpandedInformation
	ptrSize + // pszExpandedControlText
	ptrSize + // pszCollapsedControlText
	ptrSize + // footer icon union
	ptrSize + // pszFooter
	ptrSize + // pfCallback
	ptrSize + // lpCallbackData
	4 // cxWidth

const buttonDefSize = 4 + ptrSize

type packer struct {
	buf []byte
	off int
}

func (p *packer) u32(v uint32) {
	binary.LittleEndian.PutUint32(p.buf[p.off:], v)
	p.off += 4
}

func (p *packer) i32(v int32) {
	p.u32(uint32(v))
}

func (p *packer) ptr(v uintptr) {
	if ptrSize == 8 {
		binary.LittleEndian.PutUint64(p.buf[p.off:], uint64(v))
	} else {
		binary.LittleEndian.PutUint32(p.buf[p.off:], uint32(v))
	}
	p.off += ptrSize
}

func textPtr(units []uint16) uintptr {
	if len(units) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&units[0]))
}

// packConfig lays out the byte-packed native config in a single buffer:
// the header first, then the button and radio definition arrays, with
// the header's array pointers aimed back into the same buffer. String
// pointers reference the marshaled UTF-16 buffers, which the caller must
// keep alive across the native call.
func packConfig(cfg *native.Config, m *native.Marshaled, callback, refData uintptr) []byte {
	buttonsOff := configSize
	radiosOff := buttonsOff + buttonDefSize*len(cfg.Buttons)
	buf := make([]byte, radiosOff+buttonDefSize*len(cfg.Radios))

	p := &packer{buf: buf}
	p.u32(uint32(configSize))
	p.ptr(0) // hwndParent
	p.ptr(0) // hInstance
	p.u32(uint32(cfg.Flags))
	p.u32(uint32(cfg.CommonButtons))
	p.ptr(textPtr(m.Title))
	p.ptr(iconArg(cfg.MainIcon))
	p.ptr(textPtr(m.Instruction))
	p.ptr(textPtr(m.Content))
	p.u32(uint32(len(cfg.Buttons)))
	if len(cfg.Buttons) > 0 {
		p.ptr(uintptr(unsafe.Pointer(&buf[buttonsOff])))
	} else {
		p.ptr(0)
	}
	p.i32(int32(cfg.DefaultButton))
	p.u32(uint32(len(cfg.Radios)))
	if len(cfg.Radios) > 0 {
		p.ptr(uintptr(unsafe.Pointer(&buf[radiosOff])))
	} else {
		p.ptr(0)
	}
	p.i32(int32(cfg.DefaultRadio))
	p.ptr(textPtr(m.VerificationText))
	p.ptr(textPtr(m.ExpandedInfo))
	p.ptr(textPtr(m.ExpandedControlText))
	p.ptr(textPtr(m.CollapsedControlText))
	p.ptr(iconArg(cfg.FooterIcon))
	p.ptr(textPtr(m.Footer))
	p.ptr(callback)
	p.ptr(refData)
	p.u32(uint32(cfg.Width))

	packDefs(buf[buttonsOff:], cfg.Buttons, m.ButtonTexts)
	packDefs(buf[radiosOff:], cfg.Radios, m.RadioTexts)
	return buf
}

func packDefs(dst []byte, defs []native.ButtonDef, texts [][]uint16) {
	p := &packer{buf: dst}
	for i, def := range defs {
		p.i32(int32(def.ID))
		p.ptr(textPtr(texts[i]))
	}
}
