//go:build windows

package tray

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	mfString   = 0x0000
	mfGrayed   = 0x0001
	mfDisabled = 0x0002

	tpmReturnCmd = 0x0100
	tpmNoNotify  = 0x0080
)

var (
	trayUser32           = windows.NewLazySystemDLL("user32.dll")
	procCreatePopupMenu  = trayUser32.NewProc("CreatePopupMenu")
	procDestroyMenu      = trayUser32.NewProc("DestroyMenu")
	procAppendMenuW      = trayUser32.NewProc("AppendMenuW")
	procTrackPopupMenuEx = trayUser32.NewProc("TrackPopupMenuEx")
	procGetCursorPos     = trayUser32.NewProc("GetCursorPos")
	procSetForeground    = trayUser32.NewProc("SetForegroundWindow")
)

type point struct {
	x int32
	y int32
}

// Show displays the menu at the cursor and blocks until the user picks
// an entry or dismisses the popup. It returns the zero-based index of
// the selection, or -1 when dismissed. Item ids on the wire are offset
// by one because the tracking call reserves zero for dismissal.
func Show(parent uintptr, menu *Menu) (int, error) {
	if menu == nil || len(menu.Items) == 0 {
		return -1, fmt.Errorf("show popup menu: empty menu")
	}

	h, _, err := procCreatePopupMenu.Call()
	if h == 0 {
		return -1, fmt.Errorf("create popup menu: %w", err)
	}
	defer procDestroyMenu.Call(h)

	for i, item := range menu.Items {
		flags := uintptr(mfString)
		if item.Disabled {
			flags |= mfGrayed | mfDisabled
		}
		text, err := windows.UTF16PtrFromString(item.Text)
		if err != nil {
			return -1, fmt.Errorf("encode menu item %d: %w", i, err)
		}
		ok, _, callErr := procAppendMenuW.Call(h, flags, uintptr(i+1), uintptr(unsafe.Pointer(text)))
		if ok == 0 {
			return -1, fmt.Errorf("append menu item %d: %w", i, callErr)
		}
	}

	var pt point
	procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	// Without foreground status the popup would not dismiss on an
	// outside click.
	procSetForeground.Call(parent)

	selected, _, _ := procTrackPopupMenuEx.Call(
		h,
		tpmReturnCmd|tpmNoNotify,
		uintptr(pt.x),
		uintptr(pt.y),
		parent,
		0,
	)
	if selected == 0 {
		return -1, nil
	}
	return int(selected) - 1, nil
}
