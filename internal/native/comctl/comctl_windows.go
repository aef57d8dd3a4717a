//go:build windows

// Package comctl implements the native backend on the comctl32 task
// dialog control. The modern control only exists when the process is
// manifested for common controls v6; Available surfaces that as a
// typed condition instead of failing the open call generically.
package comctl

import (
	"fmt"
	"runtime"
	"syscall"
	"unsafe"

	"github.com/atomicstack/taskdialog-control/internal/native"
	"golang.org/x/sys/windows"
)

const wmUser = 0x0400

// Task dialog messages.
const (
	tdmNavigatePage               = wmUser + 101
	tdmClickButton                = wmUser + 102
	tdmSetMarqueeProgressBar      = wmUser + 103
	tdmSetProgressBarState        = wmUser + 104
	tdmSetProgressBarRange        = wmUser + 105
	tdmSetProgressBarPos          = wmUser + 106
	tdmSetProgressBarMarquee      = wmUser + 107
	tdmSetElementText             = wmUser + 108
	tdmClickRadioButton           = wmUser + 110
	tdmEnableButton               = wmUser + 111
	tdmEnableRadioButton          = wmUser + 112
	tdmClickVerification          = wmUser + 113
	tdmUpdateElementText          = wmUser + 114
	tdmSetButtonElevationRequired = wmUser + 115
	tdmUpdateIcon                 = wmUser + 116
)

// Task dialog notifications.
const (
	tdnCreated             = 0
	tdnNavigated           = 1
	tdnButtonClicked       = 2
	tdnHyperlinkClicked    = 3
	tdnTimer               = 4
	tdnDestroyed           = 5
	tdnRadioButtonClicked  = 6
	tdnDialogConstructed   = 7
	tdnVerificationClicked = 8
	tdnHelp                = 9
	tdnExpandoClicked      = 10
)

const tdieIconMain = 0

var (
	comctl32               = windows.NewLazySystemDLL("comctl32.dll")
	user32                 = windows.NewLazySystemDLL("user32.dll")
	procTaskDialogIndirect = comctl32.NewProc("TaskDialogIndirect")
	procSendMessageW       = user32.NewProc("SendMessageW")
)

// callbackContext is the per-session state handed to the native layer
// through the config's callback-data field. Each open call owns its own
// context; there is no process-wide registry.
type callbackContext struct {
	cb native.Callback
}

var taskDialogCallback = syscall.NewCallback(func(hwnd, msg, wParam, lParam, refData uintptr) uintptr {
	ctx := (*callbackContext)(unsafe.Pointer(refData))
	if ctx == nil || ctx.cb == nil {
		return 0
	}
	code, arg, ref, ok := translateNotification(msg, wParam, lParam)
	if !ok {
		return 0
	}
	return uintptr(ctx.cb(native.Handle(hwnd), code, arg, ref))
})

func translateNotification(msg, wParam, lParam uintptr) (native.Notification, int, string, bool) {
	switch msg {
	case tdnCreated:
		return native.NoteCreated, 0, "", true
	case tdnNavigated:
		return native.NoteNavigated, 0, "", true
	case tdnButtonClicked:
		return native.NoteButtonClicked, int(int32(wParam)), "", true
	case tdnRadioButtonClicked:
		return native.NoteRadioClicked, int(int32(wParam)), "", true
	case tdnHyperlinkClicked:
		return native.NoteHyperlinkClicked, 0, utf16PtrToString(lParam), true
	case tdnVerificationClicked:
		return native.NoteVerificationClicked, int(wParam), "", true
	case tdnExpandoClicked:
		return native.NoteExpandoClicked, int(wParam), "", true
	case tdnTimer:
		return native.NoteTimer, int(wParam), "", true
	case tdnHelp:
		return native.NoteHelp, 0, "", true
	case tdnDestroyed:
		return native.NoteDestroyed, 0, "", true
	}
	// tdnDialogConstructed and anything newer stay internal to the
	// control.
	return 0, 0, "", false
}

func utf16PtrToString(p uintptr) string {
	if p == 0 {
		return ""
	}
	return windows.UTF16PtrToString((*uint16)(unsafe.Pointer(p)))
}

// Backend drives the comctl32 task dialog control.
type Backend struct {
	ctx *callbackContext
}

// New returns the comctl backend.
func New() *Backend {
	return &Backend{}
}

// Available reports whether TaskDialogIndirect can be resolved. The
// export only appears with common controls v6.
func (b *Backend) Available() error {
	if err := procTaskDialogIndirect.Find(); err != nil {
		return fmt.Errorf("%w: %v", native.ErrUnavailable, err)
	}
	return nil
}

// Open marshals the config, shows the dialog, and blocks until it is
// destroyed. Every temporary buffer is released on every exit path,
// including a failed native call.
func (b *Backend) Open(cfg *native.Config, cb native.Callback) (native.Result, error) {
	if err := b.Available(); err != nil {
		return native.Result{}, err
	}

	ctx := &callbackContext{cb: cb}
	b.ctx = ctx
	defer func() { b.ctx = nil }()
	m := native.MarshalConfig(cfg)
	defer m.Release()
	packed := packConfig(cfg, m, taskDialogCallback, uintptr(unsafe.Pointer(ctx)))

	var button, radio, verification int32
	hr, _, _ := procTaskDialogIndirect.Call(
		uintptr(unsafe.Pointer(&packed[0])),
		uintptr(unsafe.Pointer(&button)),
		uintptr(unsafe.Pointer(&radio)),
		uintptr(unsafe.Pointer(&verification)),
	)
	runtime.KeepAlive(packed)
	runtime.KeepAlive(m)
	runtime.KeepAlive(ctx)
	if int32(hr) < 0 {
		return native.Result{}, fmt.Errorf("TaskDialogIndirect failed: HRESULT 0x%08x", uint32(hr))
	}
	return native.Result{
		Button:              int(button),
		Radio:               int(radio),
		VerificationChecked: verification != 0,
	}, nil
}

// Send translates one interaction into the matching task dialog message.
// Message delivery is thread-affine and best-effort; a stale handle
// makes the native call a no-op on its own.
func (b *Backend) Send(h native.Handle, in native.Interaction) {
	if h == 0 {
		return
	}
	hwnd := uintptr(h)
	switch in.Msg {
	case native.MsgNavigate:
		m := native.MarshalConfig(in.Config)
		defer m.Release()
		packed := packConfig(in.Config, m, taskDialogCallback, b.currentRefData())
		// The control copies the config while handling the message, so
		// the buffers only need to live across this call.
		sendMessage(hwnd, tdmNavigatePage, 0, uintptr(unsafe.Pointer(&packed[0])))
		runtime.KeepAlive(packed)
		runtime.KeepAlive(m)
	case native.MsgClickButton:
		sendMessage(hwnd, tdmClickButton, uintptr(in.A), 0)
	case native.MsgClickRadioButton:
		sendMessage(hwnd, tdmClickRadioButton, uintptr(in.A), 0)
	case native.MsgClickVerification:
		sendMessage(hwnd, tdmClickVerification, uintptr(in.A), 0)
	case native.MsgEnableButton:
		sendMessage(hwnd, tdmEnableButton, uintptr(in.A), uintptr(in.B))
	case native.MsgEnableRadioButton:
		sendMessage(hwnd, tdmEnableRadioButton, uintptr(in.A), uintptr(in.B))
	case native.MsgSetElevationRequired:
		sendMessage(hwnd, tdmSetButtonElevationRequired, uintptr(in.A), uintptr(in.B))
	case native.MsgSetProgressRange:
		sendMessage(hwnd, tdmSetProgressBarRange, 0, makeLParam(in.A, in.B))
	case native.MsgSetProgressPos:
		sendMessage(hwnd, tdmSetProgressBarPos, uintptr(in.A), 0)
	case native.MsgSetProgressState:
		sendMessage(hwnd, tdmSetProgressBarState, uintptr(in.A), 0)
	case native.MsgSetMarquee:
		sendMessage(hwnd, tdmSetMarqueeProgressBar, uintptr(in.A), 0)
		sendMessage(hwnd, tdmSetProgressBarMarquee, uintptr(in.A), uintptr(in.B))
	case native.MsgUpdateElementText:
		text, err := windows.UTF16PtrFromString(in.Text)
		if err != nil {
			return
		}
		sendMessage(hwnd, tdmUpdateElementText, uintptr(in.Elem), uintptr(unsafe.Pointer(text)))
		runtime.KeepAlive(text)
	case native.MsgUpdateIcon:
		sendMessage(hwnd, tdmUpdateIcon, tdieIconMain, iconArg(in.Icon))
	}
}

// currentRefData returns the callback-data pointer for navigate
// configs. The control switches to the navigated config's callback and
// data, so the rebuilt page must carry the same session context the open
// call registered.
func (b *Backend) currentRefData() uintptr {
	if b.ctx == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(b.ctx))
}

func sendMessage(hwnd uintptr, msg uint32, wParam, lParam uintptr) {
	procSendMessageW.Call(hwnd, uintptr(msg), wParam, lParam)
}

func makeLParam(lo, hi int) uintptr {
	return uintptr(uint32(uint16(lo)) | uint32(uint16(hi))<<16)
}

// iconArg encodes an icon reference for the wire: an explicit handle as
// itself, a predefined identifier as a 16-bit resource ordinal.
func iconArg(ref native.IconRef) uintptr {
	if ref.Handle != 0 {
		return ref.Handle
	}
	return uintptr(uint16(int16(ref.ID)))
}
