package dialog

// Handlers receives the typed notifications of one session. Nil fields
// are skipped. Handlers run synchronously on the thread that called Open
// and may call the session's interaction methods reentrantly; updating a
// progress bar from OnTimer is the expected pattern.
type Handlers struct {
	OnCreated             func()
	OnNavigated           func()
	OnButtonClicked       func(*ButtonClick)
	OnRadioClicked        func(id int)
	OnVerificationClicked func(checked bool)
	OnExpandoClicked      func(expanded bool)
	OnHyperlinkClicked    func(target string)
	OnTimer               func(*TimerTick)
	OnHelp                func()
	OnDestroyed           func()
}

// ButtonClick describes one button activation.
type ButtonClick struct {
	ID       int
	suppress bool
}

// SuppressClose keeps the dialog open after this click. The refusal is
// signaled to the native layer as a distinct handled-code, not an error.
func (c *ButtonClick) SuppressClose() {
	c.suppress = true
}

// TimerTick reports one callback-timer tick. Elapsed is the milliseconds
// accumulated since the counter was last reset.
type TimerTick struct {
	Elapsed  int
	suppress bool
}

// KeepTickCount prevents the native tick counter from resetting after
// this tick.
func (t *TimerTick) KeepTickCount() {
	t.suppress = true
}
