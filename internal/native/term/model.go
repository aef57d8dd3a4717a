package term

import (
	"time"

	"github.com/atomicstack/taskdialog-control/internal/native"
	"github.com/atomicstack/taskdialog-control/internal/theme"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// timerInterval matches the native callback-timer cadence.
const timerInterval = 200 * time.Millisecond

type createdMsg struct{}

type tickMsg time.Time

var styles = theme.Default()

// model renders one dialog page and feeds user actions back through the
// session callback. Notifications fire synchronously from Update, so a
// handler that sends interactions reentrantly mutates this same model
// before Update returns, exactly like the native message loop.
type model struct {
	page   *page
	cb     native.Callback
	handle native.Handle

	result      native.Result
	finished    bool
	pendingQuit bool

	focus       int
	radioCursor int

	filtering   bool
	filterInput textinput.Model

	elapsed int

	width  int
	height int
}

func newModel(cfg *native.Config, cb native.Callback) *model {
	m := &model{page: newPage(cfg), cb: cb}
	ti := textinput.New()
	ti.Placeholder = "filter buttons"
	ti.CharLimit = 64
	ti.Prompt = "/"
	ti.PromptStyle = *styles.FilterPrompt
	ti.TextStyle = *styles.Filter
	m.filterInput = ti
	m.result.Radio = m.page.radio
	m.result.VerificationChecked = m.page.verification
	m.syncRadioCursor()
	return m
}

// Init is part of the tea.Model interface.
func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{func() tea.Msg { return createdMsg{} }}
	if m.page.cfg.Flags&native.FlagCallbackTimer != 0 {
		cmds = append(cmds, tick())
	}
	return tea.Batch(cmds...)
}

func tick() tea.Cmd {
	return tea.Tick(timerInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update responds to Bubble Tea messages.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	switch msg := msg.(type) {
	case createdMsg:
		m.handle = 1
		m.cb(m.handle, native.NoteCreated, 0, "")
	case tickMsg:
		if !m.finished && m.page.cfg.Flags&native.FlagCallbackTimer != 0 {
			m.elapsed += int(timerInterval / time.Millisecond)
			if m.cb(m.handle, native.NoteTimer, m.elapsed, "") != native.HandledSuppress {
				m.elapsed = 0
			}
			cmds = append(cmds, tick())
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if !m.finished {
			if cmd := m.handleKey(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if m.pendingQuit {
		m.pendingQuit = false
		cmds = append(cmds, tea.Quit)
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.filtering {
		return m.handleFilterKey(msg)
	}
	switch msg.String() {
	case "ctrl+c", "esc":
		m.cancel()
	case "tab", "right", "l":
		m.moveFocus(1)
	case "shift+tab", "left", "h":
		m.moveFocus(-1)
	case "up", "k":
		m.moveRadio(-1)
	case "down", "j":
		m.moveRadio(1)
	case "enter", " ":
		buttons := m.visibleButtons()
		if m.focus >= 0 && m.focus < len(buttons) {
			m.clickButton(buttons[m.focus].id)
		}
	case "v":
		if m.page.cfg.VerificationText != "" {
			m.setVerification(!m.page.verification)
		}
	case "e":
		if m.page.cfg.ExpandedInfo != "" {
			m.toggleExpando()
		}
	case "f1":
		m.cb(m.handle, native.NoteHelp, 0, "")
	case "/":
		if m.page.cfg.Flags&native.FlagCommandLinks != 0 && len(m.page.cfg.Buttons) > 1 {
			m.filtering = true
			m.filterInput.SetValue("")
			return m.filterInput.Focus()
		}
	}
	return nil
}

func (m *model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.resetFilter()
		return nil
	case "ctrl+u":
		m.filterInput.SetValue("")
		m.focus = 0
		return nil
	case "enter":
		query := m.filterInput.Value()
		defs := filterButtons(m.page.cfg.Buttons, query)
		if idx := bestButtonMatch(defs, query); idx >= 0 {
			m.resetFilter()
			m.clickButton(defs[idx].ID)
		}
		return nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.focus = 0
	return cmd
}

func (m *model) resetFilter() {
	m.filtering = false
	m.filterInput.SetValue("")
	m.filterInput.Blur()
	m.focus = 0
}

// visibleButtons applies the active filter to the custom buttons and
// keeps the common buttons reachable behind them.
func (m *model) visibleButtons() []buttonEntry {
	if !m.filtering || m.filterInput.Value() == "" {
		return m.page.buttons()
	}
	defs := filterButtons(m.page.cfg.Buttons, m.filterInput.Value())
	entries := make([]buttonEntry, 0, len(defs)+6)
	for _, def := range defs {
		entries = append(entries, buttonEntry{id: def.ID, label: def.Text})
	}
	for _, id := range m.page.cfg.CommonButtons.IDs() {
		entries = append(entries, buttonEntry{id: id, label: native.CommonButtonLabel(id), common: true})
	}
	return entries
}

func (m *model) moveFocus(delta int) {
	buttons := m.visibleButtons()
	if len(buttons) == 0 {
		return
	}
	m.focus = (m.focus + delta + len(buttons)) % len(buttons)
}

func (m *model) moveRadio(delta int) {
	radios := m.page.cfg.Radios
	if len(radios) == 0 {
		return
	}
	cursor := m.radioCursor
	for range radios {
		cursor = (cursor + delta + len(radios)) % len(radios)
		if m.page.radioIsEnabled(radios[cursor].ID) {
			m.radioCursor = cursor
			m.clickRadio(radios[cursor].ID)
			return
		}
	}
}

func (m *model) syncRadioCursor() {
	for i, def := range m.page.cfg.Radios {
		if def.ID == m.page.radio {
			m.radioCursor = i
			return
		}
	}
	m.radioCursor = 0
}

func (m *model) cancel() {
	cfg := m.page.cfg
	if cfg.Flags&native.FlagAllowCancel != 0 || cfg.CommonButtons&native.ButtonCancel != 0 {
		m.clickButton(native.IDCancel)
		return
	}
	// No cancel affordance declared; the native dialog would ignore the
	// escape key here.
}

func (m *model) clickButton(id int) {
	if m.finished || !m.page.buttonIsEnabled(id) {
		return
	}
	if m.cb(m.handle, native.NoteButtonClicked, id, "") == native.HandledSuppress {
		return
	}
	m.result.Button = id
	m.destroy()
}

func (m *model) clickRadio(id int) {
	if m.finished || !m.page.radioIsEnabled(id) {
		return
	}
	m.page.radio = id
	m.result.Radio = id
	m.syncRadioCursor()
	m.cb(m.handle, native.NoteRadioClicked, id, "")
}

func (m *model) setVerification(checked bool) {
	if m.finished {
		return
	}
	m.page.verification = checked
	m.result.VerificationChecked = checked
	m.cb(m.handle, native.NoteVerificationClicked, boolArg(checked), "")
}

func (m *model) toggleExpando() {
	m.page.expanded = !m.page.expanded
	m.cb(m.handle, native.NoteExpandoClicked, boolArg(m.page.expanded), "")
}

// navigate tears the page down and rebuilds it from cfg, then reports
// the rebuild so the session can replay its preserved state.
func (m *model) navigate(cfg *native.Config) {
	if m.finished || cfg == nil {
		return
	}
	m.page = newPage(cfg)
	m.result.Radio = m.page.radio
	m.result.VerificationChecked = m.page.verification
	m.resetFilter()
	m.syncRadioCursor()
	m.cb(m.handle, native.NoteNavigated, 0, "")
}

// apply delivers one programmatic interaction to the live page.
func (m *model) apply(in native.Interaction) {
	switch m.page.apply(in) {
	case appliedClickButton:
		m.clickButton(in.A)
	case appliedClickRadio:
		m.clickRadio(in.A)
	case appliedClickVerification:
		m.setVerification(in.A != 0)
	case appliedNavigate:
		m.navigate(in.Config)
	}
}

func (m *model) destroy() {
	if m.finished {
		return
	}
	m.finished = true
	m.cb(m.handle, native.NoteDestroyed, 0, "")
	m.pendingQuit = true
}

func boolArg(v bool) int {
	if v {
		return 1
	}
	return 0
}
