package term

import (
	"fmt"
	"strings"

	"github.com/atomicstack/taskdialog-control/internal/native"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const defaultDialogWidth = 64

// barAccent maps the construction-time shield icon onto the title-bar
// accent color, the same trick the native control uses.
func barAccent(iconID int) (lipgloss.Color, bool) {
	switch iconID {
	case native.IconShieldBlue:
		return lipgloss.Color("27"), true
	case native.IconShieldYellow:
		return lipgloss.Color("220"), true
	case native.IconShieldRed:
		return lipgloss.Color("160"), true
	case native.IconShieldGreen:
		return lipgloss.Color("34"), true
	case native.IconShieldGray:
		return lipgloss.Color("245"), true
	}
	return "", false
}

func iconGlyph(ref native.IconRef) string {
	if ref.Handle != 0 {
		return "◆"
	}
	switch ref.ID {
	case native.IconWarning:
		return "⚠"
	case native.IconError:
		return "✖"
	case native.IconInformation:
		return "ℹ"
	case native.IconShield, native.IconShieldBlue, native.IconShieldYellow,
		native.IconShieldRed, native.IconShieldGreen, native.IconShieldGray:
		return "🛡"
	}
	return ""
}

// View renders the current page.
func (m *model) View() string {
	p := m.page
	width := m.dialogWidth()
	lines := make([]string, 0, 16)

	lines = append(lines, m.renderTitleBar(width))

	if instruction := p.text(native.ElementMainInstruction); instruction != "" {
		glyph := iconGlyph(p.icon)
		if glyph != "" {
			instruction = glyph + " " + instruction
		}
		lines = append(lines, styles.Instruction.Render(clip(instruction, width)))
	}
	if content := p.text(native.ElementContent); content != "" {
		for _, row := range strings.Split(content, "\n") {
			lines = append(lines, styles.Content.Render(clip(row, width)))
		}
	}

	if p.showProgress {
		lines = append(lines, m.renderProgress(width))
	}

	lines = append(lines, m.renderRadios(width)...)
	lines = append(lines, "")
	lines = append(lines, m.renderButtons(width))

	if p.cfg.VerificationText != "" {
		mark := " "
		if p.verification {
			mark = "x"
		}
		lines = append(lines, styles.Verification.Render(clip(fmt.Sprintf("[%s] %s", mark, p.cfg.VerificationText), width)))
	}

	lines = append(lines, m.renderExpander(width)...)

	if footer := p.text(native.ElementFooter); footer != "" {
		glyph := iconGlyph(p.cfg.FooterIcon)
		if glyph != "" {
			footer = glyph + " " + footer
		}
		lines = append(lines, styles.Footer.Render(clip(footer, width)))
	}

	if m.filtering {
		lines = append(lines, clipANSI(m.filterInput.View(), width))
	}

	return strings.Join(lines, "\n") + "\n"
}

func (m *model) dialogWidth() int {
	width := m.page.cfg.Width
	if width <= 0 {
		width = defaultDialogWidth
	}
	if m.width > 0 && width > m.width {
		width = m.width
	}
	return width
}

func (m *model) renderTitleBar(width int) string {
	title := clip(m.page.cfg.Title, width-2)
	pad := width - lipgloss.Width(title)
	if pad < 0 {
		pad = 0
	}
	row := " " + title + strings.Repeat(" ", pad-1)
	style := *styles.TitleBar
	if accent, ok := barAccent(m.page.barIcon); ok {
		style = style.Background(accent)
	}
	return style.Render(row)
}

func (m *model) renderProgress(width int) string {
	p := m.page
	barWidth := width - 8
	if barWidth < 10 {
		barWidth = 10
	}
	if p.marquee {
		cell := strings.Repeat("░", barWidth)
		return styles.ProgressFill.Render("["+cell+"]") + " ~"
	}
	span := p.progressMax - p.progressMin
	if span <= 0 {
		span = 1
	}
	pos := p.progressPos - p.progressMin
	if pos < 0 {
		pos = 0
	}
	if pos > span {
		pos = span
	}
	filled := barWidth * pos / span
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	style := styles.ProgressFill
	switch p.progressState {
	case native.ProgressError:
		style = styles.ProgressError
	case native.ProgressPaused:
		style = styles.ProgressPause
	}
	return style.Render("["+bar+"]") + fmt.Sprintf(" %d%%", 100*pos/span)
}

func (m *model) renderRadios(width int) []string {
	radios := m.page.cfg.Radios
	if len(radios) == 0 {
		return nil
	}
	rows := make([]string, 0, len(radios))
	for i, def := range radios {
		mark := "( )"
		if def.ID == m.page.radio {
			mark = "(•)"
		}
		row := clip(fmt.Sprintf("%s %s", mark, def.Text), width)
		style := styles.Radio
		if !m.page.radioIsEnabled(def.ID) {
			style = styles.DisabledRadio
		} else if i == m.radioCursor {
			style = styles.FocusedRadio
		}
		rows = append(rows, style.Render(row))
	}
	return rows
}

func (m *model) renderButtons(width int) string {
	parts := make([]string, 0, 8)
	for i, entry := range m.visibleButtons() {
		label := entry.label
		if m.page.elevation[entry.id] {
			label = styles.Elevation.Render("🛡") + label
		}
		cell := "[ " + label + " ]"
		style := styles.Button
		if !m.page.buttonIsEnabled(entry.id) {
			style = styles.DisabledButton
		} else if i == m.focus {
			style = styles.FocusedButton
		}
		parts = append(parts, style.Render(cell))
	}
	return clipANSI(strings.Join(parts, " "), width)
}

func (m *model) renderExpander(width int) []string {
	p := m.page
	if p.cfg.ExpandedInfo == "" {
		return nil
	}
	label := p.cfg.CollapsedControlText
	marker := "▸"
	if p.expanded {
		label = p.cfg.ExpandedControlText
		marker = "▾"
	}
	if label == "" {
		label = "Details"
	}
	rows := []string{styles.Expander.Render(clip(marker+" "+label, width))}
	if p.expanded {
		for _, row := range strings.Split(p.text(native.ElementExpandedInfo), "\n") {
			rows = append(rows, styles.Content.Render(clip("  "+row, width)))
		}
	}
	return rows
}

// clip truncates plain text to the given visible width.
func clip(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width-1), "…")
}

// clipANSI truncates styled text, keeping escape sequences intact.
func clipANSI(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width-1), "…")
}
