package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amanlall/QuickTranscipt/internal/note"
	"github.com/amanlall/QuickTranscipt/internal/ui"
)

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var sections []string

	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderStatusBar())
	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))
	sections = append(sections, m.renderMainContent())
	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))

	if m.errorMessage != "" {
		sections = append(sections, m.renderErrorBar())
	}

	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	title := ui.TitleStyle.Render("QUICKTRANSCRIPT")
	lang := note.Languages[m.localeIndex]
	locale := ui.DimStyle.Render(fmt.Sprintf(" — %s %s", lang.Flag, lang.Name))
	return title + locale
}

func (m Model) renderStatusBar() string {
	var dot string
	if m.recording {
		dot = ui.RecordingDotStyle.Render("● REC")
	} else {
		dot = ui.IdleDotStyle.Render("○ IDLE")
	}

	var listening string
	if m.listening {
		listening = "  " + ui.ListeningStyle.Render("Listening...")
	}

	var conf string
	if c := m.recorder.Transcript().Confidence(); c > 0 {
		conf = "  " + ui.DimStyle.Render(fmt.Sprintf("Confidence: %d%%", int(c*100)))
	}

	var saving string
	if m.saving {
		saving = "  " + ui.SavingBadgeStyle.Render("• Saving...")
	}

	status := "  " + ui.StatusStyle.Render(m.statusText)

	return dot + listening + conf + saving + status
}

func (m Model) livePanelWidth() int {
	return max(30, m.width/2)
}

func (m Model) historyPanelWidth() int {
	return max(20, m.width-m.livePanelWidth()-1)
}

func (m Model) contentHeight() int {
	if m.height == 0 {
		return 20
	}
	// Reserve: header(1) + status(1) + dividers(2) + error(1) + footer(1)
	return max(5, m.height-6)
}

func (m Model) renderMainContent() string {
	liveW := m.livePanelWidth()
	histW := m.historyPanelWidth()
	contentH := m.contentHeight()

	livePanel := m.renderLivePanel(liveW, contentH)
	historyPanel := m.renderHistoryPanel(histW, contentH)

	divider := ui.DividerStyle.Render("│")

	liveLines := strings.Split(livePanel, "\n")
	histLines := strings.Split(historyPanel, "\n")

	var rows []string
	for i := 0; i < contentH; i++ {
		var left, right string
		if i < len(liveLines) {
			left = liveLines[i]
		}
		if i < len(histLines) {
			right = histLines[i]
		}
		rows = append(rows, padRight(left, liveW)+divider+right)
	}

	return strings.Join(rows, "\n")
}

func (m Model) renderLivePanel(width, height int) string {
	var header string
	segCount := len(m.recorder.Segments())
	label := fmt.Sprintf("LIVE TRANSCRIPT — %d saved", segCount)
	if m.focusedPanel == FocusLive {
		header = ui.PanelTitleActiveStyle.Render(label)
	} else {
		header = ui.PanelTitleStyle.Render(label)
	}

	var lines []string
	lines = append(lines, header)

	if !m.connected {
		if m.reconnecting {
			lines = append(lines, "")
			lines = append(lines, ui.ErrorTextStyle.Render("  Capture helper disconnected. Reconnecting..."))
		} else {
			lines = append(lines, ui.DimStyle.Render("  Connecting to capture helper..."))
		}
	} else {
		final := m.recorder.Transcript().Final()
		interim := m.recorder.Transcript().Interim()

		if final == "" && interim == "" && segCount == 0 {
			lines = append(lines, "")
			lines = append(lines, ui.DimStyle.Render("  Press Space to start recording"))
		}

		textWidth := max(10, width-4)
		for _, l := range wrapText(final, textWidth) {
			if l != "" {
				lines = append(lines, "  "+l)
			}
		}
		for _, l := range wrapText(interim, textWidth) {
			if l != "" {
				lines = append(lines, "  "+ui.InterimStyle.Render(l+"▌"))
			}
		}

		if segCount > 0 {
			lines = append(lines, "")
			lines = append(lines, ui.SavedBadgeStyle.Render("  AUTO-SAVED SEGMENTS"))
			for i, seg := range m.recorder.Segments() {
				ts := ui.TimestampStyle.Render(seg.Time().Format("[15:04:05]"))
				dur := ""
				if seg.Duration != nil {
					dur = ui.DimStyle.Render(fmt.Sprintf(" %.0fs", *seg.Duration))
				}
				lines = append(lines, fmt.Sprintf("  %s%s %s", ts, dur, ui.DimStyle.Render(fmt.Sprintf("Segment %d", i+1))))
				for _, l := range wrapText(seg.Content, textWidth-2) {
					lines = append(lines, "    "+l)
				}
			}
		}
	}

	return frame(lines, width, height)
}

func (m Model) renderHistoryPanel(width, height int) string {
	var header string
	count := m.store.Len()
	label := fmt.Sprintf("HISTORY (%d)", count)
	if m.focusedPanel == FocusHistory {
		header = ui.PanelTitleActiveStyle.Render(label)
	} else {
		header = ui.PanelTitleStyle.Render(label)
	}

	var lines []string
	lines = append(lines, header)

	// Search and filter line
	search := m.searchTerm
	if m.searching {
		search += "▌"
	}
	filter := "all"
	if m.filterIndex > 0 {
		filter = note.Languages[m.filterIndex-1].Code
	}
	lines = append(lines, ui.SearchPromptStyle.Render(" / ")+search+
		ui.DimStyle.Render("  ["+filter+"]"))

	notes := m.filteredNotes()
	if len(notes) == 0 {
		lines = append(lines, "")
		if m.searchTerm != "" || m.filterIndex > 0 {
			lines = append(lines, ui.DimStyle.Render("  No notes match your search"))
		} else {
			lines = append(lines, ui.DimStyle.Render("  Record and combine to create your first note"))
		}
	}

	textWidth := max(10, width-4)
	for i, n := range notes {
		selected := i == m.selectedNote && m.focusedPanel == FocusHistory

		title := n.DisplayTitle()
		if selected && m.renaming {
			title = m.renameText + "▌"
		}

		marker := "  "
		style := ui.DimStyle
		if selected {
			marker = "> "
			style = ui.SelectedStyle
		}
		meta := fmt.Sprintf("%s %s", note.LanguageFlag(n.Language), n.Time().Format("1/2 15:04"))
		lines = append(lines, truncateToWidth(marker+style.Render(title)+" "+ui.TimestampStyle.Render(meta), width))

		if selected {
			if n.AIEnhanced != "" {
				lines = append(lines, ui.EnhanceStyle.Render("    ✦ enhanced"))
			}
			detail := fmt.Sprintf("    %s", n.LanguageName)
			if n.Duration != nil {
				detail += fmt.Sprintf(" • %.0fs", *n.Duration)
			}
			if n.Confidence != nil && *n.Confidence > 0 {
				detail += fmt.Sprintf(" • %d%%", int(*n.Confidence*100))
			}
			lines = append(lines, ui.DimStyle.Render(detail))
			for _, l := range wrapText(n.Content, textWidth-2) {
				lines = append(lines, "    "+l)
			}
			lines = append(lines, m.renderPendingEnhancement(n.ID, textWidth)...)
		}
	}

	return frame(lines, width, height)
}

// renderPendingEnhancement shows the enhancement state for a note: a
// spinner while in flight, the proposed text with accept/discard hints
// once ready.
func (m Model) renderPendingEnhancement(id string, textWidth int) []string {
	var lines []string
	if m.pending.InProgress(id) {
		lines = append(lines, ui.EnhanceStyle.Render("    ⟳ Enhancing..."))
		return lines
	}
	text, ok := m.pending.Text(id)
	if !ok {
		return lines
	}
	lines = append(lines, ui.EnhanceStyle.Render("    AI ENHANCED:"))
	for _, l := range wrapText(text, textWidth-2) {
		lines = append(lines, "    "+ui.EnhanceStyle.Render(l))
	}
	lines = append(lines, ui.DimStyle.Render("    a accept • x discard"))
	return lines
}

func (m Model) renderErrorBar() string {
	return ui.ErrorStyle.Render("Error: ") + ui.ErrorTextStyle.Render(m.errorMessage)
}

func (m Model) renderFooter() string {
	var parts []string

	if m.connected {
		if m.recording {
			parts = append(parts, ui.FooterKeyStyle.Render("Space")+ui.FooterDescStyle.Render(" Stop"))
		} else {
			parts = append(parts, ui.FooterKeyStyle.Render("Space")+ui.FooterDescStyle.Render(" Record"))
		}
	}
	parts = append(parts, ui.FooterKeyStyle.Render("c")+ui.FooterDescStyle.Render(" Combine"))
	parts = append(parts, ui.FooterKeyStyle.Render("s")+ui.FooterDescStyle.Render(" Save"))
	parts = append(parts, ui.FooterKeyStyle.Render("l")+ui.FooterDescStyle.Render(" Locale"))
	parts = append(parts, ui.FooterKeyStyle.Render("/")+ui.FooterDescStyle.Render(" Search"))
	parts = append(parts, ui.FooterKeyStyle.Render("f")+ui.FooterDescStyle.Render(" Filter"))
	parts = append(parts, ui.FooterKeyStyle.Render("r")+ui.FooterDescStyle.Render(" Rename"))
	parts = append(parts, ui.FooterKeyStyle.Render("d")+ui.FooterDescStyle.Render(" Delete"))
	parts = append(parts, ui.FooterKeyStyle.Render("e")+ui.FooterDescStyle.Render(" Enhance"))
	parts = append(parts, ui.FooterKeyStyle.Render("q")+ui.FooterDescStyle.Render(" Quit"))

	return strings.Join(parts, "  ")
}

// Helpers

func frame(lines []string, width, height int) string {
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, l := range lines {
		lines[i] = padRight(l, width)
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	// Visible length, ignoring ANSI codes.
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

func truncateToWidth(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible <= width {
		return s
	}
	runes := []rune(s)
	if len(runes) > width-1 {
		return string(runes[:width-1]) + "…"
	}
	return s
}

func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		var current string
		for _, word := range strings.Fields(paragraph) {
			if current == "" {
				current = word
			} else if len(current)+1+len(word) <= width {
				current += " " + word
			} else {
				lines = append(lines, current)
				current = word
			}
		}
		if current != "" {
			lines = append(lines, current)
		} else {
			lines = append(lines, "")
		}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
