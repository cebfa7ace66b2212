package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/crew/internal/directory"
)

// handleModalKey handles input while the detail modal is open. Prev and Next
// bindings are disabled at the result set boundaries, so their keys fall
// through unmatched.
func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.dir.Close()
		m.flash = ""
		m.syncCursorTo(m.detail.Index)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		return m.step((*directory.Directory).Prev)

	case key.Matches(msg, m.keys.Next):
		return m.step((*directory.Directory).Next)

	case key.Matches(msg, m.keys.Copy):
		email := strings.TrimSpace(m.detail.Email)
		if email == "" {
			m.setFlash("No e-mail to copy", true)
			return m, nil
		}
		return m, copyCmd(m.copyText, email)

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) step(move func(*directory.Directory) (directory.Detail, error)) (tea.Model, tea.Cmd) {
	detail, err := move(m.dir)
	if err != nil {
		if !errors.Is(err, directory.ErrOutOfRange) {
			m.log.Error(err, "modal navigation failed")
		}
		return m, nil
	}
	m.flash = ""
	m.setDetail(detail)
	return m, nil
}

// syncCursorTo moves the gallery cursor onto the card for a record, if shown.
func (m *Model) syncCursorTo(index int) {
	for pos, c := range m.dir.VisibleCards() {
		if c.Index == index {
			m.cursor = pos
			m.ensureCursorVisible()
			return
		}
	}
}

// renderModal renders the detail overlay for the selected record.
func (m Model) renderModal() string {
	styles := m.theme.Styles()
	d := m.detail
	record, _ := m.dir.Record(d.Index)

	var b strings.Builder

	avatar := styles.AvatarStyle(record.Email + record.FullName()).Render(fallback(record.Initials(), "?"))
	b.WriteString(avatar + " " + styles.Text.Bold(true).Render(fallback(d.Name, "Unnamed")))
	b.WriteString("  " + styles.FaintText.Render(fmt.Sprintf("%d / %d", d.Index+1, m.dir.Len())))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", modalWidth-6)))
	b.WriteString("\n\n")

	valueWidth := modalWidth - 6 - modalLabelWidth
	fields := []struct{ label, value string }{
		{"Picture", d.Picture},
		{"E-mail", d.Email},
		{"City", d.City},
		{"Phone", d.Phone},
		{"Address", d.Address},
		{"Birthday", d.Birthday},
	}
	for _, f := range fields {
		b.WriteString(styles.Label.Render(f.label))
		b.WriteString(styles.Text.Render(truncate(fallback(f.value, "—"), valueWidth)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderModalButtons())

	if m.flash != "" {
		style := styles.SuccessText
		if m.flashError {
			style = styles.DangerText
		}
		b.WriteString("\n\n")
		b.WriteString(style.Render(m.flash))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ModalHelp()))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		styles.Modal.Width(modalWidth).Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// renderModalButtons draws prev/next, muted when the action is unavailable.
func (m Model) renderModalButtons() string {
	styles := m.theme.Styles()
	prev := styles.ButtonDisabled.Render("◀ Prev")
	if m.detail.CanPrev {
		prev = styles.Button.Render("◀ Prev")
	}
	next := styles.ButtonDisabled.Render("Next ▶")
	if m.detail.CanNext {
		next = styles.Button.Render("Next ▶")
	}
	return prev + "  " + next
}
