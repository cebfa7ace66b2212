package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/crew/internal/directory"
)

// handleGalleryKey moves the cursor over visible cards and opens the focused one.
func (m Model) handleGalleryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.dir.VisibleCards()
	count := len(visible)
	if count == 0 {
		return m, nil
	}
	cols := m.columns()

	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, count)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, count)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-cols, count)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(cols, count)
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = count - 1
	case key.Matches(msg, m.keys.Open):
		return m, selectCardCmd(visible[m.cursor].Index)
	}

	m.ensureCursorVisible()
	return m, nil
}

// handleMouse selects the card under a left click and scrolls on the wheel.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || m.searching || m.dir.IsOpen() {
		return m, nil
	}
	visible := m.dir.VisibleCards()
	if len(visible) == 0 {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(-m.columns(), len(visible))
		m.ensureCursorVisible()
		return m, nil
	case tea.MouseButtonWheelDown:
		m.moveCursor(m.columns(), len(visible))
		m.ensureCursorVisible()
		return m, nil
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
	default:
		return m, nil
	}

	pos, ok := m.cardAt(msg.X, msg.Y)
	if !ok || pos >= len(visible) {
		return m, nil
	}
	m.cursor = pos
	return m, selectCardCmd(visible[pos].Index)
}

// cardAt maps a terminal cell to a position among visible cards.
func (m Model) cardAt(x, y int) (int, bool) {
	if y < headerHeight || y >= m.height-footerHeight || x < 0 {
		return 0, false
	}
	cellW := m.cardOuterWidth() + cardGap
	col := x / cellW
	if col >= m.columns() || x%cellW >= m.cardOuterWidth() {
		return 0, false
	}
	row := (y-headerHeight)/m.cardOuterHeight() + m.scroll
	return row*m.columns() + col, true
}

func (m *Model) moveCursor(delta, count int) {
	next := m.cursor + delta
	if next < 0 || next >= count {
		return
	}
	m.cursor = next
}

// ensureCursorVisible clamps the cursor and scrolls so its row is on screen.
func (m *Model) ensureCursorVisible() {
	count := m.dir.VisibleCount()
	if m.cursor >= count {
		m.cursor = count - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	cols := m.columns()
	row := m.cursor / cols
	rows := m.visibleRows()
	if row < m.scroll {
		m.scroll = row
	}
	if row >= m.scroll+rows {
		m.scroll = row - rows + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// renderMain renders header, gallery body and footer.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	body := m.renderBody()
	bodyHeight := m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	b.WriteString(lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bar := styles.Header.Width(m.width)

	left := styles.Logo.Render("crew")
	var status string
	switch {
	case m.loading:
		status = "fetching…"
	case m.loadErr != nil:
		status = "fetch failed"
	case m.dir.Query() != "":
		status = fmt.Sprintf("%d of %s match %q", m.dir.VisibleCount(), plural(m.dir.Len(), "person", "people"), m.dir.Query())
	default:
		status = plural(m.dir.Len(), "person", "people")
	}
	right := hostOf(m.source)
	if m.theme.Name != "" {
		right = strings.TrimSpace(right + "  " + m.theme.Name)
	}

	line := left + "  " + status
	gap := m.width - 2 - lipgloss.Width(line) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return bar.Render(line + strings.Repeat(" ", gap) + right)
}

// renderBody renders the gallery grid or the relevant empty state.
func (m Model) renderBody() string {
	styles := m.theme.Styles()
	switch {
	case m.loading:
		return m.spinner.View() + " " + styles.MutedText.Render("Fetching people from "+fallback(hostOf(m.source), "the API")+"…")
	case m.loadErr != nil:
		return styles.DangerText.Render("Could not load people") + "\n" +
			styles.MutedText.Render(m.loadErr.Error()) + "\n\n" +
			styles.FaintText.Render("Details were written to the log file.")
	case m.fetched && m.dir.Len() == 0:
		return styles.MutedText.Render("The API returned no people.")
	case m.dir.Len() > 0 && m.dir.VisibleCount() == 0:
		return styles.MutedText.Render(fmt.Sprintf("No names match %q. Press esc to clear the filter.", m.dir.Query()))
	}
	return m.renderGallery()
}

func (m Model) renderGallery() string {
	visible := m.dir.VisibleCards()
	cols := m.columns()
	rows := m.visibleRows()

	var lines []string
	for row := m.scroll; row < m.scroll+rows; row++ {
		start := row * cols
		if start >= len(visible) {
			break
		}
		end := start + cols
		if end > len(visible) {
			end = len(visible)
		}
		cells := make([]string, 0, 2*(end-start))
		for pos := start; pos < end; pos++ {
			if pos > start {
				cells = append(cells, strings.Repeat(" ", cardGap))
			}
			cells = append(cells, m.renderCard(visible[pos], pos == m.cursor))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderCard draws one person: name, e-mail, location and picture. Compact
// cards are narrower and drop the avatar badge.
func (m Model) renderCard(card directory.Card, focused bool) string {
	styles := m.theme.Styles()
	style := styles.Card
	if focused {
		style = styles.CardFocused
	}

	r := card.Record
	width := cardWidth
	if m.compact {
		width = cardCompactWidth
	}
	inner := width - 2
	style = style.Width(width)

	heading := styles.Text.Bold(true).Render(truncate(fallback(r.FullName(), "Unnamed"), inner))
	if !m.compact {
		avatar := styles.AvatarStyle(r.Email + r.FullName()).Render(fallback(r.Initials(), "?"))
		nameWidth := inner - lipgloss.Width(avatar) - 1
		heading = avatar + " " + styles.Text.Bold(true).Render(truncate(fallback(r.FullName(), "Unnamed"), nameWidth))
	}

	lines := []string{
		heading,
		styles.AccentText.Render(truncate(r.Email, inner)),
		styles.MutedText.Render(truncate(r.CityState(), inner)),
		styles.FaintText.Render(truncate(pictureLabel(r.Picture), inner)),
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if m.searching {
		return styles.Footer.Render(m.search.View() + "  " + m.help.ShortHelpView(m.keys.SearchHelp()))
	}
	if m.flash != "" {
		style := styles.SuccessText
		if m.flashError {
			style = styles.DangerText
		}
		return styles.Footer.Render(style.Render(m.flash))
	}
	return styles.Footer.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}
