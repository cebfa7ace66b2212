package ui

// Card geometry. Outer sizes include the one-cell border on each side.
const (
	cardWidth        = 32 // content plus horizontal padding
	cardCompactWidth = 24
	cardGap          = 1

	cardLines = 4 // name, email, city, picture
)

// Frame layout.
const (
	headerHeight = 2 // title bar plus a blank spacer line
	footerHeight = 1

	helpWidth       = 44
	modalWidth      = 58
	modalLabelWidth = 10
)

func (m Model) cardOuterWidth() int {
	if m.compact {
		return cardCompactWidth + 2
	}
	return cardWidth + 2
}

func (m Model) cardOuterHeight() int {
	return cardLines + 2
}

// columns returns how many cards fit across the terminal.
func (m Model) columns() int {
	cell := m.cardOuterWidth() + cardGap
	cols := (m.width + cardGap) / cell
	if cols < 1 {
		return 1
	}
	return cols
}

// visibleRows returns how many card rows fit between header and footer.
func (m Model) visibleRows() int {
	rows := (m.height - headerHeight - footerHeight) / m.cardOuterHeight()
	if rows < 1 {
		return 1
	}
	return rows
}
