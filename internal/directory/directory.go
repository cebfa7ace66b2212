package directory

import (
	"errors"
	"strings"
)

var (
	// ErrOutOfRange is returned when an index does not refer to a loaded record.
	ErrOutOfRange = errors.New("index out of range")
	// ErrNoSelection is returned by navigation while the modal is closed.
	ErrNoSelection = errors.New("no record selected")
)

// Card is the gallery projection of one record plus its visibility.
type Card struct {
	Index   int
	Record  Record
	Visible bool
}

// Name returns the name the card displays and the filter matches against.
func (c Card) Name() string {
	return c.Record.FullName()
}

// Detail is the modal projection of the selected record.
type Detail struct {
	Index    int
	Picture  string
	Name     string
	Email    string
	City     string
	Phone    string
	Address  string
	Birthday string
	CanPrev  bool
	CanNext  bool
}

// Directory owns the result set, card visibility and the selection index.
// The zero value is an empty directory with the modal closed.
//
// Directory is not safe for concurrent use; the UI mutates it only from its
// update loop.
type Directory struct {
	cards    []Card
	query    string
	selected int
	open     bool
}

// New builds a directory holding records in display order.
func New(records []Record) *Directory {
	d := &Directory{}
	d.Load(records)
	return d
}

// Load replaces the result set wholesale. All cards start visible, the
// current query is cleared and the modal is closed.
func (d *Directory) Load(records []Record) {
	cards := make([]Card, len(records))
	for i, r := range records {
		cards[i] = Card{Index: i, Record: r, Visible: true}
	}
	d.cards = cards
	d.query = ""
	d.Close()
}

// Len reports the number of loaded records.
func (d *Directory) Len() int {
	return len(d.cards)
}

// Loaded reports whether any records are present.
func (d *Directory) Loaded() bool {
	return len(d.cards) > 0
}

// Record returns the record at index.
func (d *Directory) Record(index int) (Record, bool) {
	if !d.inRange(index) {
		return Record{}, false
	}
	return d.cards[index].Record, true
}

// Cards returns a copy of every card in display order.
func (d *Directory) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// VisibleCards returns the cards the current filter leaves shown.
func (d *Directory) VisibleCards() []Card {
	out := make([]Card, 0, len(d.cards))
	for _, c := range d.cards {
		if c.Visible {
			out = append(out, c)
		}
	}
	return out
}

// VisibleCount returns the number of shown cards.
func (d *Directory) VisibleCount() int {
	n := 0
	for _, c := range d.cards {
		if c.Visible {
			n++
		}
	}
	return n
}

// Query returns the last applied filter query.
func (d *Directory) Query() string {
	return d.query
}

// Filter shows every card whose displayed name contains query,
// case-insensitively, and hides the rest. An empty query shows all cards.
// It returns the number of visible cards.
func (d *Directory) Filter(query string) int {
	d.query = query
	needle := strings.ToLower(query)
	visible := 0
	for i := range d.cards {
		name := strings.ToLower(d.cards[i].Name())
		d.cards[i].Visible = strings.Contains(name, needle)
		if d.cards[i].Visible {
			visible++
		}
	}
	return visible
}

// Open selects the record at index and returns its detail view. An index
// outside the result set leaves the directory unchanged and returns
// ErrOutOfRange.
func (d *Directory) Open(index int) (Detail, error) {
	if !d.inRange(index) {
		return Detail{}, ErrOutOfRange
	}
	d.selected = index
	d.open = true
	return d.detail(index), nil
}

// Close hides the modal and clears the selection. Closing twice is a no-op.
func (d *Directory) Close() {
	d.open = false
	d.selected = 0
}

// IsOpen reports whether the modal is showing a record.
func (d *Directory) IsOpen() bool {
	return d.open
}

// Selection returns the selected index while the modal is open.
func (d *Directory) Selection() (int, bool) {
	if !d.open {
		return 0, false
	}
	return d.selected, true
}

// Current returns the detail view of the selected record.
func (d *Directory) Current() (Detail, bool) {
	if !d.open || !d.inRange(d.selected) {
		return Detail{}, false
	}
	return d.detail(d.selected), true
}

// Next opens the record after the selection.
func (d *Directory) Next() (Detail, error) {
	if !d.open {
		return Detail{}, ErrNoSelection
	}
	return d.Open(d.selected + 1)
}

// Prev opens the record before the selection.
func (d *Directory) Prev() (Detail, error) {
	if !d.open {
		return Detail{}, ErrNoSelection
	}
	return d.Open(d.selected - 1)
}

func (d *Directory) detail(index int) Detail {
	r := d.cards[index].Record
	return Detail{
		Index:    index,
		Picture:  r.Picture,
		Name:     r.FullName(),
		Email:    r.Email,
		City:     r.City,
		Phone:    r.Phone,
		Address:  r.Address(),
		Birthday: r.Birthday(),
		CanPrev:  d.inRange(index - 1),
		CanNext:  d.inRange(index + 1),
	}
}

func (d *Directory) inRange(index int) bool {
	return index >= 0 && index < len(d.cards)
}
