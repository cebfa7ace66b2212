// Package directory holds the in-memory model behind the user gallery.
//
// # Overview
//
// A Directory owns three pieces of state:
//
//   - the result set: fetched records in arrival order
//   - the cards: one per record, each with a Visible flag set by Filter
//   - the selection index: which record the detail modal shows, if any
//
// The UI renders purely from this model. Filtering toggles visibility and
// never rebuilds cards; the selection survives filtering.
//
// # Bounds
//
// Open validates its index and returns ErrOutOfRange without touching state
// when no record exists there. The CanPrev/CanNext flags on Detail come from
// the same check, so a disabled action and a refused Next/Prev can never
// disagree:
//
//	d := directory.New(records)
//	detail, _ := d.Open(0)   // detail.CanPrev == false
//	_, err := d.Prev()       // errors.Is(err, directory.ErrOutOfRange)
//
// # Filtering
//
// Filter lower-cases the query and each card's displayed name ("First Last")
// and keeps cards whose name contains the query. The empty query keeps every
// card. Each call rescans all cards.
package directory
