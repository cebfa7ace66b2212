// Package ui provides the terminal gallery for crew, built on Bubble Tea.
//
// # Surfaces
//
//   - Header: title, person count or filter summary, API host and theme
//   - Gallery: a grid of cards, one per visible record, in result set order
//   - Modal: the detail overlay for the selected record with prev/next
//   - Footer: key hints, the filter input while searching, or a flash message
//   - Help: a centered overlay listing every binding
//
// # Files
//
//   - ui.go: Model, Options, Update/View routing, messages and commands
//   - gallery.go: card grid, cursor movement, mouse hit testing
//   - modal.go: detail overlay and its navigation
//   - search.go: submit-only name filter input
//   - theme.go, keys.go, help.go, layout.go: presentation
//
// # State
//
// The Model never keeps its own copy of records or selection. A
// *directory.Directory owns the result set, card visibility and the selection
// index; the Model only tracks the gallery cursor and scroll offset.
//
// Selecting a card, by enter or by a left click, returns a command that
// yields selectCardMsg{index}. Update handles that message by calling
// Directory.Open, so every path into the modal goes through the same bounds
// check.
//
// The Prev and Next bindings are enabled from Detail.CanPrev/CanNext each
// time the modal shows a record. Disabled bindings neither match keys nor
// appear in the footer hints.
//
// # Loading
//
// Init starts one fetch through Options.Load. Until it reports back the body
// shows a spinner and every gallery key is a no-op. A failed fetch leaves the
// gallery empty and shows the error; the details go to the log file.
package ui
