// Package state provides thread-safe storage for the outcome of the user fetch.
//
// # Overview
//
// The fetch runs in a Bubble Tea command goroutine (or synchronously for the
// list/export commands) and writes its result here; the UI and CLI read
// snapshots. The Store is the only value shared across goroutines.
//
//	Fetch command:                 Readers:
//	┌────────────────┐            ┌──────────────────┐
//	│ store.Begin()  │            │                  │
//	│ FetchUsers()   │            │                  │
//	│      ↓         │  (mutex)   │                  │
//	│ store.Update() │───────────→│ store.Snapshot() │
//	└────────────────┘            └──────────────────┘
//
// # Update Semantics
//
//	// Success: replace the users wholesale
//	store.Update(users, nil)
//	→ snapshot.Users = users
//	→ snapshot.Loaded = true
//	→ snapshot.LastError = nil
//
//	// Failure: keep previous users, record the error
//	store.Update(nil, err)
//	→ snapshot.Users = <unchanged>
//	→ snapshot.LastError = err
//
// Both Update and Snapshot copy the users slice so readers never share backing
// arrays with the writer.
//
// # Testing Considerations
//
// The zero Store is ready to use; Snapshot on a fresh Store returns an empty,
// not-loaded, not-pending Snapshot.
package state
