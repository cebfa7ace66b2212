// Package app is the composition root for crew.
//
// # Overview
//
// It connects configuration, the randomuser client, the shared state.Store and
// either the TUI (Run) or a one-shot fetch for the list and export commands
// (LoadDirectory).
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> randomuser.NewClient()  HTTP client for the user API
//	       ├─────> state.Store{}           Shared fetch outcome
//	       ├─────> prefs.Load()            Theme and card density
//	       └─────> ui.Run()                TUI (blocks); calls Loader.Load
//
// # Loading
//
// There is no background polling. The Loader performs exactly one fetch per
// call, marks the store pending while it runs and records either the users
// or the error. A failed fetch leaves any earlier users untouched and is not
// retried.
//
// # Error Handling
//
// Fatal (returned): an endpoint the client cannot parse, or a TUI failure.
// Recoverable (logged): unreadable prefs, failed fetches inside the TUI.
package app
