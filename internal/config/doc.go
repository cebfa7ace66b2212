// Package config loads crew's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/crew/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// LoadWithOverrides applies command-line values on top of the file before
// validation, so flags always win.
//
// # Default Values
//
//   - endpoint: https://randomuser.me/api/
//   - results: 12
//   - nationality: gb
//   - seed: none (every launch fetches a fresh set)
//   - log_level: info
//   - log_file: ~/.local/state/crew/crew.log
//
// # TOML Format
//
//	endpoint = "https://randomuser.me/api/"
//	results = 12
//	nationality = "gb"
//	seed = "crew"
//	log_level = "info"
//	log_file = "~/.local/state/crew/crew.log"
//
// # Validation
//
// Every loaded Config passes through Validate, which applies the struct's
// validate tags with go-playground/validator. Failures come back as a
// *ValidationError naming each rejected TOML key.
package config
