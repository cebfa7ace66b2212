// Package logtail reads back the tail of crew's log file.
//
// The gallery writes zerolog JSON lines to a file because the terminal is
// occupied by the alternate screen. Tail extracts the last N lines in one
// pass with a ring buffer (O(N) memory regardless of file size), Parse decodes
// a line into an Entry, and Format turns an Entry back into a readable line:
//
//	entries, err := logtail.Read(cfg.LogFile, 200, zerolog.WarnLevel)
//	for _, e := range entries {
//		fmt.Println(logtail.Format(e))
//	}
//
// A missing log file is not an error; it simply has no entries.
package logtail
