package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Entry is one decoded line of the crew log.
type Entry struct {
	Time    time.Time
	Level   zerolog.Level
	Message string
	Error   string
	Fields  map[string]any
	Raw     string // the original line when it is not JSON
}

// Tail returns the last maxLines lines of the file at path, oldest first.
// A missing file yields no lines and no error.
func Tail(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	seen := 0
	for scanner.Scan() {
		ring[seen%maxLines] = scanner.Text()
		seen++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if seen <= maxLines {
		return ring[:seen], nil
	}
	start := seen % maxLines
	return append(ring[start:], ring[:start]...), nil
}

// Parse decodes a zerolog JSON line. Lines that are not JSON come back with
// only Raw set and NoLevel.
func Parse(line string) Entry {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{Level: zerolog.NoLevel, Raw: line}
	}

	entry := Entry{Level: zerolog.NoLevel, Fields: map[string]any{}}
	for k, v := range raw {
		s, _ := v.(string)
		switch k {
		case zerolog.TimestampFieldName:
			entry.Time, _ = time.Parse(time.RFC3339, s)
		case zerolog.LevelFieldName:
			if lvl, err := zerolog.ParseLevel(s); err == nil {
				entry.Level = lvl
			}
		case zerolog.MessageFieldName:
			entry.Message = s
		case zerolog.ErrorFieldName:
			entry.Error = s
		default:
			entry.Fields[k] = v
		}
	}
	return entry
}

// Read tails path and returns the decoded entries at or above minLevel.
// Non-JSON lines are kept regardless of level.
func Read(path string, maxLines int, minLevel zerolog.Level) ([]Entry, error) {
	lines, err := Tail(path, maxLines)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		e := Parse(line)
		if e.Raw == "" && e.Level < minLevel {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Format renders an entry as a single plain line:
//
//	2026-10-17 14:32:15 INFO  users loaded component=loader count=12
func Format(e Entry) string {
	if e.Raw != "" {
		return e.Raw
	}

	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(e.Time.Local().Format("2006-01-02 15:04:05"))
		b.WriteString(" ")
	}
	level := strings.ToUpper(e.Level.String())
	if e.Level == zerolog.NoLevel {
		level = "-"
	}
	fmt.Fprintf(&b, "%-5s %s", level, e.Message)

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Fields[k])
	}
	if e.Error != "" {
		fmt.Fprintf(&b, " error=%q", e.Error)
	}
	return b.String()
}
