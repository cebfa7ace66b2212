package ui

import (
	"net/url"
	"strconv"
	"strings"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 1 {
		return string(runes[:limit])
	}
	return string(runes[:limit-1]) + "…"
}

// pictureLabel condenses a portrait URL to host and file, e.g.
// "randomuser.me/…/women/12.jpg".
func pictureLabel(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "no picture"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) <= 2 {
		return u.Host + "/" + strings.Join(parts, "/")
	}
	return u.Host + "/…/" + strings.Join(parts[len(parts)-2:], "/")
}

// fallback returns value, or alt when value is blank.
func fallback(value, alt string) string {
	if strings.TrimSpace(value) == "" {
		return alt
	}
	return value
}

// plural formats a count with a singular or plural noun.
func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}

// hostOf returns the host part of an endpoint URL.
func hostOf(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return u.Host
}
