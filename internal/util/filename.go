package util

import (
	"regexp"
	"strings"
)

const maxFilenameLen = 120

var unsafeRun = regexp.MustCompile(`[^a-z0-9_.-]+`)

// SafeFilename normalizes a user-supplied filename into a safe storage token:
// trimmed, lowercased, every run of characters outside [a-z0-9_.-] collapsed
// to a single underscore, capped at 120 characters. Total and idempotent.
func SafeFilename(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = unsafeRun.ReplaceAllString(name, "_")
	if len(name) > maxFilenameLen {
		name = name[:maxFilenameLen]
	}
	return name
}
