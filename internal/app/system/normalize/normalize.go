// internal/app/system/normalize/normalize.go
package normalize

import (
	"strings"

	"github.com/dalemusser/waffle/pantry/text"
)

// Email lowercases and trims an email address. Empty or all-whitespace
// input normalizes to "".
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace from a display name, preserving case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Room trims surrounding whitespace from a room number, preserving case.
func Room(s string) string {
	return strings.TrimSpace(s)
}

// FullNameKey produces a comparison key for a person's full name:
// case-folded with interior runs of whitespace collapsed to single spaces.
// Directory matching uses this so "Ada  LOVELACE" and "ada lovelace" agree.
func FullNameKey(s string) string {
	return text.Fold(strings.Join(strings.Fields(s), " "))
}

// RoomKey produces a comparison key for room numbers: case-folded and
// trimmed, so "12-a" matches "12-A".
func RoomKey(s string) string {
	return text.Fold(strings.TrimSpace(s))
}

// SplitName splits a full name into first name and the remainder as the
// last name ("Mary Jane Watson" → "Mary", "Jane Watson"). A single token
// yields an empty last name.
func SplitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
