package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NormalizeUUID parses s as a UUID and returns its canonical lowercase form.
// Enpass vaults occasionally store UUIDs with braces or mixed case; anything
// unparsable is returned unchanged with ok=false so the caller can flag it
// without dropping the record.
func NormalizeUUID(s string) (normalized string, ok bool) {
	trimmed := strings.Trim(s, "{}")
	parsed, err := uuid.Parse(trimmed)
	if err != nil {
		return s, false
	}
	return parsed.String(), true
}
