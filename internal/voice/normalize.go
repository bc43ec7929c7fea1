package voice

import "strings"

// Normalize lower-cases and trims a raw transcript. No other transformation
// is applied; the interpreter's keyword matching depends on exactly this.
// Idempotent.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
