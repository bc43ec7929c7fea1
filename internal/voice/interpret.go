package voice

import (
	"strconv"
	"strings"
)

// Filler tokens stripped from the utterance to isolate the medication name.
// Stripping is plain substring removal, not word-boundary aware: a medication
// name that itself contains one of these tokens will be mutated. That matches
// the matching strategy the resolver is built around and is accepted behavior.
var (
	takenFillers  = []string{"taken", "take", "i", "have", "the", "medicine", "medication"}
	missedFillers = []string{"missed", "skip", "i", "have", "the", "medicine", "medication"}
)

// Interpret classifies a normalized utterance into a ParsedCommand.
// Rules are evaluated in a fixed priority order and the first match wins;
// the order is the tie-break policy. Every input maps to some command, the
// empty string included.
func Interpret(text string) ParsedCommand {
	switch {
	case strings.Contains(text, "taken") || strings.Contains(text, "take"):
		return ParsedCommand{
			Intent:        IntentMedicationTaken,
			RawEntityText: stripFillers(text, takenFillers),
		}

	case strings.Contains(text, "missed") || strings.Contains(text, "skip"):
		return ParsedCommand{
			Intent:        IntentMedicationMissed,
			RawEntityText: stripFillers(text, missedFillers),
		}

	case strings.Contains(text, "water"):
		return ParsedCommand{
			Intent:   IntentWaterIntake,
			Quantity: extractQuantity(text),
		}

	case strings.Contains(text, "lunch") || strings.Contains(text, "eat"):
		return ParsedCommand{Intent: IntentLunchEaten}

	default:
		return ParsedCommand{
			Intent:        IntentUnrecognized,
			RawEntityText: text,
		}
	}
}

// stripFillers removes filler tokens in a single left-to-right scan. At each
// position the tokens are tried in listed order and the first match is
// skipped, so an occurrence is removed wherever it appears but the remainder
// of the text is never re-scanned.
func stripFillers(text string, fillers []string) string {
	var b strings.Builder
	for i := 0; i < len(text); {
		skip := 0
		for _, f := range fillers {
			if strings.HasPrefix(text[i:], f) {
				skip = len(f)
				break
			}
		}
		if skip > 0 {
			i += skip
			continue
		}
		b.WriteByte(text[i])
		i++
	}
	return strings.TrimSpace(b.String())
}

// extractQuantity returns the first run of decimal digits in the text,
// defaulting to 1 when none is present.
func extractQuantity(text string) int {
	start := -1
	for i, r := range text {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			if n, err := strconv.Atoi(text[start:i]); err == nil {
				return n
			}
			start = -1
		}
	}
	if start >= 0 {
		if n, err := strconv.Atoi(text[start:]); err == nil {
			return n
		}
	}
	return 1
}
