package voice

import (
	"strings"

	"medication-reminder/internal/model"
)

// Resolve matches an entity fragment against the user's medication snapshot.
// The first medication (in list order) whose name contains the fragment,
// case-insensitively, wins; there is no scoring or edit-distance fallback.
// Pure: no I/O, deterministic given its inputs.
func Resolve(fragment string, medications []model.Medication) (Resolution, *model.Medication) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return ResolutionEmptyFragment, nil
	}
	// Lower here as well, so the contract holds for callers that skip
	// Normalize.
	fragment = strings.ToLower(fragment)

	for i := range medications {
		if strings.Contains(strings.ToLower(medications[i].Name), fragment) {
			return ResolutionFound, &medications[i]
		}
	}
	return ResolutionNotFound, nil
}
