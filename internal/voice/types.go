package voice

import (
	"medication-reminder/internal/model"
)

// Intent is the classified category of a spoken command.
type Intent string

const (
	IntentMedicationTaken  Intent = "MEDICATION_TAKEN"
	IntentMedicationMissed Intent = "MEDICATION_MISSED"
	IntentWaterIntake      Intent = "WATER_INTAKE"
	IntentLunchEaten       Intent = "LUNCH_EATEN"
	IntentUnrecognized     Intent = "UNRECOGNIZED"
)

// ParsedCommand is the interpreter's output for one normalized utterance.
// RawEntityText carries the medication fragment for the medication intents,
// and the full utterance for IntentUnrecognized (diagnostic display).
type ParsedCommand struct {
	Intent        Intent
	RawEntityText string
	Quantity      int // glasses of water; meaningful only for IntentWaterIntake
}

// Resolution classifies the result of matching an entity fragment
// against the medication list.
type Resolution int

const (
	ResolutionFound Resolution = iota
	ResolutionNotFound
	ResolutionEmptyFragment
)

// ResolvedCommand is a ParsedCommand after entity resolution. Medication is
// set only when the intent requires one and resolution succeeded.
type ResolvedCommand struct {
	Intent     Intent
	Medication *model.Medication
	Quantity   int
}

// OutcomeKind tags the user-facing result of processing one utterance.
type OutcomeKind string

const (
	OutcomeSuccess      OutcomeKind = "SUCCESS"
	OutcomeNotFound     OutcomeKind = "NOT_FOUND"
	OutcomeMissingInput OutcomeKind = "AMBIGUOUS_OR_MISSING_INPUT"
	OutcomeUnrecognized OutcomeKind = "UNRECOGNIZED"
	OutcomeActionFailed OutcomeKind = "ACTION_FAILED"
)

// DispatchOutcome is the final result of one command cycle.
type DispatchOutcome struct {
	Kind         OutcomeKind
	Message      string
	MedicationID string // set on Success for medication intents
	Err          error  // set on OutcomeActionFailed
}
