package psvi

// ValidationAttempted reports how much of a node's content was subjected to
// validation.
type ValidationAttempted int

const (
	// AttemptedNone indicates the node was not validated.
	AttemptedNone ValidationAttempted = iota
	// AttemptedPartial indicates only part of the node's content was validated.
	AttemptedPartial
	// AttemptedFull indicates the node's content was fully validated.
	AttemptedFull
)

// String returns the string form of the validation-attempted state.
func (v ValidationAttempted) String() string {
	switch v {
	case AttemptedNone:
		return "none"
	case AttemptedPartial:
		return "partial"
	case AttemptedFull:
		return "full"
	default:
		return "unknown"
	}
}

// Validity classifies the outcome of a validation attempt.
//
// A validity other than ValidityUnknown is only meaningful together with a
// validation-attempted state other than AttemptedNone; the producer sets
// both from the same validation pass.
type Validity int

const (
	// ValidityUnknown indicates validity was not determined.
	ValidityUnknown Validity = iota
	// ValidityInvalid indicates the node failed validation.
	ValidityInvalid
	// ValidityValid indicates the node passed validation.
	ValidityValid
)

// String returns the string form of the validity state.
func (v Validity) String() string {
	switch v {
	case ValidityUnknown:
		return "unknown"
	case ValidityInvalid:
		return "invalid"
	case ValidityValid:
		return "valid"
	default:
		return "unknown"
	}
}
