package controller

// State is a position in the submission state machine.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateInvalid
	StateSubmitting
	StateSettled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateInvalid:
		return "invalid"
	case StateSubmitting:
		return "submitting"
	case StateSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Outcome summarises a Submit call.
type Outcome int

const (
	// OutcomeIgnored means a submission was already in flight.
	OutcomeIgnored Outcome = iota
	// OutcomeInvalid means validation failed; nothing was collected.
	OutcomeInvalid
	// OutcomeSubmitted means both sinks accepted the record.
	OutcomeSubmitted
	// OutcomeFailed means at least one sink reported failure.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeSubmitted:
		return "submitted"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}
