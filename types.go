package pokespeare

// OutcomeKind discriminates the result of a single lookup.
type OutcomeKind int

const (
	// OutcomeFound means a translated description is available.
	OutcomeFound OutcomeKind = iota
	// OutcomeNotFound means the creature does not exist upstream.
	OutcomeNotFound
	// OutcomeFailed means an upstream call failed. The failure is local to
	// this lookup; a later identical lookup starts fresh.
	OutcomeFailed
)

// String returns a short name for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the tagged result of one Resolve call.
//
// Description is set only when Kind is OutcomeFound. Err is set only when
// Kind is OutcomeFailed and carries the underlying upstream error; callers
// should log it, not echo it to clients.
type Outcome struct {
	Kind        OutcomeKind
	Description string
	Err         error
}

// Found builds a successful outcome.
func Found(description string) Outcome {
	return Outcome{Kind: OutcomeFound, Description: description}
}

// NotFound builds an outcome for a creature that does not exist upstream.
func NotFound() Outcome {
	return Outcome{Kind: OutcomeNotFound}
}

// Failed builds an outcome for a failed lookup.
func Failed(err error) Outcome {
	return Outcome{Kind: OutcomeFailed, Err: err}
}
