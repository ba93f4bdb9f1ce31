package version

// RangeResult is the tri-state outcome of a range-membership test. It is a
// distinct enumerated type, not a nullable bool, so callers cannot mistake
// an inconclusive test for a failed one.
type RangeResult int

const (
	// RangeUnknown means the bounds were insufficient to decide.
	RangeUnknown RangeResult = iota
	// RangeIn means the candidate lies within the bounds.
	RangeIn
	// RangeOut means the candidate lies outside the bounds.
	RangeOut
)

// String returns "in", "out", or "unknown".
func (r RangeResult) String() string {
	switch r {
	case RangeIn:
		return "in"
	case RangeOut:
		return "out"
	case RangeUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// Known reports whether the test reached a verdict.
func (r RangeResult) Known() bool {
	return r == RangeIn || r == RangeOut
}

// In reports whether the test reached a positive verdict.
func (r RangeResult) In() bool {
	return r == RangeIn
}

// InRange tests whether candidate lies within the inclusive window described
// by the lower and upper bound strings. Bounds are optional: a blank string
// is an absent bound, and a bound that fails to parse is treated the same as
// an absent one rather than as an error, so a malformed bound can never make
// a gate check fail loudly, only make it inconclusive.
//
//	lower    upper    result
//	absent   absent   RangeUnknown
//	present  absent   candidate >= lower
//	present  present  lower <= candidate <= upper
//	absent   present  RangeUnknown (a lower bound is mandatory when any
//	                  bound is supplied)
//
// The candidate itself is an already-parsed Version; validating it is the
// caller's concern, not this evaluator's.
func InRange(candidate Version, lower, upper string) RangeResult {
	lo := parseBound(lower)
	if lo == nil {
		return RangeUnknown
	}

	if candidate.Less(*lo) {
		return RangeOut
	}

	hi := parseBound(upper)
	if hi == nil {
		return RangeIn
	}
	if candidate.Greater(*hi) {
		return RangeOut
	}
	return RangeIn
}

// parseBound parses an optional bound string, returning nil for an absent or
// unusable bound.
func parseBound(s string) *Version {
	v, err := Parse(s)
	if err != nil {
		return nil
	}
	return &v
}
