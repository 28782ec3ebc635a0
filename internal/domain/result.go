package domain

// NotFoundMessage is the user-facing text for a lookup miss.
const NotFoundMessage = "Property not found. Please check the address and try again."

// ErrorResult is a lookup outcome that carries a message instead of a record.
type ErrorResult struct {
	Message string
}

// LookupResult is the outcome of one search. Exactly one of Property and
// Err is set; use FoundResult or NotFoundResult to build one.
type LookupResult struct {
	Property *PropertyRecord
	Err      *ErrorResult
}

// FoundResult wraps a matching record.
func FoundResult(p *PropertyRecord) *LookupResult {
	if p == nil {
		return NotFoundResult()
	}
	return &LookupResult{Property: p}
}

// NotFoundResult returns the fixed not-found payload.
func NotFoundResult() *LookupResult {
	return &LookupResult{Err: &ErrorResult{Message: NotFoundMessage}}
}

// Found reports whether r holds a record. A nil result is not found.
func (r *LookupResult) Found() bool {
	return r != nil && r.Property != nil
}

// IsError reports whether r is an error payload.
func (r *LookupResult) IsError() bool {
	return r != nil && r.Err != nil
}

// Outcome classifies r for logging and display.
func (r *LookupResult) Outcome() LookupOutcome {
	switch {
	case r.Found():
		return OutcomeFound
	case r.IsError():
		return OutcomeNotFound
	default:
		return OutcomeNone
	}
}
