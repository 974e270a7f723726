package isodate

import (
	"errors"
	"fmt"
)

// ErrNoMatch is returned when a grammar cannot consume the input.
var ErrNoMatch = errors.New("isodate: no match")

// IncompleteError reports a grammar that matched a prefix of the input
// but stopped before its end. It unwraps to ErrNoMatch.
type IncompleteError struct {
	Grammar string
	Input   string
	End     int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("isodate: %s matched %q but not %q", e.Grammar, e.Input[:e.End], e.Input[e.End:])
}

func (e *IncompleteError) Unwrap() error {
	return ErrNoMatch
}
