package lexer

import (
	"errors"
	"fmt"
)

// ErrNoMatch matches any *NoMatchError via errors.Is.
var ErrNoMatch = errors.New("no rule matches input")

// NoMatchError reports that the automaton rejects every possible lexeme
// starting at Offset. The position can never legally advance, so the error
// is fatal; skipping bytes to resume is a caller-level policy decision.
type NoMatchError struct {
	Offset int
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no rule matches input at offset %d", e.Offset)
}

func (e *NoMatchError) Is(target error) bool {
	return target == ErrNoMatch
}
