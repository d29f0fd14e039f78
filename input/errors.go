package input

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 matches any *DecodeError via errors.Is.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 sequence")

// DecodeError reports a malformed input unit starting at a byte offset.
// It is fatal for the lexer instance that produced it.
type DecodeError struct {
	Offset int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid UTF-8 sequence at offset %d", e.Offset)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrInvalidUTF8
}
