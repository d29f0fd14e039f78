package lexer

// Span identifies one lexeme as a half-open byte range [Start, End) in the
// lexer's input window. Offsets are stable for the life of the lexer.
type Span struct {
	Start int
	End   int
}

// Len returns the lexeme length in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}
