package lexer

import (
	"errors"
	"io"
	"log/slog"

	"GoLex/automaton"
	"GoLex/input"
)

// Actions maps an accepting state and its lexeme to a token. Generated
// action tables implement it; returning ok=false discards the lexeme (e.g.
// whitespace and comment rules) and lexing resumes past it.
//
// The lexeme slice is a view into the lexer's buffer; implementations that
// retain it past the call must copy.
type Actions[T any] interface {
	Act(state automaton.State, lexeme []byte) (tok T, ok bool)
}

// ActionFunc adapts a function to the Actions interface.
type ActionFunc[T any] func(state automaton.State, lexeme []byte) (T, bool)

func (f ActionFunc[T]) Act(state automaton.State, lexeme []byte) (T, bool) {
	return f(state, lexeme)
}

// Lexer turns a byte stream into a sequence of tokens by simulating a
// generated DFA with greedy longest-match resolution. It exclusively owns
// its reader for its whole lifetime and holds no state across NextToken
// calls beyond the buffer position.
//
// The automaton and action table are read-only and may be shared by any
// number of independent Lexer instances; the Lexer itself may not.
type Lexer[T any] struct {
	buf     *input.Buffer
	dec     input.Decoder
	auto    automaton.Automaton
	actions Actions[T]
	logger  *slog.Logger
}

// New creates a Lexer over src driven by the given transition table and
// action table.
func New[T any](src io.Reader, auto automaton.Automaton, actions Actions[T], opts Options) *Lexer[T] {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	buf := input.NewBuffer(src, opts.ChunkSize)
	return &Lexer[T]{
		buf:     buf,
		dec:     input.NewDecoder(buf, opts.Decoding),
		auto:    auto,
		actions: actions,
		logger:  logger,
	}
}

// Pos returns the current byte offset into the input. Callers implementing
// their own recovery policy can combine it with the offsets carried by
// NoMatchError and DecodeError to decide where to resume a fresh lexer.
func (l *Lexer[T]) Pos() int {
	return l.buf.Pos()
}

// NextToken returns the next token from the input. Lexemes whose action
// discards them are skipped internally. At clean end of stream it returns
// io.EOF; any other error is fatal for this instance — the engine never
// retries or skips past it. Recovery (e.g. resuming after the offending
// byte) is a caller-level policy decision.
func (l *Lexer[T]) NextToken() (T, error) {
	var zero T
	for {
		span, state, err := l.nextMatch()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				l.logger.Debug("lexing failed", "offset", l.buf.Pos(), "error", err)
			}
			return zero, err
		}
		if tok, ok := l.actions.Act(state, l.buf.Window(span.Start, span.End)); ok {
			return tok, nil
		}
		// Discarded lexeme: the cursor already advanced past it.
	}
}

// nextMatch runs the automaton from the current position and resolves the
// longest accepting prefix, backtracking the cursor to its boundary.
//
// io.EOF is returned only when zero symbols could be consumed; end of
// stream in the middle of a walk finalizes whatever matched so far.
func (l *Lexer[T]) nextMatch() (Span, automaton.State, error) {
	start := l.buf.Pos()
	state := l.auto.Start()

	accEnd := -1
	var accState automaton.State

	for {
		sym, err := l.dec.Next()
		if err == io.EOF {
			if l.buf.Pos() == start {
				return Span{}, automaton.DeadState, io.EOF
			}
			break
		}
		if err != nil {
			return Span{}, automaton.DeadState, err
		}

		next := l.auto.Step(state, sym)
		if next == automaton.DeadState {
			break
		}
		state = next

		// Longest-match rule: overwrite only for a strictly longer
		// prefix. Offsets grow monotonically within a walk, so the
		// first accepting state recorded at a given length stands,
		// preserving the table's rule priority.
		if l.auto.IsAccept(state) && l.buf.Pos() > accEnd {
			accEnd = l.buf.Pos()
			accState = state
		}
	}

	if accEnd < 0 {
		return Span{}, automaton.DeadState, &NoMatchError{Offset: start}
	}

	// Undo any symbols consumed past the accepting boundary.
	l.buf.SetPos(accEnd)
	return Span{Start: start, End: accEnd}, accState, nil
}
