package automaton

// Symbol is a single unit of automaton input: a raw byte value or a decoded
// Unicode scalar, depending on the lexer's decoding strategy.
type Symbol rune

// State represents a state in a deterministic finite automaton.
type State uint32

// DeadState is the sink state from which no accepting state is reachable.
// Transition tables MUST reserve it: returning DeadState from Step means
// "no transition", never a real state.
const DeadState State = 0

// Automaton is the interface a generated transition table implements.
// The lexer engine drives it one symbol at a time and never inspects
// states beyond identity, so implementations are free to encode anything
// into the State value.
//
// Properties:
//   - Deterministic: single transition per (state, symbol)
//   - Finite: bounded state count
//   - Pure: no mutable state; safe for concurrent use by many lexers
type Automaton interface {
	// Start returns the initial state.
	Start() State

	// Step returns the next state for the given input symbol.
	// Returns DeadState if no transition exists. Step must reject
	// unexpected input this way rather than panic.
	Step(state State, sym Symbol) State

	// IsAccept returns true if the state is an accepting state.
	IsAccept(state State) bool
}
