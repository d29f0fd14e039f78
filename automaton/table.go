package automaton

import "errors"

// Table construction limits.
const MaxTableStates = 1 << 20

var (
	ErrTooManyStates = errors.New("state count exceeds table maximum")
	ErrUnknownState  = errors.New("transition references an undeclared state")
	ErrInvalidRange  = errors.New("range upper bound below lower bound")
	ErrRangeOverlap  = errors.New("range overlaps an existing transition")
)

// rangeMove is one outgoing transition covering the inclusive symbol
// interval [lo, hi].
type rangeMove struct {
	lo, hi Symbol
	to     State
}

// tableState holds one state's accepting flag and its outgoing moves,
// kept sorted by lo and pairwise disjoint.
type tableState struct {
	accept bool
	moves  []rangeMove
}

// Table is a runtime-constructible Automaton backed by per-state sorted
// symbol ranges. Generated lexer tables target its builder API; once built
// it is read-only and shareable across any number of lexer instances.
//
// State 0 is reserved for DeadState; AddState numbers states from 1.
type Table struct {
	start  State
	states []tableState
}

// NewTable creates an empty table. At least one state must be added and
// marked as the start state before use.
func NewTable() *Table {
	// Slot 0 stands in for DeadState and is never addressed.
	return &Table{states: make([]tableState, 1)}
}

// AddState declares a new state and returns its identifier.
// The first state added becomes the start state unless SetStart overrides it.
func (t *Table) AddState(accepting bool) (State, error) {
	if len(t.states) >= MaxTableStates {
		return DeadState, ErrTooManyStates
	}
	t.states = append(t.states, tableState{accept: accepting})
	s := State(len(t.states) - 1)
	if t.start == DeadState {
		t.start = s
	}
	return s, nil
}

// SetStart marks a previously added state as the initial state.
func (t *Table) SetStart(s State) error {
	if !t.valid(s) {
		return ErrUnknownState
	}
	t.start = s
	return nil
}

// AddRange adds a transition from → to for every symbol in the inclusive
// interval [lo, hi]. Ranges out of one state must not intersect; the table
// is deterministic by construction.
func (t *Table) AddRange(from State, lo, hi Symbol, to State) error {
	if !t.valid(from) || !t.valid(to) {
		return ErrUnknownState
	}
	if hi < lo {
		return ErrInvalidRange
	}

	moves := t.states[from].moves
	i := searchMoves(moves, lo)

	// Neighbors are the only candidates that could intersect [lo, hi].
	if i > 0 && moves[i-1].hi >= lo {
		return ErrRangeOverlap
	}
	if i < len(moves) && moves[i].lo <= hi {
		return ErrRangeOverlap
	}

	moves = append(moves, rangeMove{})
	copy(moves[i+1:], moves[i:])
	moves[i] = rangeMove{lo: lo, hi: hi, to: to}
	t.states[from].moves = moves
	return nil
}

// AddSymbol adds a single-symbol transition; shorthand for a width-one range.
func (t *Table) AddSymbol(from State, sym Symbol, to State) error {
	return t.AddRange(from, sym, sym, to)
}

// Start returns the initial state.
func (t *Table) Start() State {
	return t.start
}

// Step returns the next state for sym, or DeadState if no range covers it.
func (t *Table) Step(state State, sym Symbol) State {
	if !t.valid(state) {
		return DeadState
	}
	moves := t.states[state].moves
	i := searchMoves(moves, sym)
	if i > 0 && moves[i-1].hi >= sym {
		return moves[i-1].to
	}
	if i < len(moves) && moves[i].lo == sym {
		return moves[i].to
	}
	return DeadState
}

// IsAccept returns true if the state is an accepting state.
func (t *Table) IsAccept(state State) bool {
	return t.valid(state) && t.states[state].accept
}

// StateCount returns the number of declared states, excluding DeadState.
func (t *Table) StateCount() int {
	return len(t.states) - 1
}

func (t *Table) valid(s State) bool {
	return s != DeadState && int(s) < len(t.states)
}

// searchMoves returns the smallest index i with moves[i].lo >= sym.
func searchMoves(moves []rangeMove, sym Symbol) int {
	lo, hi := 0, len(moves)
	for lo < hi {
		mid := (lo + hi) / 2
		if moves[mid].lo < sym {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
