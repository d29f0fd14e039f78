// Package testutil provides fixture transition tables and action tables
// shared by the engine's tests and benchmarks.
package testutil

import (
	"io"

	"GoLex/automaton"
	"GoLex/lexer"
)

// Kind identifies a token produced by the fixture machines.
type Kind int

const (
	Int Kind = iota
	Plus
	Ident
	Space
	English
	Russian
	Abb // (a|b)*abb
	Abc // abc
)

// Token pairs a fixture token kind with its lexeme text.
type Token struct {
	Kind Kind
	Text string
}

// kindActions emits a Kind-tagged token per accepting state and discards
// the states listed in skip.
type kindActions struct {
	kinds map[automaton.State]Kind
	skip  map[automaton.State]bool
}

func (a kindActions) Act(state automaton.State, lexeme []byte) (Token, bool) {
	if a.skip[state] {
		return Token{}, false
	}
	return Token{Kind: a.kinds[state], Text: string(lexeme)}, true
}

// Arith returns a machine for [0-9]+ → Int, '+' → Plus, with
// [ \t\n]+ discarded.
func Arith() (automaton.Automaton, lexer.Actions[Token]) {
	t := automaton.NewTable()
	s0 := mustState(t, false)
	sInt := mustState(t, true)
	sPlus := mustState(t, true)
	sWS := mustState(t, true)

	must(t.AddRange(s0, '0', '9', sInt))
	must(t.AddRange(sInt, '0', '9', sInt))
	must(t.AddSymbol(s0, '+', sPlus))
	for _, ws := range []automaton.Symbol{' ', '\t', '\n'} {
		must(t.AddSymbol(s0, ws, sWS))
		must(t.AddSymbol(sWS, ws, sWS))
	}

	return t, kindActions{
		kinds: map[automaton.State]Kind{sInt: Int, sPlus: Plus},
		skip:  map[automaton.State]bool{sWS: true},
	}
}

// Idents returns a machine for [a-zA-Z_][a-zA-Z_0-9]* → Ident and
// [ ]+ → Space, both emitted.
func Idents() (automaton.Automaton, lexer.Actions[Token]) {
	t := automaton.NewTable()
	s0 := mustState(t, false)
	sId := mustState(t, true)
	sSp := mustState(t, true)

	for _, s := range []automaton.State{s0, sId} {
		must(t.AddRange(s, 'a', 'z', sId))
		must(t.AddRange(s, 'A', 'Z', sId))
		must(t.AddSymbol(s, '_', sId))
	}
	must(t.AddRange(sId, '0', '9', sId))
	must(t.AddSymbol(s0, ' ', sSp))
	must(t.AddSymbol(sSp, ' ', sSp))

	return t, kindActions{
		kinds: map[automaton.State]Kind{sId: Ident, sSp: Space},
	}
}

// AbbAbc returns the combined machine for (a|b)*abb → Abb and abc → Abc,
// the classic longest-match/backtracking exercise.
func AbbAbc() (automaton.Automaton, lexer.Actions[Token]) {
	t := automaton.NewTable()
	var s [8]automaton.State
	accepting := map[int]bool{6: true, 7: true}
	for i := range s {
		s[i] = mustState(t, accepting[i])
	}

	moves := []struct {
		from int
		sym  automaton.Symbol
		to   int
	}{
		{0, 'a', 1}, {0, 'b', 2},
		{1, 'a', 3}, {1, 'b', 4},
		{2, 'a', 3}, {2, 'b', 2},
		{3, 'a', 3}, {3, 'b', 5},
		{4, 'a', 3}, {4, 'b', 6}, {4, 'c', 7},
		{5, 'a', 3}, {5, 'b', 6},
		{6, 'a', 3}, {6, 'b', 2},
	}
	for _, m := range moves {
		must(t.AddSymbol(s[m.from], m.sym, s[m.to]))
	}

	return t, kindActions{
		kinds: map[automaton.State]Kind{s[6]: Abb, s[7]: Abc},
	}
}

// Unicode returns a machine for [a-z]+ → English and [а-я]+ → Russian over
// the Unicode scalar alphabet, with [ ]+ discarded.
func Unicode() (automaton.Automaton, lexer.Actions[Token]) {
	t := automaton.NewTable()
	s0 := mustState(t, false)
	sEn := mustState(t, true)
	sRu := mustState(t, true)
	sSp := mustState(t, true)

	must(t.AddRange(s0, 'a', 'z', sEn))
	must(t.AddRange(sEn, 'a', 'z', sEn))
	must(t.AddRange(s0, 'а', 'я', sRu))
	must(t.AddRange(sRu, 'а', 'я', sRu))
	must(t.AddSymbol(s0, ' ', sSp))
	must(t.AddSymbol(sSp, ' ', sSp))

	return t, kindActions{
		kinds: map[automaton.State]Kind{sEn: English, sRu: Russian},
		skip:  map[automaton.State]bool{sSp: true},
	}
}

// Collect drains lx, returning the emitted tokens and the terminal error
// (nil on clean end of stream).
func Collect(lx *lexer.Lexer[Token]) ([]Token, error) {
	var tokens []Token
	for {
		tok, err := lx.NextToken()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
}

func mustState(t *automaton.Table, accepting bool) automaton.State {
	s, err := t.AddState(accepting)
	if err != nil {
		panic(err)
	}
	return s
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
