package automaton

import (
	"errors"
	"fmt"
)

// ErrInvalidAutomaton is returned by Build when the assembled tables break
// one of the automaton invariants.
var ErrInvalidAutomaton = errors.New("invalid automaton")

// Builder assembles an Automaton. State ids are allocated from a counter
// owned by the builder, so independent builders never share numbering.
// A Builder is not safe for concurrent use.
type Builder struct {
	numStates int
	epsilon   [][]State
	labeled   [][]Edge
	built     bool
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// NewState allocates the next state id.
func (b *Builder) NewState() State {
	s := State(b.numStates)
	b.numStates++
	b.epsilon = append(b.epsilon, nil)
	b.labeled = append(b.labeled, nil)
	return s
}

// NumStates returns the number of states allocated so far.
func (b *Builder) NumStates() int { return b.numStates }

// AddEpsilon adds an epsilon edge. Adding an existing edge is a no-op.
func (b *Builder) AddEpsilon(from, to State) {
	b.checkState(from)
	b.checkState(to)
	for _, t := range b.epsilon[from] {
		if t == to {
			return
		}
	}
	b.epsilon[from] = append(b.epsilon[from], to)
}

// AddTransition adds an edge consuming literal. Adding an existing edge is a no-op.
func (b *Builder) AddTransition(from State, literal string, to State) {
	b.checkState(from)
	b.checkState(to)
	if literal == "" {
		panic("automaton: labeled transition with empty literal")
	}
	for _, e := range b.labeled[from] {
		if e.Literal == literal && e.To == to {
			return
		}
	}
	b.labeled[from] = append(b.labeled[from], Edge{Literal: literal, To: to})
}

// Build freezes the builder into an Automaton with the given start and
// accepting states. The builder cannot be used afterwards.
func (b *Builder) Build(start State, accepting ...State) (*Automaton, error) {
	if b.built {
		return nil, fmt.Errorf("%w: builder already used", ErrInvalidAutomaton)
	}
	if b.numStates == 0 {
		return nil, fmt.Errorf("%w: no states", ErrInvalidAutomaton)
	}
	if !b.has(start) {
		return nil, fmt.Errorf("%w: start state %d does not exist", ErrInvalidAutomaton, start)
	}
	if len(accepting) == 0 {
		return nil, fmt.Errorf("%w: no accepting states", ErrInvalidAutomaton)
	}

	acc := make([]bool, b.numStates)
	for _, s := range accepting {
		if !b.has(s) {
			return nil, fmt.Errorf("%w: accepting state %d does not exist", ErrInvalidAutomaton, s)
		}
		acc[s] = true
	}

	b.built = true
	return &Automaton{
		numStates: b.numStates,
		start:     start,
		accepting: acc,
		epsilon:   b.epsilon,
		labeled:   b.labeled,
	}, nil
}

func (b *Builder) has(s State) bool {
	return s >= 0 && int(s) < b.numStates
}

func (b *Builder) checkState(s State) {
	if b.built {
		panic("automaton: builder used after Build")
	}
	if !b.has(s) {
		panic(fmt.Sprintf("automaton: state %d was not allocated by this builder", s))
	}
}
