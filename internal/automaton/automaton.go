// Package automaton holds the ε-NFA representation shared by the compiler,
// the matcher and the exporters.
//
// States are indices into a flat arena and every edge is an index pair, so
// cycles introduced by Kleene star need no special ownership handling.
package automaton

import "fmt"

// State identifies a state within a single automaton.
type State int

// Edge is a labeled transition that consumes Literal as one unit.
type Edge struct {
	Literal string
	To      State
}

// Automaton is an ε-NFA with a single start state. It is read-only once
// returned by Builder.Build and may be shared between goroutines.
type Automaton struct {
	numStates int
	start     State
	accepting []bool
	epsilon   [][]State
	labeled   [][]Edge
}

// NumStates returns the number of states in the automaton.
func (a *Automaton) NumStates() int { return a.numStates }

// Start returns the start state.
func (a *Automaton) Start() State { return a.start }

// IsAccepting reports whether s is an accepting state.
func (a *Automaton) IsAccepting(s State) bool {
	return a.valid(s) && a.accepting[s]
}

// Accepting returns the accepting states in ascending order.
func (a *Automaton) Accepting() []State {
	var out []State
	for i, ok := range a.accepting {
		if ok {
			out = append(out, State(i))
		}
	}
	return out
}

// EpsilonFrom returns the epsilon targets of s. The slice must not be modified.
func (a *Automaton) EpsilonFrom(s State) []State {
	if !a.valid(s) {
		return nil
	}
	return a.epsilon[s]
}

// TransitionsFrom returns the labeled edges leaving s. The slice must not be modified.
func (a *Automaton) TransitionsFrom(s State) []Edge {
	if !a.valid(s) {
		return nil
	}
	return a.labeled[s]
}

// Targets returns the states reachable from s by consuming literal.
func (a *Automaton) Targets(s State, literal string) []State {
	var out []State
	for _, e := range a.TransitionsFrom(s) {
		if e.Literal == literal {
			out = append(out, e.To)
		}
	}
	return out
}

// NumTransitions returns the number of labeled and epsilon edges.
func (a *Automaton) NumTransitions() (labeled, epsilon int) {
	for i := 0; i < a.numStates; i++ {
		labeled += len(a.labeled[i])
		epsilon += len(a.epsilon[i])
	}
	return labeled, epsilon
}

func (a *Automaton) valid(s State) bool {
	return s >= 0 && int(s) < a.numStates
}

// mustBeWellFormed panics when a is not an automaton produced by a Builder.
// The compiler and the definition loader both guarantee these properties,
// so a failure here is a programming error.
func (a *Automaton) mustBeWellFormed() {
	if a == nil {
		panic("automaton: nil automaton")
	}
	if a.numStates == 0 || !a.valid(a.start) ||
		len(a.accepting) != a.numStates ||
		len(a.epsilon) != a.numStates ||
		len(a.labeled) != a.numStates {
		panic(fmt.Sprintf("automaton: malformed automaton (states=%d start=%d)", a.numStates, a.start))
	}
}
