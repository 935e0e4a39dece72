package automaton

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
)

// ErrInvalidDefinition is wrapped by every ParseDefinition validation failure.
var ErrInvalidDefinition = errors.New("invalid automaton definition")

var api = sonic.ConfigStd

// Definition is the JSON form of an automaton.
type Definition struct {
	Start  int               `json:"start"`
	States []StateDefinition `json:"states"`
}

// StateDefinition describes one state and its outgoing actions.
type StateDefinition struct {
	State     int      `json:"state"`
	Accepting bool     `json:"accepting"`
	Actions   []Action `json:"actions"`
}

// Action is either an epsilon move or a move consuming Symbol.
type Action struct {
	Epsilon   bool   `json:"epsilon,omitempty"`
	Symbol    string `json:"symbol,omitempty"`
	NextState int    `json:"next_state"`
}

// Definition converts a into its JSON form.
func (a *Automaton) Definition() Definition {
	a.mustBeWellFormed()
	def := Definition{
		Start:  int(a.start),
		States: make([]StateDefinition, a.numStates),
	}
	for i := 0; i < a.numStates; i++ {
		sd := StateDefinition{State: i, Accepting: a.accepting[i], Actions: []Action{}}
		for _, t := range a.epsilon[i] {
			sd.Actions = append(sd.Actions, Action{Epsilon: true, NextState: int(t)})
		}
		for _, e := range a.labeled[i] {
			sd.Actions = append(sd.Actions, Action{Symbol: e.Literal, NextState: int(e.To)})
		}
		def.States[i] = sd
	}
	return def
}

// MarshalDefinition encodes a as indented JSON.
func MarshalDefinition(a *Automaton) ([]byte, error) {
	return api.MarshalIndent(a.Definition(), "", "  ")
}

// ParseDefinition decodes and validates a JSON automaton definition.
func ParseDefinition(data []byte) (*Automaton, error) {
	var def Definition
	if err := api.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	return def.Build()
}

// Build validates the definition and converts it into an Automaton.
func (d Definition) Build() (*Automaton, error) {
	n := len(d.States)
	if n == 0 {
		return nil, fmt.Errorf("%w: no states", ErrInvalidDefinition)
	}

	byID := make([]*StateDefinition, n)
	for i := range d.States {
		sd := &d.States[i]
		if sd.State < 0 || sd.State >= n {
			return nil, fmt.Errorf("%w: state id %d out of range [0,%d)", ErrInvalidDefinition, sd.State, n)
		}
		if byID[sd.State] != nil {
			return nil, fmt.Errorf("%w: duplicate state id %d", ErrInvalidDefinition, sd.State)
		}
		byID[sd.State] = sd
	}
	if d.Start < 0 || d.Start >= n {
		return nil, fmt.Errorf("%w: start state %d does not exist", ErrInvalidDefinition, d.Start)
	}

	b := NewBuilder()
	for i := 0; i < n; i++ {
		b.NewState()
	}

	var accepting []State
	for id, sd := range byID {
		if sd.Accepting {
			accepting = append(accepting, State(id))
		}
		for j, act := range sd.Actions {
			if act.NextState < 0 || act.NextState >= n {
				return nil, fmt.Errorf("%w: state %d action %d targets missing state %d",
					ErrInvalidDefinition, id, j, act.NextState)
			}
			switch {
			case act.Epsilon && act.Symbol != "":
				return nil, fmt.Errorf("%w: state %d action %d is epsilon but has symbol %q",
					ErrInvalidDefinition, id, j, act.Symbol)
			case act.Epsilon:
				b.AddEpsilon(State(id), State(act.NextState))
			case act.Symbol == "":
				return nil, fmt.Errorf("%w: state %d action %d has an empty symbol",
					ErrInvalidDefinition, id, j)
			default:
				b.AddTransition(State(id), act.Symbol, State(act.NextState))
			}
		}
	}
	if len(accepting) == 0 {
		return nil, fmt.Errorf("%w: no accepting states", ErrInvalidDefinition)
	}

	a, err := b.Build(State(d.Start), accepting...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	return a, nil
}
