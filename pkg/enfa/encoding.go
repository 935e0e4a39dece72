package enfa

import (
	"fmt"
	"io"

	"github.com/KromDaniel/enfa/internal/automaton"
)

// ErrInvalidDefinition is wrapped by ReadJSON when a definition is rejected.
var ErrInvalidDefinition = automaton.ErrInvalidDefinition

// Definition is the JSON form of an automaton.
type Definition = automaton.Definition

// WriteJSON writes a as an indented JSON definition.
func WriteJSON(w io.Writer, a *Automaton) error {
	data, err := automaton.MarshalDefinition(a)
	if err != nil {
		return fmt.Errorf("failed to encode automaton: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// ReadJSON reads and validates a JSON definition. The returned automaton
// satisfies the same invariants as a compiled one.
func ReadJSON(r io.Reader) (*Automaton, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}
	return automaton.ParseDefinition(data)
}

// WriteDOT writes a Graphviz rendering of a.
func WriteDOT(w io.Writer, a *Automaton) error {
	return automaton.WriteDOT(w, a)
}
