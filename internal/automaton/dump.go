package automaton

import (
	"fmt"
	"strings"
)

// String renders the automaton tables in ascending state order.
func (a *Automaton) String() string {
	var b strings.Builder
	b.WriteString("Automaton {\n")
	fmt.Fprintf(&b, "  States: %d\n", a.numStates)
	fmt.Fprintf(&b, "  Start: %d\n", a.start)
	fmt.Fprintf(&b, "  Accepting: %s\n", formatStates(a.Accepting()))

	b.WriteString("  Epsilon:\n")
	for i := 0; i < a.numStates; i++ {
		if len(a.epsilon[i]) == 0 {
			continue
		}
		fmt.Fprintf(&b, "    %d -> %s\n", i, formatStates(a.epsilon[i]))
	}

	b.WriteString("  Transitions:\n")
	for i := 0; i < a.numStates; i++ {
		for _, e := range a.labeled[i] {
			fmt.Fprintf(&b, "    %d --%q--> %d\n", i, e.Literal, e.To)
		}
	}
	b.WriteString("}\n")
	return b.String()
}

func formatStates(states []State) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = fmt.Sprint(int(s))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
