package automaton

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteDOT writes a Graphviz description of a to w.
func WriteDOT(w io.Writer, a *Automaton) error {
	a.mustBeWellFormed()

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph enfa {")
	fmt.Fprintln(bw, "    rankdir=LR;")
	for i := 0; i < a.numStates; i++ {
		shape := "circle"
		if a.accepting[i] {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    q%d [shape=%s];\n", i, shape)
	}
	for i := 0; i < a.numStates; i++ {
		for _, t := range a.epsilon[i] {
			fmt.Fprintf(bw, "    q%d -> q%d [label=\"ε\"];\n", i, t)
		}
		for _, e := range a.labeled[i] {
			fmt.Fprintf(bw, "    q%d -> q%d [label=\"%s\"];\n", i, e.To, dotEscape(e.Literal))
		}
	}
	fmt.Fprintf(bw, "    _start [shape=point]; _start -> q%d;\n", a.start)
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

var dotReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func dotEscape(s string) string {
	return dotReplacer.Replace(s)
}
