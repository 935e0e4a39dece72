package automaton

import "strings"

// TraceFunc receives the epsilon-closed frontier reached at byte offset pos.
// The frontier slice is reused between calls.
type TraceFunc func(pos int, frontier []State)

// Match reports whether the automaton accepts the whole of input.
func (a *Automaton) Match(input string) bool {
	return a.MatchTrace(input, nil)
}

// MatchTrace is Match with a callback invoked for every non-empty frontier.
//
// Frontiers are kept per input offset rather than per step because a literal
// edge may consume several bytes at once. Offsets are visited in ascending
// order and every literal is non-empty, so each frontier is complete by the
// time it is processed.
func (a *Automaton) MatchTrace(input string, trace TraceFunc) bool {
	a.mustBeWellFormed()

	n := len(input)
	pending := make([][]State, n+1)
	pending[0] = []State{a.start}
	frontier := newStateSet(a.numStates)

	for pos := 0; pos <= n; pos++ {
		if len(pending[pos]) == 0 {
			continue
		}
		frontier.clear()
		for _, s := range pending[pos] {
			frontier.add(s)
		}
		pending[pos] = nil
		a.closeOver(frontier)

		if trace != nil {
			trace(pos, frontier.dense)
		}

		if pos == n {
			for _, s := range frontier.dense {
				if a.accepting[s] {
					return true
				}
			}
			return false
		}

		rest := input[pos:]
		for _, s := range frontier.dense {
			for _, e := range a.labeled[s] {
				if strings.HasPrefix(rest, e.Literal) {
					next := pos + len(e.Literal)
					pending[next] = append(pending[next], e.To)
				}
			}
		}
	}
	return false
}
