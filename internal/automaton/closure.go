package automaton

// stateSet is a sparse set over the states of one automaton. Insertion order
// is kept in dense, which doubles as the worklist for closure computation.
type stateSet struct {
	dense  []State
	sparse []int
}

func newStateSet(capacity int) *stateSet {
	return &stateSet{
		dense:  make([]State, 0, capacity),
		sparse: make([]int, capacity),
	}
}

func (s *stateSet) contains(st State) bool {
	i := s.sparse[st]
	return i < len(s.dense) && s.dense[i] == st
}

// add inserts st and reports whether it was not already present.
func (s *stateSet) add(st State) bool {
	if s.contains(st) {
		return false
	}
	s.sparse[st] = len(s.dense)
	s.dense = append(s.dense, st)
	return true
}

func (s *stateSet) clear() {
	s.dense = s.dense[:0]
}

// closeOver extends set with every state reachable through epsilon edges.
// Each state enters the worklist at most once, so the loop terminates even
// when epsilon edges form cycles.
func (a *Automaton) closeOver(set *stateSet) {
	for i := 0; i < len(set.dense); i++ {
		for _, t := range a.epsilon[set.dense[i]] {
			set.add(t)
		}
	}
}

// Closure returns the epsilon-closure of states, in discovery order.
func (a *Automaton) Closure(states []State) []State {
	a.mustBeWellFormed()
	set := newStateSet(a.numStates)
	for _, s := range states {
		if a.valid(s) {
			set.add(s)
		}
	}
	a.closeOver(set)
	out := make([]State, len(set.dense))
	copy(out, set.dense)
	return out
}
