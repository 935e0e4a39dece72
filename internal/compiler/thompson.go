package compiler

import (
	"fmt"

	"github.com/KromDaniel/enfa/internal/automaton"
)

// fragment is a partial automaton with one entry and one exit state.
// Operators only add states and edges around fragments; the edges inside a
// fragment are never rewritten once it has been pushed.
type fragment struct {
	entry, exit automaton.State
}

// ThompsonBuilder performs Thompson construction over a postfix token
// sequence. Each builder owns its own automaton.Builder, so state ids are
// scoped to a single compilation.
type ThompsonBuilder struct {
	b      *automaton.Builder
	stack  []fragment
	logger *Logger
}

// NewThompsonBuilder creates a builder that logs fragment operations to logger.
// A nil logger disables logging.
func NewThompsonBuilder(logger *Logger) *ThompsonBuilder {
	if logger == nil {
		logger = NewLogger(false)
	}
	return &ThompsonBuilder{
		b:      automaton.NewBuilder(),
		logger: logger,
	}
}

// Build constructs the automaton for postfix. It must be called at most once.
func (t *ThompsonBuilder) Build(postfix []Token) (*automaton.Automaton, error) {
	for _, tok := range postfix {
		var err error
		switch tok.Kind {
		case Literal:
			t.literal(tok)
		case Concat:
			err = t.concat(tok)
		case Alternate:
			err = t.alternate(tok)
		case Star:
			err = t.star(tok)
		default:
			return nil, fmt.Errorf("compiler: %s token in postfix sequence", tok.Kind)
		}
		if err != nil {
			return nil, err
		}
	}

	if len(t.stack) != 1 {
		return nil, newError(TrailingOperators, -1,
			"%d sub-expressions left after construction, want 1", len(t.stack))
	}

	whole := t.stack[0]
	t.stack = nil
	t.logger.Log("Start state: %d, accepting state: %d, states: %d", whole.entry, whole.exit, t.b.NumStates())
	return t.b.Build(whole.entry, whole.exit)
}

// BuildEmpty constructs the automaton for an empty pattern: one state that is
// both start and accepting, so only the empty string matches.
func (t *ThompsonBuilder) BuildEmpty() (*automaton.Automaton, error) {
	s := t.b.NewState()
	t.logger.Log("Empty pattern: single state %d", s)
	return t.b.Build(s, s)
}

func (t *ThompsonBuilder) push(f fragment) {
	t.stack = append(t.stack, f)
}

func (t *ThompsonBuilder) pop() fragment {
	f := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	return f
}

func (t *ThompsonBuilder) literal(tok Token) {
	entry, exit := t.b.NewState(), t.b.NewState()
	t.b.AddTransition(entry, tok.Text, exit)
	t.logger.Log("Literal %q: %d -> %d", tok.Text, entry, exit)
	t.push(fragment{entry: entry, exit: exit})
}

func (t *ThompsonBuilder) concat(tok Token) error {
	if len(t.stack) < 2 {
		return newError(EmptyOperand, tok.Offset, "'+' needs two operands, found %d", len(t.stack))
	}
	right := t.pop()
	left := t.pop()
	t.b.AddEpsilon(left.exit, right.entry)
	t.logger.Log("Concat: (%d,%d) + (%d,%d)", left.entry, left.exit, right.entry, right.exit)
	t.push(fragment{entry: left.entry, exit: right.exit})
	return nil
}

func (t *ThompsonBuilder) alternate(tok Token) error {
	if len(t.stack) < 2 {
		return newError(EmptyOperand, tok.Offset, "'|' needs two operands, found %d", len(t.stack))
	}
	right := t.pop()
	left := t.pop()
	entry, exit := t.b.NewState(), t.b.NewState()
	t.b.AddEpsilon(entry, left.entry)
	t.b.AddEpsilon(entry, right.entry)
	t.b.AddEpsilon(left.exit, exit)
	t.b.AddEpsilon(right.exit, exit)
	t.logger.Log("Alternate: (%d,%d) | (%d,%d) -> (%d,%d)",
		left.entry, left.exit, right.entry, right.exit, entry, exit)
	t.push(fragment{entry: entry, exit: exit})
	return nil
}

func (t *ThompsonBuilder) star(tok Token) error {
	if len(t.stack) < 1 {
		return newError(EmptyOperand, tok.Offset, "'*' has nothing to repeat")
	}
	x := t.pop()
	entry, exit := t.b.NewState(), t.b.NewState()
	t.b.AddEpsilon(entry, x.entry)
	t.b.AddEpsilon(entry, exit)
	t.b.AddEpsilon(x.exit, x.entry)
	t.b.AddEpsilon(x.exit, exit)
	t.logger.Log("Star: (%d,%d) -> (%d,%d)", x.entry, x.exit, entry, exit)
	t.push(fragment{entry: entry, exit: exit})
	return nil
}
