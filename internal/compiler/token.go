package compiler

import "strings"

// Kind classifies a pattern token.
type Kind int

const (
	Literal   Kind = iota // run of non-operator characters
	Concat                // +
	Alternate             // |
	Star                  // *
	LParen                // (
	RParen                // )
)

var kindNames = [...]string{
	Literal:   "Literal",
	Concat:    "Concat",
	Alternate: "Alternate",
	Star:      "Star",
	LParen:    "LParen",
	RParen:    "RParen",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(?)"
	}
	return kindNames[k]
}

// Token is one segment of a pattern. Text holds the literal run for
// Literal tokens and the operator character otherwise. Offset is the byte
// offset of the token in the pattern.
type Token struct {
	Kind   Kind
	Text   string
	Offset int
}

func (t Token) String() string {
	if t.Kind == Literal {
		return t.Text
	}
	return operatorText[t.Kind]
}

var operatorText = map[Kind]string{
	Concat:    "+",
	Alternate: "|",
	Star:      "*",
	LParen:    "(",
	RParen:    ")",
}

var operatorKinds = map[string]Kind{
	"+": Concat,
	"|": Alternate,
	"*": Star,
	"(": LParen,
	")": RParen,
}

// precedence returns the binding strength of operator kinds.
// Grouping markers and literals return 0.
func (k Kind) precedence() int {
	switch k {
	case Star:
		return 3
	case Concat:
		return 2
	case Alternate:
		return 1
	default:
		return 0
	}
}

// FormatTokens renders tokens separated by single spaces, quoting literals
// that would otherwise be ambiguous.
func FormatTokens(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		if t.Kind == Literal && strings.ContainsAny(t.Text, " \t\n\"") {
			parts[i] = `"` + strings.ReplaceAll(t.Text, `"`, `\"`) + `"`
			continue
		}
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
