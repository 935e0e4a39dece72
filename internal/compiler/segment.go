package compiler

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// patternLexer splits a pattern into single-character operators and
// maximal literal runs. The two rules together cover every input byte.
var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Operator", Pattern: `[|+*()]`},
	{Name: "Literal", Pattern: `[^|+*()]+`},
})

var (
	operatorType = patternLexer.Symbols()["Operator"]
	literalType  = patternLexer.Symbols()["Literal"]
)

// Segment splits pattern into literal runs and operator/grouping tokens.
// An empty pattern yields no tokens.
func Segment(pattern string) []Token {
	lex, err := patternLexer.LexString("", pattern)
	if err != nil {
		panic(fmt.Sprintf("compiler: segmenting %q: %v", pattern, err))
	}
	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		panic(fmt.Sprintf("compiler: segmenting %q: %v", pattern, err))
	}

	tokens := make([]Token, 0, len(raw))
	for _, t := range raw {
		switch {
		case t.EOF():
			return tokens
		case t.Type == operatorType:
			tokens = append(tokens, Token{Kind: operatorKinds[t.Value], Text: t.Value, Offset: t.Pos.Offset})
		case t.Type == literalType:
			tokens = append(tokens, Token{Kind: Literal, Text: t.Value, Offset: t.Pos.Offset})
		default:
			panic(fmt.Sprintf("compiler: unexpected token type %d in %q", t.Type, pattern))
		}
	}
	return tokens
}
