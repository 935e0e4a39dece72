// Package enfa compiles a small pattern language into an ε-NFA and matches
// complete strings against it.
//
// The grammar has literal runs, '+' for concatenation, '|' for alternation,
// postfix '*' for Kleene star and parentheses for grouping. A literal run is
// matched as one unit: "ab|c" accepts "ab" and "c".
//
// Example:
//
//	a, err := enfa.Compile("a+(b|c)*+d")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(enfa.Matches(a, "abcbd")) // true
package enfa

import (
	"fmt"
	"io"

	"github.com/KromDaniel/enfa/internal/automaton"
	"github.com/KromDaniel/enfa/internal/compiler"
)

// Automaton is a compiled pattern. It is immutable and safe for concurrent use.
type Automaton = automaton.Automaton

// State identifies a state of an Automaton.
type State = automaton.State

// CompileError describes why a pattern was rejected.
type CompileError = compiler.CompileError

// ErrorKind classifies a CompileError.
type ErrorKind = compiler.ErrorKind

// Compile error kinds.
const (
	UnmatchedParenthesis = compiler.UnmatchedParenthesis
	EmptyOperand         = compiler.EmptyOperand
	TrailingOperators    = compiler.TrailingOperators
)

// Sentinel errors for use with errors.Is.
var (
	ErrUnmatchedParenthesis = compiler.ErrUnmatchedParenthesis
	ErrEmptyOperand         = compiler.ErrEmptyOperand
	ErrTrailingOperators    = compiler.ErrTrailingOperators
)

// Options configures the compilation process.
type Options struct {
	// Pattern is the expression to compile. An empty pattern matches only "".
	Pattern string

	// Verbose logs every pipeline stage.
	Verbose bool

	// LogOutput receives verbose output (default: stderr).
	LogOutput io.Writer
}

// Compile compiles pattern into an automaton.
func Compile(pattern string) (*Automaton, error) {
	return CompileWithOptions(Options{Pattern: pattern})
}

// MustCompile is like Compile but panics if the pattern is invalid.
func MustCompile(pattern string) *Automaton {
	a, err := Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("enfa: Compile(%q): %v", pattern, err))
	}
	return a
}

// CompileWithOptions compiles opts.Pattern with the given options.
func CompileWithOptions(opts Options) (*Automaton, error) {
	return compiler.New(compiler.Config{
		Pattern:   opts.Pattern,
		Verbose:   opts.Verbose,
		LogOutput: opts.LogOutput,
	}).Compile()
}

// Matches reports whether a accepts the whole of candidate.
func Matches(a *Automaton, candidate string) bool {
	return a.Match(candidate)
}

// Postfix returns the postfix form of pattern with tokens separated by spaces.
func Postfix(pattern string) (string, error) {
	tokens, err := compiler.New(compiler.Config{Pattern: pattern}).Postfix()
	if err != nil {
		return "", err
	}
	return compiler.FormatTokens(tokens), nil
}
