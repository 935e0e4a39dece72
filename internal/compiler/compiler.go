// Package compiler turns a pattern into an ε-NFA: segmentation, postfix
// translation and Thompson construction.
package compiler

import (
	"errors"
	"io"

	"github.com/KromDaniel/enfa/internal/automaton"
)

// Config holds the configuration for a single compilation.
type Config struct {
	Pattern   string
	Verbose   bool      // Log each pipeline stage
	LogOutput io.Writer // Destination for verbose output (default: stderr)
}

// Compiler compiles one pattern. It holds no state shared with other
// compilers and may be discarded after Compile returns.
type Compiler struct {
	config Config
	logger *Logger
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	logger := NewLogger(config.Verbose)
	if config.LogOutput != nil {
		logger.SetOutput(config.LogOutput)
	}
	return &Compiler{
		config: config,
		logger: logger,
	}
}

// Logger returns the compiler's verbose logger.
func (c *Compiler) Logger() *Logger {
	return c.logger
}

// Tokens segments the pattern.
func (c *Compiler) Tokens() []Token {
	c.logger.Section("Segmentation")
	c.logger.Log("Pattern: %q", c.config.Pattern)
	tokens := Segment(c.config.Pattern)
	c.logger.Log("Tokens (%d): %s", len(tokens), FormatTokens(tokens))
	return tokens
}

// Postfix segments the pattern and translates it to postfix order.
func (c *Compiler) Postfix() ([]Token, error) {
	return c.postfix(c.Tokens())
}

func (c *Compiler) postfix(tokens []Token) ([]Token, error) {
	c.logger.Section("Postfix Translation")
	postfix, err := ToPostfix(tokens)
	if err != nil {
		return nil, c.annotate(err)
	}
	c.logger.Log("Postfix: %s", FormatTokens(postfix))
	return postfix, nil
}

// Compile runs the whole pipeline and returns the automaton.
func (c *Compiler) Compile() (*automaton.Automaton, error) {
	tokens := c.Tokens()

	tb := NewThompsonBuilder(c.logger)
	if len(tokens) == 0 {
		c.logger.Section("Thompson Construction")
		return tb.BuildEmpty()
	}

	postfix, err := c.postfix(tokens)
	if err != nil {
		return nil, err
	}

	c.logger.Section("Thompson Construction")
	a, err := tb.Build(postfix)
	if err != nil {
		return nil, c.annotate(err)
	}
	labeled, eps := a.NumTransitions()
	c.logger.Log("Automaton: %d states, %d labeled transitions, %d epsilon transitions",
		a.NumStates(), labeled, eps)
	return a, nil
}

// annotate fills in the pattern on compile errors.
func (c *Compiler) annotate(err error) error {
	var ce *CompileError
	if errors.As(err, &ce) {
		ce.Pattern = c.config.Pattern
	}
	return err
}

// Compile compiles pattern with default settings.
func Compile(pattern string) (*automaton.Automaton, error) {
	return New(Config{Pattern: pattern}).Compile()
}
