// Command enfa compiles a pattern into an ε-NFA and matches candidates
// against it.
//
// Usage:
//
//	enfa -pattern 'a+(b|c)*' -input ab -input acb
//	echo abc | enfa -pattern 'a+(b|c)*'
//	enfa -pattern 'a|b' -dot graph.dot -json nfa.json
//	enfa -load nfa.json -input a
//	enfa -pattern 'hello|hi' -gen greeting.go -name Greeting -package greet
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KromDaniel/enfa/internal/automaton"
	"github.com/KromDaniel/enfa/internal/codegen"
	"github.com/KromDaniel/enfa/internal/compiler"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cast"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// verboseEnv enables verbose output when set to a truthy value.
const verboseEnv = "ENFA_VERBOSE"

// arrayFlags allows multiple values for the same flag.
type arrayFlags []string

func (a *arrayFlags) String() string {
	return strings.Join(*a, ", ")
}

func (a *arrayFlags) Set(value string) error {
	*a = append(*a, value)
	return nil
}

type options struct {
	pattern  string
	inputs   arrayFlags
	load     string
	postfix  bool
	dump     bool
	dotFile  string
	jsonFile string
	genFile  string
	name     string
	pkg      string
	verbose  bool
}

// artifactsOnly reports whether the invocation only asks for derived output,
// in which case stdin is not read for candidates.
func (o *options) artifactsOnly() bool {
	return o.postfix || o.dump || o.dotFile != "" || o.jsonFile != "" || o.genFile != ""
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet("enfa", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.pattern, "pattern", "", "Pattern to compile")
	fs.Var(&opts.inputs, "input", "Candidate string to match (can be repeated)")
	fs.StringVar(&opts.load, "load", "", "Load the automaton from a JSON definition instead of compiling")
	fs.BoolVar(&opts.postfix, "postfix", false, "Print the postfix form of the pattern")
	fs.BoolVar(&opts.dump, "dump", false, "Print the automaton")
	fs.StringVar(&opts.dotFile, "dot", "", "Write a Graphviz rendering to `file`")
	fs.StringVar(&opts.jsonFile, "json", "", "Write the JSON definition to `file`")
	fs.StringVar(&opts.genFile, "gen", "", "Write a generated Go matcher to `file`")
	fs.StringVar(&opts.name, "name", "", "Type name for generated code (required with -gen)")
	fs.StringVar(&opts.pkg, "package", "main", "Package name for generated code")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose output")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: enfa (-pattern PATTERN | -load FILE) [options]\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	opts.verbose = opts.verbose || cast.ToBool(os.Getenv(verboseEnv))

	if err := validate(fs, &opts); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		fs.Usage()
		return exitUsage
	}

	logger := compiler.NewLogger(opts.verbose)
	logger.SetOutput(stderr)

	a, err := loadAutomaton(&opts, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	if err := writeArtifacts(&opts, a, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	candidates := []string(opts.inputs)
	if len(candidates) == 0 && opts.artifactsOnly() {
		return exitOK
	}

	matchOne := func(candidate string) {
		logger.Section(fmt.Sprintf("Match %q", candidate))
		ok := a.MatchTrace(candidate, func(pos int, frontier []automaton.State) {
			logger.Log("offset %d: %v", pos, frontier)
		})
		fmt.Fprintf(stdout, "%q: %t\n", candidate, ok)
	}

	if len(candidates) > 0 {
		for _, c := range candidates {
			matchOne(c)
		}
		return exitOK
	}

	if err := matchLines(stdin, stdout, matchOne); err != nil {
		fmt.Fprintf(stderr, "Error: failed to read input: %v\n", err)
		return exitError
	}
	return exitOK
}

func validate(fs *flag.FlagSet, opts *options) error {
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	patternSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "pattern" {
			patternSet = true
		}
	})
	if patternSet == (opts.load != "") {
		return errors.New("exactly one of -pattern or -load is required")
	}
	if opts.postfix && !patternSet {
		return errors.New("-postfix requires -pattern")
	}
	if opts.genFile != "" && opts.name == "" {
		return errors.New("-gen requires -name")
	}
	return nil
}

func loadAutomaton(opts *options, stdout, stderr io.Writer) (*automaton.Automaton, error) {
	if opts.load != "" {
		data, err := os.ReadFile(opts.load)
		if err != nil {
			return nil, fmt.Errorf("failed to read definition: %w", err)
		}
		return automaton.ParseDefinition(data)
	}

	c := compiler.New(compiler.Config{
		Pattern:   opts.pattern,
		Verbose:   opts.verbose,
		LogOutput: stderr,
	})
	if opts.postfix {
		postfix, err := c.Postfix()
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(stdout, "Postfix: %s\n", compiler.FormatTokens(postfix))
	}
	return c.Compile()
}

func writeArtifacts(opts *options, a *automaton.Automaton, stdout io.Writer) error {
	if opts.dump {
		fmt.Fprintln(stdout, a.String())
	}

	if opts.dotFile != "" {
		if err := writeFile(opts.dotFile, func(w io.Writer) error {
			return automaton.WriteDOT(w, a)
		}); err != nil {
			return fmt.Errorf("failed to write DOT: %w", err)
		}
	}

	if opts.jsonFile != "" {
		data, err := automaton.MarshalDefinition(a)
		if err != nil {
			return fmt.Errorf("failed to encode automaton: %w", err)
		}
		if err := os.WriteFile(opts.jsonFile, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write JSON: %w", err)
		}
	}

	if opts.genFile != "" {
		g, err := codegen.NewGenerator(a, codegen.Config{
			Pattern: opts.pattern,
			Name:    opts.name,
			Package: opts.pkg,
		})
		if err != nil {
			return fmt.Errorf("invalid generator options: %w", err)
		}
		if err := g.Save(opts.genFile); err != nil {
			return fmt.Errorf("failed to save file: %w", err)
		}
		fmt.Fprintf(stdout, "Generated %s\n", opts.genFile)
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// matchLines matches every line of r. A prompt is printed before each line
// when r is an interactive terminal.
func matchLines(r io.Reader, stdout io.Writer, match func(string)) error {
	interactive := false
	if f, ok := r.(*os.File); ok {
		interactive = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for {
		if interactive {
			fmt.Fprint(stdout, "text> ")
		}
		if !scanner.Scan() {
			break
		}
		match(strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if interactive {
		fmt.Fprintln(stdout)
	}
	return scanner.Err()
}
