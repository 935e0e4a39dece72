package enfa

import (
	"fmt"
	"strings"

	"github.com/KromDaniel/enfa/internal/codegen"
)

// GenerateOptions configures Go code generation for a pattern.
type GenerateOptions struct {
	// Pattern is the expression to compile
	Pattern string

	// Name is the generated type name (e.g., "Greeting" generates "Greeting.MatchString")
	Name string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// Package is the Go package name for the generated code
	Package string

	// Verbose logs the compilation stages
	Verbose bool

	// GenerateTestFile writes a _test.go file next to OutputFile (default: true if TestFileInputs provided)
	GenerateTestFile bool

	// TestFileInputs are the inputs checked by the generated test file. If empty and GenerateTestFile is true, defaults to []string{"example"}
	TestFileInputs []string
}

// Validate checks if the options are valid.
func (o GenerateOptions) Validate() error {
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	return nil
}

// Generate compiles the pattern and writes a standalone Go matcher for it.
// The generated type has MatchString and MatchBytes methods with the same
// semantics as Matches.
func Generate(opts GenerateOptions) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	a, err := CompileWithOptions(Options{Pattern: opts.Pattern, Verbose: opts.Verbose})
	if err != nil {
		return fmt.Errorf("failed to compile pattern: %w", err)
	}

	g, err := codegen.NewGenerator(a, codegen.Config{
		Pattern: opts.Pattern,
		Name:    opts.Name,
		Package: opts.Package,
	})
	if err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	if err := g.Save(opts.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	if opts.GenerateTestFile || len(opts.TestFileInputs) > 0 {
		if err := g.SaveTest(TestFileName(opts.OutputFile), opts.TestFileInputs); err != nil {
			return fmt.Errorf("failed to save test file: %w", err)
		}
	}
	return nil
}

// TestFileName returns the path of the test file generated for outputFile.
func TestFileName(outputFile string) string {
	return strings.TrimSuffix(outputFile, ".go") + "_test.go"
}
