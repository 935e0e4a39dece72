package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestArrayFlagsString(t *testing.T) {
	tests := []struct {
		name     string
		flags    arrayFlags
		expected string
	}{
		{
			name:     "empty",
			flags:    arrayFlags{},
			expected: "",
		},
		{
			name:     "single",
			flags:    arrayFlags{"ab"},
			expected: "ab",
		},
		{
			name:     "multiple",
			flags:    arrayFlags{"ab", "a|b", "(c)*"},
			expected: "ab, a|b, (c)*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.flags.String()
			if result != tt.expected {
				t.Errorf("String() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestArrayFlagsSet(t *testing.T) {
	var flags arrayFlags

	if err := flags.Set("abc"); err != nil {
		t.Errorf("Set() returned error: %v", err)
	}
	if len(flags) != 1 || flags[0] != "abc" {
		t.Errorf("Set() = %v, want [\"abc\"]", flags)
	}

	if err := flags.Set(""); err != nil {
		t.Errorf("Set() returned error: %v", err)
	}
	if len(flags) != 2 || flags[1] != "" {
		t.Errorf("Set() = %v, want [\"abc\", \"\"]", flags)
	}
}

func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunInputs(t *testing.T) {
	code, out, _ := runCLI(t, "", "-pattern", "a+(b|c)+d", "-input", "abd", "-input", "ad")
	if code != exitOK {
		t.Fatalf("exit code = %d, want %d", code, exitOK)
	}
	want := "\"abd\": true\n\"ad\": false\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestRunReadsStdinLines(t *testing.T) {
	code, out, _ := runCLI(t, "\na\naaa\r\nab\n", "-pattern", "a*")
	if code != exitOK {
		t.Fatalf("exit code = %d, want %d", code, exitOK)
	}
	want := "\"\": true\n\"a\": true\n\"aaa\": true\n\"ab\": false\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
	if strings.Contains(out, "text>") {
		t.Error("prompt printed for non-terminal input")
	}
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no pattern", []string{"-input", "a"}},
		{"pattern and load", []string{"-pattern", "a", "-load", "x.json"}},
		{"gen without name", []string{"-pattern", "a", "-gen", "out.go"}},
		{"postfix with load", []string{"-load", "x.json", "-postfix"}},
		{"unknown flag", []string{"-pattern", "a", "-bogus"}},
		{"extra args", []string{"-pattern", "a", "stray"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := runCLI(t, "", tt.args...)
			if code != exitUsage {
				t.Errorf("exit code = %d, want %d", code, exitUsage)
			}
		})
	}
}

func TestRunCompileError(t *testing.T) {
	code, out, errOut := runCLI(t, "", "-pattern", "(a+b", "-input", "ab")
	if code != exitError {
		t.Fatalf("exit code = %d, want %d", code, exitError)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}
	if !strings.Contains(errOut, "unmatched parenthesis") {
		t.Errorf("stderr = %q, want unmatched parenthesis message", errOut)
	}
}

func TestRunEmptyPattern(t *testing.T) {
	code, out, _ := runCLI(t, "", "-pattern", "", "-input", "", "-input", "a")
	if code != exitOK {
		t.Fatalf("exit code = %d, want %d", code, exitOK)
	}
	if want := "\"\": true\n\"a\": false\n"; out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestRunPostfixAndDump(t *testing.T) {
	code, out, _ := runCLI(t, "", "-pattern", "a+(b|c)*", "-postfix", "-dump")
	if code != exitOK {
		t.Fatalf("exit code = %d, want %d", code, exitOK)
	}
	for _, want := range []string{"Postfix: a b c | * +", "Automaton {", "Transitions:"} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout missing %q:\n%s", want, out)
		}
	}
}

func TestRunArtifactsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	jsonFile := filepath.Join(dir, "nfa.json")
	dotFile := filepath.Join(dir, "nfa.dot")
	genFile := filepath.Join(dir, "greeting.go")

	code, _, errOut := runCLI(t, "",
		"-pattern", "hello|hi", "-json", jsonFile, "-dot", dotFile,
		"-gen", genFile, "-name", "Greeting", "-package", "greet")
	if code != exitOK {
		t.Fatalf("exit code = %d, want %d; stderr: %s", code, exitOK, errOut)
	}

	dot, err := os.ReadFile(dotFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(dot), "digraph enfa {") {
		t.Errorf("DOT output = %q", dot)
	}

	gen, err := os.ReadFile(genFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(gen), "package greet") {
		t.Errorf("generated file missing package clause:\n%s", gen)
	}

	code, out, errOut := runCLI(t, "", "-load", jsonFile, "-input", "hi", "-input", "hey")
	if code != exitOK {
		t.Fatalf("load exit code = %d; stderr: %s", code, errOut)
	}
	if want := "\"hi\": true\n\"hey\": false\n"; out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestRunLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"start":3,"states":[{"state":0,"accepting":true}]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{bad, filepath.Join(dir, "missing.json")} {
		code, _, _ := runCLI(t, "", "-load", path, "-input", "a")
		if code != exitError {
			t.Errorf("-load %s: exit code = %d, want %d", path, code, exitError)
		}
	}
}

func TestRunVerboseFromEnvironment(t *testing.T) {
	t.Setenv(verboseEnv, "true")
	code, _, errOut := runCLI(t, "", "-pattern", "a*", "-input", "aa")
	if code != exitOK {
		t.Fatalf("exit code = %d, want %d", code, exitOK)
	}
	for _, want := range []string{"[enfa] === Thompson Construction ===", "offset 2:"} {
		if !strings.Contains(errOut, want) {
			t.Errorf("stderr missing %q:\n%s", want, errOut)
		}
	}
}

func TestRunQuiet(t *testing.T) {
	t.Setenv(verboseEnv, "0")
	_, _, errOut := runCLI(t, "", "-pattern", "a*", "-input", "aa")
	if errOut != "" {
		t.Errorf("stderr = %q, want empty", errOut)
	}
}
