package compiler

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/KromDaniel/enfa/internal/automaton"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []Token
	}{
		{"empty", "", []Token{}},
		{"single literal", "a", []Token{{Literal, "a", 0}}},
		{"literal run", "hello world", []Token{{Literal, "hello world", 0}}},
		{"concat", "ab+c", []Token{{Literal, "ab", 0}, {Concat, "+", 2}, {Literal, "c", 3}}},
		{"grouping", "a+(bc|d)*", []Token{
			{Literal, "a", 0}, {Concat, "+", 1}, {LParen, "(", 2}, {Literal, "bc", 3},
			{Alternate, "|", 5}, {Literal, "d", 6}, {RParen, ")", 7}, {Star, "*", 8},
		}},
		{"newline in literal", "a\nb|c", []Token{{Literal, "a\nb", 0}, {Alternate, "|", 3}, {Literal, "c", 4}}},
		{"multibyte", "αβ|γ", []Token{{Literal, "αβ", 0}, {Alternate, "|", 4}, {Literal, "γ", 5}}},
		{"operators only", "()*", []Token{{LParen, "(", 0}, {RParen, ")", 1}, {Star, "*", 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(tt.pattern)
			if len(got) != len(tt.want) {
				t.Fatalf("Segment(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Segment(%q)[%d] = %+v, want %+v", tt.pattern, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestToPostfix(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"a", "a"},
		{"a+b", "a b +"},
		{"a+b+c", "a b + c +"},
		{"a|b|c", "a b | c |"},
		{"a|b+c", "a b c + |"},
		{"a+b|c", "a b + c |"},
		{"(a|b)+c", "a b | c +"},
		{"a+b*", "a b * +"},
		{"(a+b)*", "a b + *"},
		{"a**", "a * *"},
		{"ab+(c|d)*", "ab c d | * +"},
		{"((a))", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			postfix, err := ToPostfix(Segment(tt.pattern))
			if err != nil {
				t.Fatalf("ToPostfix(%q) error: %v", tt.pattern, err)
			}
			if got := FormatTokens(postfix); got != tt.want {
				t.Errorf("ToPostfix(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestFormatTokensQuotesAmbiguousLiterals(t *testing.T) {
	got := FormatTokens(Segment(`say "hi"|x`))
	want := `"say \"hi\"" | x`
	if got != want {
		t.Errorf("FormatTokens = %q, want %q", got, want)
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		pattern    string
		kind       ErrorKind
		sentinel   error
		wantOffset int
	}{
		{"(a+b", UnmatchedParenthesis, ErrUnmatchedParenthesis, 0},
		{"a+b)", UnmatchedParenthesis, ErrUnmatchedParenthesis, 3},
		{")(", UnmatchedParenthesis, ErrUnmatchedParenthesis, 0},
		{"((a)", UnmatchedParenthesis, ErrUnmatchedParenthesis, 0},
		{"+", EmptyOperand, ErrEmptyOperand, 0},
		{"a+", EmptyOperand, ErrEmptyOperand, 1},
		{"|b", EmptyOperand, ErrEmptyOperand, 0},
		{"*", EmptyOperand, ErrEmptyOperand, 0},
		{"a|*b", EmptyOperand, ErrEmptyOperand, 2},
		{"(*a)", EmptyOperand, ErrEmptyOperand, 1},
		{"()*", EmptyOperand, ErrEmptyOperand, 2},
		{"a+|b", EmptyOperand, ErrEmptyOperand, 1},
		{"a(b)", TrailingOperators, ErrTrailingOperators, -1},
		{"a*b", TrailingOperators, ErrTrailingOperators, -1},
		{"()", TrailingOperators, ErrTrailingOperators, -1},
		{"(a)(b)", TrailingOperators, ErrTrailingOperators, -1},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			a, err := Compile(tt.pattern)
			if err == nil {
				t.Fatalf("Compile(%q) succeeded with %d states, want error", tt.pattern, a.NumStates())
			}
			var ce *CompileError
			if !errors.As(err, &ce) {
				t.Fatalf("Compile(%q) error %T is not *CompileError", tt.pattern, err)
			}
			if ce.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", ce.Kind, tt.kind)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.sentinel)
			}
			if ce.Offset != tt.wantOffset {
				t.Errorf("Offset = %d, want %d", ce.Offset, tt.wantOffset)
			}
			if ce.Pattern != tt.pattern {
				t.Errorf("Pattern = %q, want %q", ce.Pattern, tt.pattern)
			}
			if !strings.Contains(err.Error(), tt.pattern) {
				t.Errorf("Error() = %q does not mention the pattern", err.Error())
			}
		})
	}
}

func TestThompsonShapes(t *testing.T) {
	tests := []struct {
		pattern   string
		states    int
		labeled   int
		epsilon   int
		start     automaton.State
		accepting automaton.State
	}{
		{"", 1, 0, 0, 0, 0},
		{"abc", 2, 1, 0, 0, 1},
		{"a+b", 4, 2, 1, 0, 3},
		{"a|b", 6, 2, 4, 4, 5},
		{"a*", 4, 1, 4, 2, 3},
		{"(a*)*", 6, 1, 8, 4, 5},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			a, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile(%q): %v", tt.pattern, err)
			}
			labeled, eps := a.NumTransitions()
			if a.NumStates() != tt.states || labeled != tt.labeled || eps != tt.epsilon {
				t.Errorf("shape = (%d states, %d labeled, %d epsilon), want (%d, %d, %d)",
					a.NumStates(), labeled, eps, tt.states, tt.labeled, tt.epsilon)
			}
			if a.Start() != tt.start {
				t.Errorf("Start() = %d, want %d", a.Start(), tt.start)
			}
			acc := a.Accepting()
			if len(acc) != 1 || acc[0] != tt.accepting {
				t.Errorf("Accepting() = %v, want [%d]", acc, tt.accepting)
			}
		})
	}
}

func TestThompsonKeepsFragmentsIntact(t *testing.T) {
	// The literal fragment for "a" is built first; wrapping it in star and
	// concatenation must leave its own edge untouched.
	a, err := Compile("a*+b")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if got := a.Targets(0, "a"); len(got) != 1 || got[0] != 1 {
		t.Errorf("Targets(0, a) = %v, want [1]", got)
	}
	if eps := a.EpsilonFrom(0); len(eps) != 0 {
		t.Errorf("literal entry gained epsilon edges: %v", eps)
	}
}

func TestStateIDsAreScopedPerCompilation(t *testing.T) {
	first, err := Compile("x|y")
	if err != nil {
		t.Fatal(err)
	}
	second, err := Compile("x|y")
	if err != nil {
		t.Fatal(err)
	}
	if first.Start() != second.Start() || first.NumStates() != second.NumStates() {
		t.Errorf("repeated compilation numbered states differently: start %d/%d, states %d/%d",
			first.Start(), second.Start(), first.NumStates(), second.NumStates())
	}
	if first.String() != second.String() {
		t.Errorf("repeated compilation differs:\n%s\n%s", first, second)
	}
}

func TestVerboseLogging(t *testing.T) {
	var buf bytes.Buffer
	c := New(Config{Pattern: "a+(b|c)", Verbose: true, LogOutput: &buf})
	if _, err := c.Compile(); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"[enfa] === Segmentation ===",
		"[enfa] Tokens (7): a + ( b | c )",
		"[enfa] === Postfix Translation ===",
		"[enfa] Postfix: a b c | +",
		"[enfa] === Thompson Construction ===",
		"[enfa] Automaton: 8 states",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose output missing %q:\n%s", want, out)
		}
	}
}

func TestLoggerDisabled(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(false)
	l.SetOutput(&buf)
	l.Section("x")
	l.Log("y %d", 1)
	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote %q", buf.String())
	}
	if l.Enabled() {
		t.Error("Enabled() = true, want false")
	}
}

func TestCompileMatches(t *testing.T) {
	tests := []struct {
		pattern string
		accept  []string
		reject  []string
	}{
		{"a", []string{"a"}, []string{"b", ""}},
		{"a+b", []string{"ab"}, []string{"a", "b", "ba", "abc"}},
		{"a|b", []string{"a", "b"}, []string{"ab", "c"}},
		{"a+(b|c)+d", []string{"abd", "acd"}, []string{"ad", "abe"}},
		{"a*", []string{"", "a", "aaaa"}, []string{"b", "ab"}},
		{"ab*", []string{"", "ab", "abab"}, []string{"a", "abb"}},
		{"", []string{""}, []string{"a"}},
		{"(a|bc)*+d", []string{"d", "ad", "bcad", "abcbcd"}, []string{"bd", "a", "dd"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			a, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile(%q): %v", tt.pattern, err)
			}
			for _, s := range tt.accept {
				if !a.Match(s) {
					t.Errorf("Match(%q) = false, want true", s)
				}
			}
			for _, s := range tt.reject {
				if a.Match(s) {
					t.Errorf("Match(%q) = true, want false", s)
				}
			}
		})
	}
}
