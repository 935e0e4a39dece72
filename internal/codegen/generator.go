package codegen

import (
	"fmt"
	"go/token"
	"io"

	"github.com/KromDaniel/enfa/internal/automaton"
	"github.com/dave/jennifer/jen"
)

// Config holds the configuration for code generation.
type Config struct {
	Pattern string // Pattern the automaton was compiled from, used in comments
	Name    string // Exported type name, e.g. "Greeting" generates Greeting.MatchString
	Package string // Package clause of the generated file
}

// Validate checks that the names can be used in Go source.
func (c Config) Validate() error {
	if !token.IsIdentifier(c.Name) || !token.IsExported(c.Name) {
		return fmt.Errorf("name %q is not an exported Go identifier", c.Name)
	}
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("package %q is not a Go identifier", c.Package)
	}
	return nil
}

// Generator emits a standalone Go matcher for one automaton. The generated
// code embeds the automaton tables and runs the same per-offset frontier
// simulation as automaton.Match, without depending on this module.
type Generator struct {
	config Config
	a      *automaton.Automaton
	file   *jen.File

	edgeType  string
	startVar  string
	acceptVar string
	epsVar    string
	edgesVar  string
}

// NewGenerator creates a generator for a.
func NewGenerator(a *automaton.Automaton, config Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		config:    config,
		a:         a,
		file:      jen.NewFile(config.Package),
		edgeType:  TableName(config.Name, "edge"),
		startVar:  TableName(config.Name, "start"),
		acceptVar: TableName(config.Name, "accept"),
		epsVar:    TableName(config.Name, "epsilon"),
		edgesVar:  TableName(config.Name, "edges"),
	}, nil
}

// Render generates the file and writes formatted source to w.
func (g *Generator) Render(w io.Writer) error {
	g.generate()
	return g.file.Render(w)
}

// Save generates the file and writes it to path.
func (g *Generator) Save(path string) error {
	g.generate()
	return g.file.Save(path)
}

func (g *Generator) method(name string) *jen.Statement {
	return g.file.Func().
		Params(jen.Id(g.config.Name)).
		Id(name)
}

func (g *Generator) generate() {
	name := g.config.Name
	g.file.HeaderComment(fmt.Sprintf("Code generated by enfa for pattern %q. DO NOT EDIT.", g.config.Pattern))

	g.file.Commentf("%s matches complete inputs against the pattern %q.", name, g.config.Pattern)
	g.file.Type().Id(name).Struct()
	g.file.Line()
	g.file.Var().Id("Compiled" + name).Op("=").Id(name).Values()
	g.file.Line()

	g.generateTables()

	g.file.Commentf("MatchString reports whether the whole of %s is accepted.", InputName)
	g.method("MatchString").
		Params(jen.Id(InputName).String()).
		Params(jen.Bool()).
		Block(g.matchBody(false)...)
	g.file.Line()

	g.file.Commentf("MatchBytes reports whether the whole of %s is accepted.", InputName)
	g.method("MatchBytes").
		Params(jen.Id(InputName).Index().Byte()).
		Params(jen.Bool()).
		Block(g.matchBody(true)...)
}

func (g *Generator) generateTables() {
	a := g.a
	n := a.NumStates()

	g.file.Type().Id(g.edgeType).Struct(
		jen.Id("literal").String(),
		jen.Id("to").Int(),
	)
	g.file.Line()

	accept := make([]jen.Code, n)
	eps := make([]jen.Code, n)
	edges := make([]jen.Code, n)
	for i := 0; i < n; i++ {
		s := automaton.State(i)
		accept[i] = jen.Lit(a.IsAccepting(s))

		targets := a.EpsilonFrom(s)
		row := make([]jen.Code, len(targets))
		for j, t := range targets {
			row[j] = jen.Lit(int(t))
		}
		eps[i] = jen.Values(row...)

		out := a.TransitionsFrom(s)
		erow := make([]jen.Code, len(out))
		for j, e := range out {
			erow[j] = jen.Values(jen.Dict{
				jen.Id("literal"): jen.Lit(e.Literal),
				jen.Id("to"):      jen.Lit(int(e.To)),
			})
		}
		edges[i] = jen.Values(erow...)
	}

	g.file.Var().Defs(
		jen.Id(g.startVar).Op("=").Lit(int(a.Start())),
		jen.Id(g.acceptVar).Op("=").Index(jen.Lit(n)).Bool().Values(accept...),
		jen.Id(g.epsVar).Op("=").Index(jen.Lit(n)).Index().Int().Values(eps...),
		jen.Id(g.edgesVar).Op("=").Index(jen.Lit(n)).Index().Id(g.edgeType).Values(edges...),
	)
	g.file.Line()
}

// matchBody generates the frontier simulation. Positions are visited in
// ascending order and literals are never empty, so every frontier is
// complete before it is expanded.
func (g *Generator) matchBody(isBytes bool) []jen.Code {
	in := jen.Id(InputName)
	l := jen.Id(InputLenName)
	off := jen.Id(OffsetName)
	pending := jen.Id(PendingName)
	seen := jen.Id(SeenName)
	frontier := jen.Id(FrontierName)

	slice := jen.Id(InputName).Index(
		jen.Id(OffsetName),
		jen.Id(OffsetName).Op("+").Id("n"),
	)
	var literalMatches *jen.Statement
	if isBytes {
		literalMatches = jen.String().Call(slice).Op("==").Id("e").Dot("literal")
	} else {
		literalMatches = slice.Op("==").Id("e").Dot("literal")
	}

	return []jen.Code{
		jen.Id(InputLenName).Op(":=").Len(in.Clone()),
		jen.Id(PendingName).Op(":=").Make(jen.Index().Index().Int(), l.Clone().Op("+").Lit(1)),
		pending.Clone().Index(jen.Lit(0)).Op("=").Index().Int().Values(jen.Id(g.startVar)),
		jen.Id(SeenName).Op(":=").Make(jen.Index().Bool(), jen.Len(jen.Id(g.acceptVar))),
		jen.Id(FrontierName).Op(":=").Make(jen.Index().Int(), jen.Lit(0), jen.Len(jen.Id(g.acceptVar))),
		jen.Line(),
		jen.For(
			jen.Id(OffsetName).Op(":=").Lit(0),
			off.Clone().Op("<=").Add(l.Clone()),
			off.Clone().Op("++"),
		).Block(
			jen.If(jen.Len(pending.Clone().Index(off.Clone())).Op("==").Lit(0)).Block(
				jen.Continue(),
			),
			jen.Comment("Reset the visited marks of the previous frontier"),
			jen.For(jen.List(jen.Id("_"), jen.Id("s")).Op(":=").Range().Add(frontier.Clone())).Block(
				seen.Clone().Index(jen.Id("s")).Op("=").False(),
			),
			frontier.Clone().Op("=").Add(frontier.Clone()).Index(jen.Empty(), jen.Lit(0)),
			jen.For(jen.List(jen.Id("_"), jen.Id("s")).Op(":=").Range().Add(pending.Clone()).Index(off.Clone())).Block(
				g.visit(jen.Id("s"))...,
			),
			pending.Clone().Index(off.Clone()).Op("=").Nil(),
			jen.Line(),
			jen.Comment("Epsilon closure; each state is queued at most once"),
			jen.For(
				jen.Id("i").Op(":=").Lit(0),
				jen.Id("i").Op("<").Len(frontier.Clone()),
				jen.Id("i").Op("++"),
			).Block(
				jen.For(jen.List(jen.Id("_"), jen.Id("t")).Op(":=").Range().Id(g.epsVar).Index(frontier.Clone().Index(jen.Id("i")))).Block(
					g.visit(jen.Id("t"))...,
				),
			),
			jen.Line(),
			jen.If(off.Clone().Op("==").Add(l.Clone())).Block(
				jen.For(jen.List(jen.Id("_"), jen.Id("s")).Op(":=").Range().Add(frontier.Clone())).Block(
					jen.If(jen.Id(g.acceptVar).Index(jen.Id("s"))).Block(
						jen.Return(jen.True()),
					),
				),
				jen.Return(jen.False()),
			),
			jen.Line(),
			jen.For(jen.List(jen.Id("_"), jen.Id("s")).Op(":=").Range().Add(frontier.Clone())).Block(
				jen.For(jen.List(jen.Id("_"), jen.Id("e")).Op(":=").Range().Id(g.edgesVar).Index(jen.Id("s"))).Block(
					jen.Id("n").Op(":=").Len(jen.Id("e").Dot("literal")),
					jen.If(l.Clone().Op("-").Add(off.Clone()).Op(">=").Id("n").Op("&&").Add(literalMatches)).Block(
						pending.Clone().Index(off.Clone().Op("+").Id("n")).Op("=").Append(
							pending.Clone().Index(off.Clone().Op("+").Id("n")),
							jen.Id("e").Dot("to"),
						),
					),
				),
			),
		),
		jen.Return(jen.False()),
	}
}

// visit generates code adding state to the frontier unless already seen.
func (g *Generator) visit(state *jen.Statement) []jen.Code {
	return []jen.Code{
		jen.If(jen.Op("!").Id(SeenName).Index(state.Clone())).Block(
			jen.Id(SeenName).Index(state.Clone()).Op("=").True(),
			jen.Id(FrontierName).Op("=").Append(jen.Id(FrontierName), state.Clone()),
		),
	}
}

// Generate renders the matcher for a to w.
func Generate(w io.Writer, a *automaton.Automaton, config Config) error {
	g, err := NewGenerator(a, config)
	if err != nil {
		return err
	}
	return g.Render(w)
}
