package codegen

import (
	"fmt"
	"io"

	"github.com/dave/jennifer/jen"
)

// DefaultTestInputs is used when a test file is requested without inputs.
var DefaultTestInputs = []string{"example"}

// testFile builds a _test.go file for the generated matcher. Expected
// results come from the automaton the matcher was generated from.
func (g *Generator) testFile(inputs []string) *jen.File {
	if len(inputs) == 0 {
		inputs = DefaultTestInputs
	}
	name := g.config.Name
	compiled := jen.Id("Compiled" + name)

	f := jen.NewFile(g.config.Package)
	f.HeaderComment(fmt.Sprintf("Code generated by enfa for pattern %q. DO NOT EDIT.", g.config.Pattern))

	cases := make([]jen.Code, len(inputs))
	for i, in := range inputs {
		cases[i] = jen.Values(jen.Lit(in), jen.Lit(g.a.Match(in)))
	}

	f.Func().Id("Test"+name+"Match").Params(jen.Id("t").Op("*").Qual("testing", "T")).Block(
		jen.Id("tests").Op(":=").Index().Struct(
			jen.Id("input").String(),
			jen.Id("want").Bool(),
		).Values(cases...),
		jen.For(jen.List(jen.Id("_"), jen.Id("tt")).Op(":=").Range().Id("tests")).Block(
			jen.If(
				jen.Id("got").Op(":=").Add(compiled.Clone()).Dot("MatchString").Call(jen.Id("tt").Dot("input")),
				jen.Id("got").Op("!=").Id("tt").Dot("want"),
			).Block(
				jen.Id("t").Dot("Errorf").Call(jen.Lit("MatchString(%q) = %v, want %v"),
					jen.Id("tt").Dot("input"), jen.Id("got"), jen.Id("tt").Dot("want")),
			),
			jen.If(
				jen.Id("got").Op(":=").Add(compiled.Clone()).Dot("MatchBytes").Call(jen.Index().Byte().Parens(jen.Id("tt").Dot("input"))),
				jen.Id("got").Op("!=").Id("tt").Dot("want"),
			).Block(
				jen.Id("t").Dot("Errorf").Call(jen.Lit("MatchBytes(%q) = %v, want %v"),
					jen.Id("tt").Dot("input"), jen.Id("got"), jen.Id("tt").Dot("want")),
			),
		),
	)
	f.Line()

	lits := make([]jen.Code, len(inputs))
	for i, in := range inputs {
		lits[i] = jen.Lit(in)
	}
	f.Func().Id("Benchmark"+name+"MatchString").Params(jen.Id("b").Op("*").Qual("testing", "B")).Block(
		jen.Id("inputs").Op(":=").Index().String().Values(lits...),
		jen.Id("b").Dot("ResetTimer").Call(),
		jen.For(jen.Id("i").Op(":=").Lit(0), jen.Id("i").Op("<").Id("b").Dot("N"), jen.Id("i").Op("++")).Block(
			jen.For(jen.List(jen.Id("_"), jen.Id("in")).Op(":=").Range().Id("inputs")).Block(
				compiled.Clone().Dot("MatchString").Call(jen.Id("in")),
			),
		),
	)
	return f
}

// RenderTest writes a test file for the generated matcher to w.
func (g *Generator) RenderTest(w io.Writer, inputs []string) error {
	return g.testFile(inputs).Render(w)
}

// SaveTest writes a test file for the generated matcher to path.
func (g *Generator) SaveTest(path string, inputs []string) error {
	return g.testFile(inputs).Save(path)
}
