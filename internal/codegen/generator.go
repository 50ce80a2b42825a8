package codegen

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dave/jennifer/jen"

	"github.com/cypreess/revex/internal/normalizer"
	"github.com/cypreess/revex/internal/pattern"
	"github.com/cypreess/revex/reverse"
)

// Route is one named URL pattern to compile.
type Route struct {
	Name    string
	Pattern string
}

// Config holds the configuration for reversal code generation.
type Config struct {
	Package string
	Routes  []Route
}

// compiledRoute pairs a route with its normalized reversal candidates.
type compiledRoute struct {
	route     Route
	templates []normalizer.Template
}

// Generator emits one Go source file containing a reversal function
// per route plus the shared runtime helpers the functions use.
type Generator struct {
	config Config
	routes []compiledRoute
}

// New compiles every route's pattern and returns a generator. Parse
// and normalization errors surface here, before any code is written.
func New(config Config) (*Generator, error) {
	g := &Generator{config: config}
	for _, r := range config.Routes {
		parsed, err := pattern.Parse(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("route %q: %w", r.Name, err)
		}
		templates, err := normalizer.Normalize(parsed.Seq, parsed.GroupNames)
		if err != nil {
			return nil, fmt.Errorf("route %q: %w", r.Name, err)
		}
		if len(templates) == 0 {
			return nil, fmt.Errorf("route %q: pattern %q has no reversal", r.Name, r.Pattern)
		}
		g.routes = append(g.routes, compiledRoute{route: r, templates: templates})
	}
	return g, nil
}

// Generate renders the formatted Go source.
func (g *Generator) Generate() ([]byte, error) {
	f := jen.NewFile(g.config.Package)
	f.HeaderComment("Code generated by revex. DO NOT EDIT.")

	g.generateRuntime(f)
	for _, cr := range g.routes {
		g.generateRoute(f, cr)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering generated code: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateFile renders the source and writes it to path.
func (g *Generator) GenerateFile(path string) error {
	src, err := g.Generate()
	if err != nil {
		return err
	}
	return os.WriteFile(path, src, 0o644)
}

// generateRuntime emits the candidate table type and the shared
// matching helper every route function delegates to.
func (g *Generator) generateRuntime(f *jen.File) {
	f.Comment("routeTemplate is one reversal candidate: template text plus the")
	f.Comment("argument names that fill it.")
	f.Type().Id("routeTemplate").Struct(
		jen.Id("format").String(),
		jen.Id("params").Index().String(),
	)
	f.Line()

	f.Comment("reverseRoute renders the first candidate whose parameter set")
	f.Comment("matches args exactly.")
	f.Func().Id("reverseRoute").Params(
		jen.Id("name").String(),
		jen.Id("candidates").Index().Id("routeTemplate"),
		jen.Id("args").Map(jen.String()).String(),
	).Params(jen.String(), jen.Error()).Block(
		jen.For(jen.List(jen.Id("_"), jen.Id("c")).Op(":=").Range().Id("candidates")).Block(
			jen.If(jen.Len(jen.Id("c").Dot("params")).Op("!=").Len(jen.Id("args"))).Block(
				jen.Continue(),
			),
			jen.Id("matched").Op(":=").True(),
			jen.For(jen.List(jen.Id("_"), jen.Id("p")).Op(":=").Range().Id("c").Dot("params")).Block(
				jen.If(
					jen.List(jen.Id("_"), jen.Id("ok")).Op(":=").Id("args").Index(jen.Id("p")),
					jen.Op("!").Id("ok"),
				).Block(
					jen.Id("matched").Op("=").False(),
					jen.Break(),
				),
			),
			jen.If(jen.Op("!").Id("matched")).Block(
				jen.Continue(),
			),
			jen.Id("out").Op(":=").Id("c").Dot("format"),
			jen.For(jen.List(jen.Id("_"), jen.Id("p")).Op(":=").Range().Id("c").Dot("params")).Block(
				jen.Id("out").Op("=").Qual("strings", "ReplaceAll").Call(
					jen.Id("out"),
					jen.Lit("{").Op("+").Id("p").Op("+").Lit("}"),
					jen.Id("args").Index(jen.Id("p")),
				),
			),
			jen.Return(jen.Id("out"), jen.Nil()),
		),
		jen.Return(
			jen.Lit(""),
			jen.Qual("fmt", "Errorf").Call(
				jen.Lit("no reversal of route %q accepts the given arguments"),
				jen.Id("name"),
			),
		),
	)
	f.Line()
}

// generateRoute emits the candidate table and reversal function for
// one route, plus a typed fast path when the route reverses uniquely.
func (g *Generator) generateRoute(f *jen.File, cr compiledRoute) {
	exported := ExportName(cr.route.Name)
	varName := LowerFirst(exported) + "Templates"
	funcName := "Reverse" + exported

	values := make([]jen.Code, 0, len(cr.templates))
	for _, t := range cr.templates {
		fields := jen.Dict{
			jen.Id("format"): jen.Lit(t.Format),
		}
		if len(t.Params) > 0 {
			params := make([]jen.Code, 0, len(t.Params))
			for _, p := range t.Params {
				params = append(params, jen.Lit(p))
			}
			fields[jen.Id("params")] = jen.Index().String().Values(params...)
		}
		values = append(values, jen.Values(fields))
	}

	f.Commentf("%s lists the reversal candidates for the %q route.", varName, cr.route.Name)
	f.Commentf("Pattern: %s", cr.route.Pattern)
	f.Var().Id(varName).Op("=").Index().Id("routeTemplate").Values(values...)
	f.Line()

	f.Commentf("%s reverses the %q route with named arguments.", funcName, cr.route.Name)
	f.Func().Id(funcName).Params(
		jen.Id("args").Map(jen.String()).String(),
	).Params(jen.String(), jen.Error()).Block(
		jen.Return(jen.Id("reverseRoute").Call(
			jen.Lit(cr.route.Name),
			jen.Id(varName),
			jen.Id("args"),
		)),
	)
	f.Line()

	if len(cr.templates) == 1 {
		g.generateTypedFunc(f, cr)
	}
}

// generateTypedFunc emits a direct string-building function for routes
// with exactly one reversal candidate, avoiding the map allocation.
func (g *Generator) generateTypedFunc(f *jen.File, cr compiledRoute) {
	t := cr.templates[0]
	parsed := reverse.ParseTemplate(t.Format, t.Params)
	funcName := ExportName(cr.route.Name) + "URL"

	params := make([]jen.Code, 0, len(t.Params))
	for _, p := range t.Params {
		params = append(params, jen.Id(paramIdent(p)).String())
	}

	var expr *jen.Statement
	add := func(code jen.Code) {
		if expr == nil {
			expr = jen.Add(code)
		} else {
			expr.Op("+").Add(code)
		}
	}
	for _, seg := range parsed.Segments {
		if seg.Type == reverse.SegmentLiteral {
			add(jen.Lit(seg.Literal))
		} else {
			add(jen.Id(paramIdent(seg.Param)))
		}
	}
	if expr == nil {
		expr = jen.Lit("")
	}

	f.Commentf("%s builds the %q URL directly.", funcName, cr.route.Name)
	f.Func().Id(funcName).Params(params...).String().Block(
		jen.Return(expr),
	)
	f.Line()
}
