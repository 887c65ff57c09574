package gen

import (
	"github.com/dave/jennifer/jen"
)

// genEnums generates the enumeration types (enums.go).
func (g *Generator) genEnums() *jen.File {
	f := g.newFile()
	for _, e := range g.graph.Enums {
		genEnum(f, e)
	}
	return f
}

func genEnum(f *jen.File, e *Enum) {
	docf(f, "%s is an enumeration of the %s package.", e.Name, e.Package)
	if lines := docLines(e.Doc); len(lines) > 0 {
		f.Comment("")
		for _, l := range lines {
			f.Comment(l)
		}
	}
	f.Type().Id(e.Name).String()
	f.Line()

	docf(f, "%s values.", e.Name)
	f.Const().DefsFunc(func(defs *jen.Group) {
		for _, v := range e.Values {
			defs.Id(e.ConstName(v)).Id(e.Name).Op("=").Lit(v)
		}
	})
	f.Line()

	docf(f, "%s returns every %s value in declaration order.", e.ValuesFunc(), e.Name)
	f.Func().Id(e.ValuesFunc()).Params().Index().Id(e.Name).Block(
		jen.Return(jen.Index().Id(e.Name).ValuesFunc(func(vals *jen.Group) {
			for _, v := range e.Values {
				vals.Id(e.ConstName(v))
			}
		})),
	)
	f.Line()

	docf(f, "IsValid reports whether v is a %s value.", e.Name)
	f.Func().Params(jen.Id("v").Id(e.Name)).Id("IsValid").Params().Bool().Block(
		jen.Switch(jen.Id("v")).Block(
			jen.CaseFunc(func(c *jen.Group) {
				for _, v := range e.Values {
					c.Id(e.ConstName(v))
				}
			}).Block(jen.Return(jen.True())),
		),
		jen.Return(jen.False()),
	)
	f.Line()

	f.Comment("String implements fmt.Stringer.")
	f.Func().Params(jen.Id("v").Id(e.Name)).Id("String").Params().String().Block(
		jen.Return(jen.String().Call(jen.Id("v"))),
	)
	f.Line()
}
