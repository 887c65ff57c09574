package gen

import (
	"fmt"

	"github.com/dave/jennifer/jen"
)

// genRelations generates the association handles (relations.go).
func (g *Generator) genRelations() *jen.File {
	f := g.newFile()
	if len(g.graph.Assocs) == 0 {
		return f
	}
	f.Var().DefsFunc(func(defs *jen.Group) {
		for i, a := range g.graph.Assocs {
			if i > 0 {
				defs.Line()
			}
			for _, l := range docLines(fmt.Sprintf("%s <-> %s (%s)", a.From.Label(), a.To.Label(), a.Kind())) {
				defs.Comment(l)
			}
			defs.List(jen.Id(a.From.Handle()), jen.Id(a.To.Handle())).Op("=").
				Qual(g.graph.Config.RelationPackage, a.Constructor()).Call(
				jen.Line().Add(g.end(a.From)),
				jen.Line().Add(g.end(a.To)),
				jen.Line(),
			)
		}
	})
	f.Line()
	return f
}

// end renders the descriptor of one association end.
func (g *Generator) end(e *Edge) jen.Code {
	rel := g.graph.Config.RelationPackage
	end, slot := "ManyEnd", "List"
	if e.Unique {
		end, slot = "OneEnd", "Ref"
	}
	recv := e.Owner.Receiver()
	return jen.Qual(rel, end).Types(jen.Id(e.Owner.Name), jen.Id(e.Type.Name)).Values(jen.Dict{
		jen.Id("Name"): jen.Lit(e.Label()),
		jen.Id("Slot"): jen.Func().
			Params(jen.Id(recv).Op("*").Id(e.Owner.Name)).
			Op("*").Qual(rel, slot).Types(jen.Id(e.Type.Name)).
			Block(jen.Return(jen.Op("&").Id(recv).Dot(e.StructField()))),
	})
}
