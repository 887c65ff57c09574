package gen

import (
	"github.com/dave/jennifer/jen"
)

// genPackage generates the shared declarations of the package ({pkg}.go).
func (g *Generator) genPackage() *jen.File {
	f := g.newFile()

	f.Comment("Entity is implemented by every generated class.")
	f.Type().Id("Entity").Interface(
		jen.Comment("Detach removes the entity from every association."),
		jen.Id("Detach").Params(),
		jen.Comment("Validate reports references whose target does not link back."),
		jen.Id("Validate").Params().Error(),
	)
	f.Line()

	f.Comment("Option configures a new entity.")
	f.Type().Id("Option").Types(jen.Id("T").Any()).Func().Params(jen.Op("*").Id("T"))
	f.Line()

	var pkgs []*Package
	for _, p := range g.graph.Packages {
		if p.Namespace != "" || p.Prefix != "" {
			pkgs = append(pkgs, p)
		}
	}
	if len(pkgs) == 0 {
		return f
	}
	f.Comment("RDF namespaces and prefixes of the CIM packages.")
	f.Const().DefsFunc(func(defs *jen.Group) {
		for _, p := range pkgs {
			if p.Namespace != "" {
				defs.Id(p.NamespaceConst()).Op("=").Lit(p.Namespace)
			}
			if p.Prefix != "" {
				defs.Id(p.PrefixConst()).Op("=").Lit(p.Prefix)
			}
		}
	})
	f.Line()
	return f
}
