package gen

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/cim/compiler/load"
)

const uuidPkg = "github.com/google/uuid"

// genEntity generates the file of one class ({class}.go).
func (g *Generator) genEntity(t *Type) *jen.File {
	f := g.newFile()
	g.genStruct(f, t)
	g.genConstructor(f, t)
	for _, e := range t.Edges {
		if e.Unique {
			g.genRefAccessors(f, t, e)
		} else {
			g.genListAccessors(f, t, e)
		}
	}
	for _, e := range t.AllEdges() {
		g.genOption(f, t, e)
	}
	g.genDetach(f, t)
	g.genValidate(f, t)
	return f
}

// docf writes a formatted comment wrapped at docWidth.
func docf(f *jen.File, format string, a ...any) {
	for _, l := range docLines(fmt.Sprintf(format, a...)) {
		f.Comment(l)
	}
}

// docWidth is the length at which doc comments are wrapped.
const docWidth = 76

// docLines renders a schema doc string as comment lines. Paragraphs are
// kept and long lines are wrapped at word boundaries.
func docLines(doc string) []string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(doc, "\n") {
		line := ""
		for _, w := range strings.Fields(para) {
			switch {
			case line == "":
				line = w
			case len(line)+1+len(w) > docWidth:
				lines = append(lines, line)
				line = w
			default:
				line += " " + w
			}
		}
		lines = append(lines, line)
	}
	return lines
}

func (g *Generator) genStruct(f *jen.File, t *Type) {
	docf(f, "%s is a class of the %s package.", t.Name, t.Package)
	if lines := docLines(t.Doc); len(lines) > 0 {
		f.Comment("")
		for _, l := range lines {
			f.Comment(l)
		}
	}
	rel := g.graph.Config.RelationPackage
	f.Type().Id(t.Name).StructFunc(func(s *jen.Group) {
		if t.Base != nil {
			s.Id(t.Base.Name)
			s.Line()
		}
		for _, fd := range t.Fields {
			for _, l := range docLines(fd.Doc) {
				s.Comment(l)
			}
			s.Id(fd.StructField()).Add(goType(fd))
		}
		if len(t.Fields) > 0 && len(t.Edges) > 0 {
			s.Line()
		}
		for _, e := range t.Edges {
			slot := "List"
			if e.Unique {
				slot = "Ref"
			}
			s.Id(e.StructField()).Qual(rel, slot).Types(jen.Id(e.Type.Name))
		}
	})
	f.Line()
	f.Var().Id("_").Id("Entity").Op("=").Parens(jen.Op("*").Id(t.Name)).Parens(jen.Nil())
	f.Line()
}

// goType returns the Go type of an attribute.
func goType(f *Field) jen.Code {
	switch f.Type {
	case load.TypeFloat:
		return jen.Float64()
	case load.TypeInt:
		return jen.Int()
	case load.TypeBool:
		return jen.Bool()
	case load.TypeEnum:
		return jen.Id(f.Enum.Name)
	default:
		return jen.String()
	}
}

// defaultValue returns the Go expression of an attribute default.
func defaultValue(f *Field) jen.Code {
	switch {
	case f.IsUUID():
		return jen.Qual(uuidPkg, "NewString").Call()
	case f.IsEnum():
		return jen.Id(f.EnumDefault())
	default:
		return jen.Lit(f.Default)
	}
}

func (g *Generator) genConstructor(f *jen.File, t *Type) {
	recv := t.Receiver()
	docf(f, "%s returns a new %s with the default attribute values. Options are applied in order once the defaults are set.", t.Constructor(), t.Name)
	f.Func().Id(t.Constructor()).Params(
		jen.Id("opts").Op("...").Id("Option").Types(jen.Id(t.Name)),
	).Op("*").Id(t.Name).Block(
		jen.Id(recv).Op(":=").Op("&").Id(t.Name).Values(),
		jen.Id(recv).Dot("defaults").Call(),
		jen.For(jen.List(jen.Id("_"), jen.Id("opt")).Op(":=").Range().Id("opts")).Block(
			jen.Id("opt").Call(jen.Id(recv)),
		),
		jen.Return(jen.Id(recv)),
	)
	f.Line()

	docf(f, "defaults sets the default attribute values, base classes first.")
	f.Func().Params(jen.Id(recv).Op("*").Id(t.Name)).Id("defaults").Params().BlockFunc(func(b *jen.Group) {
		if t.Base != nil {
			b.Id(recv).Dot(t.Base.Name).Dot("defaults").Call()
		}
		for _, fd := range t.Fields {
			if fd.HasDefault() {
				b.Id(recv).Dot(fd.StructField()).Op("=").Add(defaultValue(fd))
			}
		}
	})
	f.Line()
}

func (g *Generator) genRefAccessors(f *jen.File, t *Type, e *Edge) {
	recv := t.Receiver()
	target := e.Type.Name
	docf(f, "%s returns the %s of the %s, or nil if it is not set.", e.Getter(), e.Name, t.Name)
	f.Func().Params(jen.Id(recv).Op("*").Id(t.Name)).Id(e.Getter()).Params().Op("*").Id(target).Block(
		jen.Return(jen.Id(e.Handle()).Dot("Get").Call(jen.Id(recv))),
	)
	f.Line()

	docf(f, "%s sets the %s of the %s and updates the inverse reference %s. A nil value clears it.", e.Setter(), e.Name, t.Name, e.Ref.Label())
	f.Func().Params(jen.Id(recv).Op("*").Id(t.Name)).Id(e.Setter()).Params(jen.Id("v").Op("*").Id(target)).Block(
		jen.Id(e.Handle()).Dot("Set").Call(jen.Id(recv), jen.Id("v")),
	)
	f.Line()
}

func (g *Generator) genListAccessors(f *jen.File, t *Type, e *Edge) {
	recv := t.Receiver()
	target := e.Type.Name
	docf(f, "%s returns a copy of the %s of the %s.", e.Getter(), e.Name, t.Name)
	f.Func().Params(jen.Id(recv).Op("*").Id(t.Name)).Id(e.Getter()).Params().Index().Op("*").Id(target).Block(
		jen.Return(jen.Id(e.Handle()).Dot("All").Call(jen.Id(recv))),
	)
	f.Line()

	docf(f, "%s replaces the %s of the %s and updates the inverse reference %s of the previous and new members.", e.Setter(), e.Name, t.Name, e.Ref.Label())
	f.Func().Params(jen.Id(recv).Op("*").Id(t.Name)).Id(e.Setter()).Params(jen.Id("vs").Index().Op("*").Id(target)).Block(
		jen.Id(e.Handle()).Dot("SetAll").Call(jen.Id(recv), jen.Id("vs")),
	)
	f.Line()

	docf(f, "%s appends to the %s of the %s. Members are not checked for duplicates.", e.Adder(), e.Name, t.Name)
	f.Func().Params(jen.Id(recv).Op("*").Id(t.Name)).Id(e.Adder()).Params(jen.Id("vs").Op("...").Op("*").Id(target)).Block(
		jen.Id(e.Handle()).Dot("Add").Call(jen.Id(recv), jen.Id("vs").Op("...")),
	)
	f.Line()

	docf(f, "%s removes members from the %s of the %s. It fails without changes if one of them is not a member.", e.Remover(), e.Name, t.Name)
	f.Func().Params(jen.Id(recv).Op("*").Id(t.Name)).Id(e.Remover()).Params(jen.Id("vs").Op("...").Op("*").Id(target)).Error().Block(
		jen.Return(jen.Id(e.Handle()).Dot("Remove").Call(jen.Id(recv), jen.Id("vs").Op("..."))),
	)
	f.Line()
}

func (g *Generator) genOption(f *jen.File, t *Type, e *Edge) {
	name := e.OptionName(t)
	opt := jen.Id("Option").Types(jen.Id(t.Name))
	recv := jen.Id(t.Receiver()).Op("*").Id(t.Name)
	if e.Unique {
		docf(f, "%s sets the %s of a new %s.", name, e.Name, t.Name)
		f.Func().Id(name).Params(jen.Id("v").Op("*").Id(e.Type.Name)).Add(opt).Block(
			jen.Return(jen.Func().Params(recv).Block(
				jen.Id(t.Receiver()).Dot(e.Setter()).Call(jen.Id("v")),
			)),
		)
		f.Line()
		return
	}
	docf(f, "%s sets the %s of a new %s.", name, e.Name, t.Name)
	f.Func().Id(name).Params(jen.Id("vs").Op("...").Op("*").Id(e.Type.Name)).Add(opt).Block(
		jen.Return(jen.Func().Params(recv).Block(
			jen.Id(t.Receiver()).Dot(e.Setter()).Call(jen.Id("vs")),
		)),
	)
	f.Line()
}

func (g *Generator) genDetach(f *jen.File, t *Type) {
	recv := t.Receiver()
	docf(f, "Detach removes the %s from every association, including the ones declared by its base classes.", t.Name)
	f.Func().Params(jen.Id(recv).Op("*").Id(t.Name)).Id("Detach").Params().BlockFunc(func(b *jen.Group) {
		if t.Base != nil {
			b.Id(recv).Dot(t.Base.Name).Dot("Detach").Call()
		}
		for _, e := range t.Edges {
			b.Id(e.Handle()).Dot("Clear").Call(jen.Id(recv))
		}
	})
	f.Line()
}

func (g *Generator) genValidate(f *jen.File, t *Type) {
	recv := t.Receiver()
	docf(f, "Validate reports every reference of the %s whose target does not link back to it.", t.Name)
	f.Func().Params(jen.Id(recv).Op("*").Id(t.Name)).Id("Validate").Params().Error().BlockFunc(func(b *jen.Group) {
		var checks []jen.Code
		if t.Base != nil {
			checks = append(checks, jen.Id(recv).Dot(t.Base.Name).Dot("Validate").Call())
		}
		for _, e := range t.Edges {
			checks = append(checks, jen.Id(e.Handle()).Dot("Check").Call(jen.Id(recv)))
		}
		switch len(checks) {
		case 0:
			b.Return(jen.Nil())
		case 1:
			b.Return(checks[0])
		default:
			b.Return(jen.Qual("errors", "Join").CallFunc(func(c *jen.Group) {
				for _, check := range checks {
					c.Line().Add(check)
				}
				c.Line()
			}))
		}
	})
	f.Line()
}
