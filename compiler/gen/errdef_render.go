package gen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/macrocosm/compiler/load"
)

// errorVariant is a merged error variant prepared for rendering.
type errorVariant struct {
	*load.Variant
	typeName    string
	fields      []*payloadField
	types       []*load.TypeRef
	transparent bool
	format      string // empty when transparent
	source      *payloadField
	from        *payloadField
}

// DeriveError synthesizes the error definition of decl and renders it into f.
func DeriveError(f *jen.File, decl *load.Declaration, runtime string) error {
	if err := validate(decl); err != nil {
		return err
	}
	if len(decl.Generics) > 0 {
		return invalid(decl, "", "error declarations cannot be generic", nil)
	}
	set := Synthesize(decl.Variants, runtime)
	variants := make([]*errorVariant, 0, set.Len())
	for _, v := range set.Variants() {
		ev, err := newErrorVariant(decl, v)
		if err != nil {
			return err
		}
		variants = append(variants, ev)
	}
	if err := checkConversions(decl, set, runtime); err != nil {
		return err
	}

	name := decl.Name
	marker := "is" + name
	if decl.Doc != "" {
		for _, line := range strings.Split(strings.TrimSpace(decl.Doc), "\n") {
			f.Comment(line)
		}
	} else {
		f.Commentf("%s is implemented by every %s variant type.", name, name)
	}
	f.Type().Id(name).Interface(
		jen.Error(),
		jen.Id(marker).Params(),
	)
	for _, v := range variants {
		renderErrorVariant(f, marker, v)
	}
	renderConversions(f, name, runtime, variants)
	return nil
}

func newErrorVariant(decl *load.Declaration, v *load.Variant) (*errorVariant, error) {
	shape, err := v.Shape()
	if err != nil {
		return nil, invalid(decl, v.Name, "", err)
	}
	var raw []*load.Field
	switch s := shape.(type) {
	case *load.UnitShape:
	case *load.TupleShape:
		raw = s.Fields
	case *load.StructShape:
		raw = s.Fields
	default:
		panic(fmt.Sprintf("gen: unexpected shape %T", shape))
	}
	names := make([]string, len(raw))
	for i, f := range raw {
		names[i] = f.Name
	}
	ev := &errorVariant{
		Variant:  v,
		typeName: variantType(decl.Name, v.Name),
		fields:   payloadFields(names),
	}
	for i, f := range raw {
		t, err := load.ParseTypeRef(f.Type)
		if err != nil {
			return nil, invalid(decl, v.Name, fmt.Sprintf("field %s", ev.fields[i].Source), err)
		}
		ev.types = append(ev.types, t)
		switch {
		case load.Has(f.Annotations, AnnotationFrom):
			if ev.from != nil {
				return nil, invalid(decl, v.Name, "more than one from field", nil)
			}
			ev.from = ev.fields[i]
			ev.source = ev.fields[i]
		case load.Has(f.Annotations, AnnotationSource) && ev.source == nil:
			ev.source = ev.fields[i]
		}
	}
	if ev.from != nil && len(raw) != 1 {
		return nil, invalid(decl, v.Name, "a from field must be the only field", nil)
	}
	switch displays := load.Lookup(v.Annotations, AnnotationError); {
	case len(displays) == 0:
		ev.format = humanize(v.Name)
	case len(displays) > 1:
		return nil, invalid(decl, v.Name, "more than one error annotation", nil)
	case isTransparent(displays[0]):
		if len(raw) != 1 {
			return nil, invalid(decl, v.Name, "transparent variants must have exactly one field", nil)
		}
		ev.transparent = true
		ev.source = ev.fields[0]
	case len(displays[0].Args) != 1:
		return nil, invalid(decl, v.Name, "error annotation takes a single format string", nil)
	default:
		ev.format = displays[0].Args[0]
		if _, _, err := displayFormat(ev.format, ev.fields); err != nil {
			return nil, invalid(decl, v.Name, "invalid display format", err)
		}
	}
	return ev, nil
}

func isTransparent(a *load.Annotation) bool {
	return slices.ContainsFunc(a.Params, func(p *load.Annotation) bool {
		return p.Name == paramTransparent
	})
}

// checkConversions verifies the variants the conversion helpers rely on
// kept their standard shapes.
func checkConversions(decl *load.Declaration, set *MergedVariantSet, runtime string) error {
	want := map[string]string{
		VariantGeneric: "string",
		VariantStd:     "*" + runtime + ".StdError",
	}
	for _, name := range []string{VariantGeneric, VariantStd} {
		v, _ := set.Get(name)
		if shape, _ := v.Shape(); shape != nil {
			if t, ok := shape.(*load.TupleShape); ok && len(t.Fields) == 1 {
				if ref, err := load.ParseTypeRef(t.Fields[0].Type); err == nil && ref.String() == want[name] {
					continue
				}
			}
		}
		return invalid(decl, name, fmt.Sprintf("%s must be a single-field tuple of %s", name, want[name]), nil)
	}
	return nil
}

func renderErrorVariant(f *jen.File, marker string, v *errorVariant) {
	f.Commentf("%s is the %s variant.", v.typeName, v.Name)
	f.Type().Id(v.typeName).StructFunc(func(g *jen.Group) {
		for i, fld := range v.fields {
			g.Id(fld.Go).Add(typeCode(v.types[i]))
		}
	})
	f.Func().Params(jen.Id(v.typeName)).Id(marker).Params().Block()

	f.Comment("Error implements the error interface.")
	switch code, uses, _ := displayCode(v.format, v.fields); {
	case v.transparent:
		f.Func().Params(jen.Id("e").Id(v.typeName)).Id("Error").Params().String().Block(
			jen.Return(jen.Id("e").Dot(v.fields[0].Go).Dot("Error").Call()),
		)
	case uses:
		f.Func().Params(jen.Id("e").Id(v.typeName)).Id("Error").Params().String().Block(jen.Return(code))
	default:
		f.Func().Params(jen.Id(v.typeName)).Id("Error").Params().String().Block(jen.Return(code))
	}
	if v.source != nil {
		f.Comment("Unwrap returns the underlying error.")
		f.Func().Params(jen.Id("e").Id(v.typeName)).Id("Unwrap").Params().Error().Block(
			jen.Return(jen.Id("e").Dot(v.source.Go)),
		)
	}
}

func renderConversions(f *jen.File, name, runtime string, variants []*errorVariant) {
	std := variantType(name, VariantStd)
	generic := variantType(name, VariantGeneric)

	f.Commentf("%sToStd narrows err to the standard error. Errors other than %s are", name, std)
	f.Comment("reported as generic standard errors carrying their display text.")
	f.Func().Id(name+"ToStd").Params(jen.Id("err").Id(name)).Op("*").Qual(runtime, "StdError").Block(
		jen.If(
			jen.List(jen.Id("e"), jen.Id("ok")).Op(":=").Id("err").Assert(jen.Id(std)),
			jen.Id("ok"),
		).Block(jen.Return(jen.Id("e").Dot(tupleField(0)))),
		jen.Return(jen.Qual(runtime, "GenericErr").Call(jen.Id("err").Dot("Error").Call())),
	)

	f.Commentf("%sFromCoinsError promotes a coins error into %s.", name, name)
	f.Func().Id(name+"FromCoinsError").Params(jen.Id("err").Op("*").Qual(runtime, "CoinsError")).Id(name).Block(
		jen.Return(jen.Id(std).Values(jen.Dict{jen.Id(tupleField(0)): jen.Id("err").Dot("StdError").Call()})),
	)

	f.Commentf("Wrap%s wraps any value into the %s variant using its default format.", name, VariantGeneric)
	f.Func().Id("Wrap"+name).Params(jen.Id("inner").Any()).Id(name).Block(
		jen.Return(jen.Id(generic).Values(jen.Dict{jen.Id(tupleField(0)): jen.Qual("fmt", "Sprint").Call(jen.Id("inner"))})),
	)

	for _, v := range variants {
		if v.from == nil {
			continue
		}
		fn := name + "From" + v.Name
		f.Commentf("%s converts err into the %s variant.", fn, v.Name)
		f.Func().Id(fn).Params(jen.Id("err").Add(typeCode(v.types[0]))).Id(name).Block(
			jen.Return(jen.Id(v.typeName).Values(jen.Dict{jen.Id(v.from.Go): jen.Id("err")})),
		)
	}
}
