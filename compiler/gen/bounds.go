package gen

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/macrocosm/compiler/load"
)

// TypeParam is a generic parameter with parsed bounds.
type TypeParam struct {
	Name    string
	Bounds  []*load.TypeRef
	Default *load.TypeRef
}

// NewTypeParams parses the generic parameters of a declaration.
func NewTypeParams(decl *load.Declaration) ([]*TypeParam, error) {
	params := make([]*TypeParam, 0, len(decl.Generics))
	for _, g := range decl.Generics {
		p := &TypeParam{Name: g.Name}
		for _, b := range g.Bounds {
			t, err := load.ParseTypeRef(b)
			if err != nil {
				return nil, &Diagnostic{Kind: InvalidDescriptor, Pos: decl.Pos, Type: decl.Name, Param: g.Name, Message: "invalid bound", Cause: err}
			}
			p.Bounds = append(p.Bounds, t)
		}
		if g.Default != "" {
			t, err := load.ParseTypeRef(g.Default)
			if err != nil {
				return nil, &Diagnostic{Kind: InvalidDescriptor, Pos: decl.Pos, Type: decl.Name, Param: g.Name, Message: "invalid default", Cause: err}
			}
			p.Default = t
		}
		params = append(params, p)
	}
	return params, nil
}

// InjectBounds returns a copy of params where every default is cleared and
// every parameter not exempted by cfg gets the given bounds appended after
// its existing ones. The input is left untouched.
func InjectBounds(params []*TypeParam, cfg *GenerationConfig, bounds ...*load.TypeRef) []*TypeParam {
	out := make([]*TypeParam, len(params))
	for i, p := range params {
		np := &TypeParam{Name: p.Name}
		np.Bounds = append(np.Bounds, p.Bounds...)
		if !cfg.Exempt(p.Name) {
			np.Bounds = append(np.Bounds, bounds...)
		}
		out[i] = np
	}
	return out
}

// injectsBounds reports whether InjectBounds adds bounds to any parameter.
func injectsBounds(params []*TypeParam, cfg *GenerationConfig) bool {
	for _, p := range params {
		if !cfg.Exempt(p.Name) {
			return true
		}
	}
	return false
}

// schemaBounds returns the capabilities required from the generic
// parameters of a registry type.
func schemaBounds(schemaPkg string, nested bool) []*load.TypeRef {
	bounds := []*load.TypeRef{namedType(schemaPkg, "Describable")}
	if nested {
		bounds = append(bounds, namedType(schemaPkg, "QueryResponses"))
	}
	return bounds
}

// constraint renders the constraint of a type parameter.
func (p *TypeParam) constraint() jen.Code {
	switch len(p.Bounds) {
	case 0:
		return jen.Any()
	case 1:
		return typeCode(p.Bounds[0])
	default:
		return jen.InterfaceFunc(func(g *jen.Group) {
			for _, b := range p.Bounds {
				g.Add(typeCode(b))
			}
		})
	}
}

// String returns the parameter as it appears in a type-parameter list,
// with fully qualified bounds.
func (p *TypeParam) String() string {
	switch len(p.Bounds) {
	case 0:
		return p.Name + " any"
	case 1:
		return p.Name + " " + p.Bounds[0].String()
	default:
		bounds := make([]string, len(p.Bounds))
		for i, b := range p.Bounds {
			bounds[i] = b.String()
		}
		return fmt.Sprintf("%s interface{ %s }", p.Name, strings.Join(bounds, "; "))
	}
}

// typeParams renders the type-parameter list of a generic function.
func typeParams(params []*TypeParam) []jen.Code {
	codes := make([]jen.Code, len(params))
	for i, p := range params {
		codes[i] = jen.Id(p.Name).Add(p.constraint())
	}
	return codes
}

// typeArgs renders the type arguments referring to params.
func typeArgs(params []*TypeParam) []jen.Code {
	codes := make([]jen.Code, len(params))
	for i, p := range params {
		codes[i] = jen.Id(p.Name)
	}
	return codes
}
