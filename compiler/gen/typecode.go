package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/macrocosm/compiler/load"
)

// typeCode renders a type expression. Qualified names go through Qual so
// the file tracks its imports.
func typeCode(t *load.TypeRef) *jen.Statement {
	switch t.Kind {
	case load.TypePointer:
		return jen.Op("*").Add(typeCode(t.Elem))
	case load.TypeSlice:
		return jen.Index().Add(typeCode(t.Elem))
	case load.TypeArray:
		return jen.Index(jen.Lit(t.Length)).Add(typeCode(t.Elem))
	case load.TypeMap:
		return jen.Map(typeCode(t.Key)).Add(typeCode(t.Elem))
	default:
		return qualified(t.Package, t.Name, t.Args)
	}
}

// qualified renders pkg.name[args].
func qualified(pkg, name string, args []*load.TypeRef) *jen.Statement {
	var s *jen.Statement
	if pkg == "" {
		s = jen.Id(name)
	} else {
		s = jen.Qual(pkg, name)
	}
	if len(args) > 0 {
		s = s.Types(typeList(args)...)
	}
	return s
}

func typeList(ts []*load.TypeRef) []jen.Code {
	codes := make([]jen.Code, len(ts))
	for i, t := range ts {
		codes[i] = typeCode(t)
	}
	return codes
}

// namedType returns the reference to a runtime type.
func namedType(pkg, name string) *load.TypeRef {
	return &load.TypeRef{Kind: load.TypeNamed, Package: pkg, Name: name}
}
