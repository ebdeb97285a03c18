package gen

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/syssam/macrocosm/compiler/load"
)

// RegistryEntry maps a query key to the response type of its variant.
type RegistryEntry struct {
	Key      string
	Variant  string
	Response *load.TypeRef
}

// DeriveFlat derives one registry entry per variant, in declaration order.
// Every variant needs exactly one returns annotation naming a type. Two
// variants normalizing to the same key are rejected.
func DeriveFlat(decl *load.Declaration) ([]*RegistryEntry, error) {
	if err := checkEntries(decl); err != nil {
		return nil, err
	}
	entries := orderedmap.New[string, *RegistryEntry](orderedmap.WithCapacity[string, *RegistryEntry](len(decl.Variants)))
	for _, v := range decl.Variants {
		returns := load.Lookup(v.Annotations, AnnotationReturns)
		switch {
		case len(returns) == 0:
			return nil, &Diagnostic{
				Kind:    MissingResponseType,
				Pos:     decl.Pos,
				Type:    decl.Name,
				Variant: v.Name,
				Message: "missing return type for query",
			}
		case len(returns) > 1:
			return nil, responseDiagnostic(decl, v, "more than one returns annotation", nil)
		case len(returns[0].Args) != 1:
			return nil, responseDiagnostic(decl, v, fmt.Sprintf("returns takes a single type, got %d arguments", len(returns[0].Args)), nil)
		}
		t, err := load.ParseTypeRef(returns[0].Args[0])
		if err != nil {
			return nil, responseDiagnostic(decl, v, "", err)
		}
		e := &RegistryEntry{Key: Normalize(v.Name), Variant: v.Name, Response: t}
		if prev, dup := entries.Set(e.Key, e); dup {
			return nil, &Diagnostic{
				Kind:    DuplicateQueryKey,
				Pos:     decl.Pos,
				Type:    decl.Name,
				Variant: v.Name,
				Message: fmt.Sprintf("key %q is also produced by %s", e.Key, prev.Variant),
			}
		}
	}
	out := make([]*RegistryEntry, 0, entries.Len())
	for p := entries.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Value)
	}
	return out, nil
}

func responseDiagnostic(decl *load.Declaration, v *load.Variant, msg string, cause error) *Diagnostic {
	return &Diagnostic{
		Kind:    InvalidResponseType,
		Pos:     decl.Pos,
		Type:    decl.Name,
		Variant: v.Name,
		Message: msg,
		Cause:   cause,
	}
}

// DeriveNested returns the delegate query type of every variant, in
// declaration order. Each variant must wrap exactly one query type.
func DeriveNested(decl *load.Declaration) ([]*load.TypeRef, error) {
	if err := checkEntries(decl); err != nil {
		return nil, err
	}
	delegates := make([]*load.TypeRef, 0, len(decl.Variants))
	for _, v := range decl.Variants {
		shape, err := v.Shape()
		if err != nil {
			return nil, invalid(decl, v.Name, "", err)
		}
		diag := &Diagnostic{Pos: decl.Pos, Type: decl.Name, Variant: v.Name}
		switch s := shape.(type) {
		case *load.StructShape:
			diag.Kind, diag.Message = StructVariantNotSubquery, "a struct variant cannot be a subquery"
			return nil, diag
		case *load.UnitShape:
			diag.Kind, diag.Message = UnitVariantNotSubquery, "a unit variant cannot be a subquery"
			return nil, diag
		case *load.TupleShape:
			if len(s.Fields) != 1 {
				diag.Kind, diag.Message = WrongArity, fmt.Sprintf("a subquery variant must have exactly one field, got %d", len(s.Fields))
				return nil, diag
			}
			t, err := load.ParseTypeRef(s.Fields[0].Type)
			if err != nil {
				return nil, invalid(decl, v.Name, "invalid subquery type", err)
			}
			if t.Named() == nil {
				return nil, invalid(decl, v.Name, fmt.Sprintf("subquery type %s is not a named type", t), nil)
			}
			delegates = append(delegates, t)
		default:
			panic(fmt.Sprintf("gen: unexpected shape %T", shape))
		}
	}
	return delegates, nil
}
