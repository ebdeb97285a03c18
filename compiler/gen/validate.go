package gen

import (
	"fmt"
	"go/token"

	"github.com/syssam/macrocosm/compiler/load"
)

// validate checks the structural well-formedness shared by both generators.
func validate(decl *load.Declaration) error {
	if err := checkEntries(decl); err != nil {
		return err
	}
	if !token.IsIdentifier(decl.Name) {
		return invalid(decl, "", fmt.Sprintf("invalid type name %q", decl.Name), nil)
	}
	if decl.Kind != load.KindEnum {
		return &Diagnostic{
			Kind:    UnsupportedShape,
			Pos:     decl.Pos,
			Type:    decl.Name,
			Message: fmt.Sprintf("only enumerations are supported, got %s", decl.Kind),
		}
	}
	generics := make(map[string]bool, len(decl.Generics))
	for _, g := range decl.Generics {
		if !token.IsIdentifier(g.Name) || generics[g.Name] {
			return invalid(decl, "", fmt.Sprintf("invalid or duplicate generic parameter %q", g.Name), nil)
		}
		generics[g.Name] = true
	}
	variants := make(map[string]bool, len(decl.Variants))
	for _, v := range decl.Variants {
		if !token.IsIdentifier(v.Name) {
			return invalid(decl, v.Name, fmt.Sprintf("invalid variant name %q", v.Name), nil)
		}
		if variants[v.Name] {
			return invalid(decl, v.Name, "duplicate variant", nil)
		}
		variants[v.Name] = true
		if _, err := v.Shape(); err != nil {
			return invalid(decl, v.Name, "", err)
		}
		fields := make(map[string]bool, len(v.Fields))
		for _, f := range v.Fields {
			if f.Name == "" {
				continue
			}
			if !token.IsIdentifier(f.Name) || fields[f.Name] {
				return invalid(decl, v.Name, fmt.Sprintf("invalid or duplicate field %q", f.Name), nil)
			}
			fields[f.Name] = true
		}
	}
	return nil
}

// checkEntries rejects null generics, variants, fields and annotations.
func checkEntries(decl *load.Declaration) error {
	if decl == nil {
		return &Diagnostic{Kind: InvalidDescriptor, Message: "null declaration"}
	}
	if at := decl.EmptyEntry(); at != "" {
		return invalid(decl, "", "null entry at "+at, nil)
	}
	return nil
}

func invalid(decl *load.Declaration, variant, msg string, cause error) *Diagnostic {
	return &Diagnostic{
		Kind:    InvalidDescriptor,
		Pos:     decl.Pos,
		Type:    decl.Name,
		Variant: variant,
		Message: msg,
		Cause:   cause,
	}
}
