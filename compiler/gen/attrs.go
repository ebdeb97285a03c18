package gen

import (
	"fmt"
	"slices"
	"sort"
	"strconv"

	"github.com/syssam/macrocosm/compiler/load"
)

// Annotation and parameter names understood by the generators.
const (
	// AnnotationQueryResponses is the type-level configuration group of the
	// query registry generator.
	AnnotationQueryResponses = "query_responses"
	// AnnotationReturns declares the response type of a query variant.
	AnnotationReturns = "returns"
	// AnnotationError declares the display format of an error variant.
	AnnotationError = "error"
	// AnnotationFrom marks the field an error variant is converted from.
	AnnotationFrom = "from"
	// AnnotationSource marks the underlying cause of an error variant.
	AnnotationSource = "source"

	paramNested      = "nested"
	paramNoBoundsFor = "no_bounds_for"
	paramTransparent = "transparent"
)

// GenerationConfig holds the query_responses settings of a declaration.
type GenerationConfig struct {
	// Nested selects delegation to sub-query registries.
	Nested bool
	// NoBoundsFor lists the generic parameters exempt from bound injection.
	NoBoundsFor map[string]struct{}
}

// Exempt reports whether the generic parameter is exempt from bound injection.
func (c *GenerationConfig) Exempt(name string) bool {
	_, ok := c.NoBoundsFor[name]
	return ok
}

// Exemptions returns the exempt parameter names in sorted order.
func (c *GenerationConfig) Exemptions() []string {
	names := make([]string, 0, len(c.NoBoundsFor))
	for n := range c.NoBoundsFor {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ReadConfig reads the query_responses configuration group of a declaration.
// The group may be given more than once, parameters accumulate.
func ReadConfig(decl *load.Declaration) (*GenerationConfig, error) {
	if err := checkEntries(decl); err != nil {
		return nil, err
	}
	cfg := &GenerationConfig{NoBoundsFor: make(map[string]struct{})}
	for _, group := range load.Lookup(decl.Annotations, AnnotationQueryResponses) {
		if len(group.Args) > 0 || group.Value != "" {
			return nil, paramDiagnostic(decl, InvalidParameter, AnnotationQueryResponses,
				fmt.Sprintf("unexpected arguments %q, settings are given as parameters", append(slices.Clone(group.Args), nonEmpty(group.Value)...)))
		}
		for _, p := range group.Params {
			switch p.Name {
			case paramNested:
				if len(p.Args) > 0 || len(p.Params) > 0 {
					return nil, paramDiagnostic(decl, InvalidParameter, p.Name, "nested takes no arguments")
				}
				nested := true
				if p.Value != "" {
					v, err := strconv.ParseBool(p.Value)
					if err != nil {
						return nil, paramDiagnostic(decl, InvalidParameter, p.Name, fmt.Sprintf("expected a boolean, got %q", p.Value))
					}
					nested = v
				}
				cfg.Nested = nested
			case paramNoBoundsFor:
				if len(p.Params) > 0 || p.Value != "" {
					return nil, paramDiagnostic(decl, InvalidParameter, p.Name, "no_bounds_for takes generic parameter names as arguments")
				}
				for _, name := range p.Args {
					if !slices.ContainsFunc(decl.Generics, func(g *load.Generic) bool { return g.Name == name }) {
						return nil, paramDiagnostic(decl, InvalidParameter, p.Name, fmt.Sprintf("%q is not a generic parameter of %s", name, decl.Name))
					}
					cfg.NoBoundsFor[name] = struct{}{}
				}
			default:
				return nil, paramDiagnostic(decl, UnrecognizedParameter, p.Name, "expected nested or no_bounds_for")
			}
		}
	}
	return cfg, nil
}

func paramDiagnostic(decl *load.Declaration, kind DiagnosticKind, param, msg string) *Diagnostic {
	return &Diagnostic{
		Kind:    kind,
		Pos:     decl.Pos,
		Type:    decl.Name,
		Param:   param,
		Message: msg,
	}
}

func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}
