package gen

import (
	"slices"
	"sort"

	"github.com/syssam/macrocosm/compiler/load"
)

// Names of the variants the error generator relies on.
const (
	VariantGeneric = "Generic"
	VariantStd     = "Std"
	// VariantLibrary is the reserved variant wrapping the runtime library error.
	VariantLibrary = "Macrocosm"
)

// DefaultRuntime is the import path of the runtime package referenced by
// generated code.
const DefaultRuntime = "github.com/syssam/macrocosm"

func display(format string) []*load.Annotation {
	return []*load.Annotation{{Name: AnnotationError, Args: []string{format}}}
}

func transparent() []*load.Annotation {
	return []*load.Annotation{{Name: AnnotationError, Params: []*load.Annotation{{Name: paramTransparent}}}}
}

func unit(name, format string) *load.Variant {
	return &load.Variant{Name: name, Kind: load.ShapeUnit, Annotations: display(format)}
}

func tuple(name, typ, format string) *load.Variant {
	return &load.Variant{Name: name, Kind: load.ShapeTuple, Fields: []*load.Field{{Type: typ}}, Annotations: display(format)}
}

func wrapper(name, typ string) *load.Variant {
	return &load.Variant{
		Name:        name,
		Kind:        load.ShapeTuple,
		Fields:      []*load.Field{{Type: typ, Annotations: []*load.Annotation{{Name: AnnotationFrom}}}},
		Annotations: transparent(),
	}
}

// StandardVariants returns the standard error catalog. The runtime path
// qualifies the wrapped standard error type. A fresh copy is returned on
// every call.
func StandardVariants(runtime string) []*load.Variant {
	return []*load.Variant{
		tuple(VariantGeneric, "string", "Internal error: {0}"),
		wrapper(VariantStd, "*"+runtime+".StdError"),
		unit("Unauthorized", "Unauthorized to perform this action"),
		unit("Disabled", "Disabled action"),
		tuple("Expired", "string", "Expired {0}"),
		unit("InsufficientFunds", "Insufficient funds provided"),
		unit("FundsNotAccepted", "Funds not accepted for this action"),
		unit("Input", "Input provided was invalid"),
		tuple("NotFound", "string", "{0} not found"),
		unit("Parse", "Failed to parse value"),
		unit("Unexpected", "Unexpected error"),
	}
}

// LibraryVariant returns the reserved variant wrapping the runtime library error.
func LibraryVariant(runtime string) *load.Variant {
	return wrapper(VariantLibrary, runtime+".LibraryError")
}

// MergedVariantSet is a name-ordered set of error variants.
type MergedVariantSet struct {
	names    []string
	variants map[string]*load.Variant
}

// Synthesize merges the user variants with the standard catalog. User
// variants take precedence over catalog and library entries of the same
// name. The library wrapper is added only when the user set is non-empty,
// so the runtime's own error type does not wrap itself.
func Synthesize(user []*load.Variant, runtime string) *MergedVariantSet {
	set := &MergedVariantSet{variants: make(map[string]*load.Variant, len(user)+12)}
	for _, v := range user {
		set.variants[v.Name] = v
	}
	if len(user) > 0 {
		set.insert(LibraryVariant(runtime))
	}
	for _, v := range StandardVariants(runtime) {
		set.insert(v)
	}
	set.names = make([]string, 0, len(set.variants))
	for name := range set.variants {
		set.names = append(set.names, name)
	}
	sort.Strings(set.names)
	return set
}

// insert adds v unless a variant of the same name exists.
func (s *MergedVariantSet) insert(v *load.Variant) {
	if _, ok := s.variants[v.Name]; !ok {
		s.variants[v.Name] = v
	}
}

// Len returns the number of variants.
func (s *MergedVariantSet) Len() int { return len(s.names) }

// Names returns the variant names in order.
func (s *MergedVariantSet) Names() []string { return slices.Clone(s.names) }

// Get returns the variant with the given name.
func (s *MergedVariantSet) Get(name string) (*load.Variant, bool) {
	v, ok := s.variants[name]
	return v, ok
}

// Variants returns the variants in name order.
func (s *MergedVariantSet) Variants() []*load.Variant {
	vs := make([]*load.Variant, len(s.names))
	for i, name := range s.names {
		vs[i] = s.variants[name]
	}
	return vs
}
