package load

import (
	"fmt"
	"slices"
)

// Document is a single descriptor file. It carries the already-parsed
// declarations of one Go package together with the output placement.
type Document struct {
	Package      string         `json:"package,omitempty" yaml:"package,omitempty"`
	Dir          string         `json:"dir,omitempty" yaml:"dir,omitempty"`
	Declarations []*Declaration `json:"declarations,omitempty" yaml:"declarations,omitempty"`
	Source       string         `json:"-" yaml:"-"`
}

// DeclKind is the structural kind of a declaration.
type DeclKind string

// Declaration kinds.
const (
	KindEnum   DeclKind = "enum"
	KindStruct DeclKind = "struct"
	KindUnion  DeclKind = "union"
)

// Declaration describes a type declaration that was parsed by a front end.
// Only enumerations are accepted by the generators, other kinds are kept
// so they can be reported.
type Declaration struct {
	Name        string        `json:"name,omitempty" yaml:"name,omitempty"`
	Kind        DeclKind      `json:"kind,omitempty" yaml:"kind,omitempty"`
	Doc         string        `json:"doc,omitempty" yaml:"doc,omitempty"`
	Derive      []string      `json:"derive,omitempty" yaml:"derive,omitempty"`
	Generics    []*Generic    `json:"generics,omitempty" yaml:"generics,omitempty"`
	Variants    []*Variant    `json:"variants,omitempty" yaml:"variants,omitempty"`
	Annotations []*Annotation `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Pos         string        `json:"-" yaml:"-"`
}

// Derives reports whether the declaration requests the given generator.
func (d *Declaration) Derives(name string) bool {
	return slices.Contains(d.Derive, name)
}

// Generic is a generic parameter of a declaration.
type Generic struct {
	Name    string   `json:"name,omitempty" yaml:"name,omitempty"`
	Bounds  []string `json:"bounds,omitempty" yaml:"bounds,omitempty"`
	Default string   `json:"default,omitempty" yaml:"default,omitempty"`
}

// ShapeKind is the declared payload kind of a variant.
type ShapeKind string

// Variant shape kinds.
const (
	ShapeUnit   ShapeKind = "unit"
	ShapeTuple  ShapeKind = "tuple"
	ShapeStruct ShapeKind = "struct"
)

// Variant is a single alternative of an enumeration.
type Variant struct {
	Name        string        `json:"name,omitempty" yaml:"name,omitempty"`
	Kind        ShapeKind     `json:"kind,omitempty" yaml:"kind,omitempty"`
	Fields      []*Field      `json:"fields,omitempty" yaml:"fields,omitempty"`
	Annotations []*Annotation `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

// Field is a payload field of a variant. Tuple fields have no name.
type Field struct {
	Name        string        `json:"name,omitempty" yaml:"name,omitempty"`
	Type        string        `json:"type,omitempty" yaml:"type,omitempty"`
	Annotations []*Annotation `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

// Annotation is a structured attribute attached to a declaration, a variant
// or a field. Args hold plain arguments (type expressions, format strings),
// Params hold nested named items and Value an optional `name = value` literal.
type Annotation struct {
	Name   string        `json:"name,omitempty" yaml:"name,omitempty"`
	Args   []string      `json:"args,omitempty" yaml:"args,omitempty"`
	Value  string        `json:"value,omitempty" yaml:"value,omitempty"`
	Params []*Annotation `json:"params,omitempty" yaml:"params,omitempty"`
}

// Shape is the payload shape of a variant. It is one of *UnitShape,
// *TupleShape or *StructShape.
type Shape interface {
	shape()
}

type (
	// UnitShape is a variant without payload.
	UnitShape struct{}
	// TupleShape is a variant with positional fields.
	TupleShape struct{ Fields []*Field }
	// StructShape is a variant with named fields.
	StructShape struct{ Fields []*Field }
)

func (*UnitShape) shape()   {}
func (*TupleShape) shape()  {}
func (*StructShape) shape() {}

// Shape resolves the payload shape of the variant. An empty Kind is
// inferred from the fields.
func (v *Variant) Shape() (Shape, error) {
	named := 0
	for _, f := range v.Fields {
		if f.Name != "" {
			named++
		}
	}
	kind := v.Kind
	if kind == "" {
		switch {
		case len(v.Fields) == 0:
			kind = ShapeUnit
		case named == len(v.Fields):
			kind = ShapeStruct
		default:
			kind = ShapeTuple
		}
	}
	switch kind {
	case ShapeUnit:
		if len(v.Fields) > 0 {
			return nil, fmt.Errorf("unit variant %q declares %d fields", v.Name, len(v.Fields))
		}
		return &UnitShape{}, nil
	case ShapeTuple:
		if named > 0 {
			return nil, fmt.Errorf("tuple variant %q has named fields", v.Name)
		}
		return &TupleShape{Fields: v.Fields}, nil
	case ShapeStruct:
		if named != len(v.Fields) {
			return nil, fmt.Errorf("struct variant %q has unnamed fields", v.Name)
		}
		return &StructShape{Fields: v.Fields}, nil
	default:
		return nil, fmt.Errorf("variant %q: unknown kind %q", v.Name, kind)
	}
}

// Lookup returns the annotations with the given name, in declaration order.
func Lookup(annotations []*Annotation, name string) []*Annotation {
	var found []*Annotation
	for _, a := range annotations {
		if a != nil && a.Name == name {
			found = append(found, a)
		}
	}
	return found
}

// Has reports whether an annotation with the given name exists.
func Has(annotations []*Annotation, name string) bool {
	return slices.ContainsFunc(annotations, func(a *Annotation) bool {
		return a != nil && a.Name == name
	})
}

// init fills the defaults of a freshly decoded document.
func (d *Document) init(source string) {
	d.Source = source
	for _, decl := range d.Declarations {
		if decl == nil {
			continue
		}
		decl.Pos = source
		if decl.Kind == "" {
			decl.Kind = KindEnum
		}
	}
}

// EmptyEntry returns the location of the first null entry in the document,
// such as "declarations[0].variants[2]", or "" when there is none.
func (d *Document) EmptyEntry() string {
	for i, decl := range d.Declarations {
		if decl == nil {
			return fmt.Sprintf("declarations[%d]", i)
		}
		if at := decl.EmptyEntry(); at != "" {
			return fmt.Sprintf("declarations[%d].%s", i, at)
		}
	}
	return ""
}

// EmptyEntry returns the location of the first null entry of the
// declaration relative to it, or "" when there is none.
func (d *Declaration) EmptyEntry() string {
	for i, g := range d.Generics {
		if g == nil {
			return fmt.Sprintf("generics[%d]", i)
		}
	}
	if at := emptyAnnotation(d.Annotations); at != "" {
		return at
	}
	for i, v := range d.Variants {
		if v == nil {
			return fmt.Sprintf("variants[%d]", i)
		}
		if at := emptyAnnotation(v.Annotations); at != "" {
			return fmt.Sprintf("variants[%d].%s", i, at)
		}
		for j, f := range v.Fields {
			if f == nil {
				return fmt.Sprintf("variants[%d].fields[%d]", i, j)
			}
			if at := emptyAnnotation(f.Annotations); at != "" {
				return fmt.Sprintf("variants[%d].fields[%d].%s", i, j, at)
			}
		}
	}
	return ""
}

func emptyAnnotation(annotations []*Annotation) string {
	for i, a := range annotations {
		if a == nil {
			return fmt.Sprintf("annotations[%d]", i)
		}
		for j, p := range a.Params {
			if p == nil {
				return fmt.Sprintf("annotations[%d].params[%d]", i, j)
			}
			if at := emptyAnnotation(p.Params); at != "" {
				return fmt.Sprintf("annotations[%d].params[%d].%s", i, j, at)
			}
		}
	}
	return ""
}
