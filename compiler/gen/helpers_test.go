package gen

import (
	"bytes"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/require"

	"github.com/syssam/macrocosm/compiler/load"
)

const testRuntime = "github.com/syssam/macrocosm"

func enum(name string, variants ...*load.Variant) *load.Declaration {
	return &load.Declaration{Name: name, Kind: load.KindEnum, Variants: variants, Pos: "test.yaml"}
}

func query(name, response string, fields ...string) *load.Variant {
	v := &load.Variant{Name: name, Annotations: []*load.Annotation{{Name: AnnotationReturns, Args: []string{response}}}}
	for _, typ := range fields {
		v.Fields = append(v.Fields, &load.Field{Type: typ})
	}
	return v
}

func sub(name string, types ...string) *load.Variant {
	v := &load.Variant{Name: name, Kind: load.ShapeTuple}
	for _, typ := range types {
		v.Fields = append(v.Fields, &load.Field{Type: typ})
	}
	return v
}

func nested(decl *load.Declaration) *load.Declaration {
	decl.Annotations = append(decl.Annotations, &load.Annotation{
		Name:   AnnotationQueryResponses,
		Params: []*load.Annotation{{Name: paramNested}},
	})
	return decl
}

func noBoundsFor(decl *load.Declaration, names ...string) *load.Declaration {
	decl.Annotations = append(decl.Annotations, &load.Annotation{
		Name:   AnnotationQueryResponses,
		Params: []*load.Annotation{{Name: paramNoBoundsFor, Args: names}},
	})
	return decl
}

func withErrorFormat(v *load.Variant, format string) *load.Variant {
	v.Annotations = append(v.Annotations, &load.Annotation{Name: AnnotationError, Args: []string{format}})
	return v
}

func render(t *testing.T, f *jen.File) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))
	return buf.String()
}
