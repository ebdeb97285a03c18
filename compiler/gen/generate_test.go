package gen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/syssam/macrocosm/compiler/load"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestGeneratorGenerate(t *testing.T) {
	target := t.TempDir()
	g := NewGenerator(MustNewConfig(WithTarget(target), WithPackage("example.com/contract"), WithWorkers(2)))

	artifacts, err := g.Generate(context.Background(), testDocument())
	require.NoError(t, err)
	require.Len(t, artifacts, 4)

	for _, a := range artifacts {
		src, err := os.ReadFile(filepath.Join(target, a.Path))
		require.NoError(t, err, a.Path)
		assert.Contains(t, string(src), "// Code generated by macrocosm. DO NOT EDIT.")
	}
	src, err := os.ReadFile(filepath.Join(target, "msg", "query_msg_responses.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), `"foo": schema.For[bool](),`)

	m := g.Metrics()
	assert.Equal(t, 4, m.FilesGenerated)
	assert.Positive(t, m.TotalBytes)
}

func TestGeneratorWritesNothingOnFailure(t *testing.T) {
	target := t.TempDir()
	g := NewGenerator(MustNewConfig(WithTarget(target)))

	doc := testDocument()
	doc.Declarations[0].Variants = append(doc.Declarations[0].Variants, sub("Baz"))
	_, err := g.Generate(context.Background(), doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingResponseType)

	entries, err := os.ReadDir(target)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGeneratorCheck(t *testing.T) {
	g := NewGenerator(MustNewConfig(WithTarget(t.TempDir())))
	require.NoError(t, g.Check(testDocument()))

	bad := &load.Document{Package: "msg", Declarations: []*load.Declaration{
		{Name: "A", Kind: load.KindStruct, Derive: []string{DeriveErrorName}},
		{Name: "B", Kind: load.KindUnion, Derive: []string{DeriveQueryResponsesName}},
	}}
	err := g.Check(testDocument(), bad)
	require.Error(t, err)
	assert.Len(t, Diagnostics(err), 2)
}

func TestGeneratorNullEntries(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(doc *load.Document)
		want   string
	}{
		{"declaration", func(doc *load.Document) {
			doc.Declarations = append(doc.Declarations, nil)
		}, "declaration 3 is null"},
		{"variant", func(doc *load.Document) {
			doc.Declarations[0].Variants = append(doc.Declarations[0].Variants, nil)
		}, "null entry at variants[2]"},
		{"field", func(doc *load.Document) {
			doc.Declarations[1].Variants[0].Fields = append(doc.Declarations[1].Variants[0].Fields, nil)
		}, "null entry at variants[0].fields[1]"},
		{"annotation", func(doc *load.Document) {
			doc.Declarations[2].Annotations = []*load.Annotation{nil}
		}, "null entry at annotations[0]"},
		{"variant annotation", func(doc *load.Document) {
			v := doc.Declarations[0].Variants[0]
			v.Annotations = append(v.Annotations, nil)
		}, "null entry at variants[0].annotations[1]"},
		{"generic", func(doc *load.Document) {
			doc.Declarations[0].Generics = append(doc.Declarations[0].Generics, nil)
		}, "null entry at generics[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testDocument()
			tt.mutate(doc)
			err := NewGenerator(MustNewConfig(WithTarget(t.TempDir()))).Check(doc)
			require.Error(t, err)
			assert.True(t, IsDiagnostic(err, InvalidDescriptor))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGeneratorDuplicatePaths(t *testing.T) {
	g := NewGenerator(MustNewConfig(WithTarget(t.TempDir())))
	_, err := g.Plan(testDocument(), testDocument())
	require.Error(t, err)
	assert.True(t, IsGenerationError(err))
	assert.Contains(t, err.Error(), "generate the same file")
}

func TestGeneratorCanceled(t *testing.T) {
	target := t.TempDir()
	g := NewGenerator(MustNewConfig(WithTarget(target), WithWorkers(1)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Generate(ctx, testDocument())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, g.Metrics().FilesGenerated)
}

func TestWriterFormatFailure(t *testing.T) {
	target := t.TempDir()
	artifacts, err := Build(MustNewConfig(), testDocument())
	require.NoError(t, err)

	a := artifacts[0]
	a.File.Func().Id("broken").Params().Block().Op("}")
	err = NewWriter(target).Write(a)
	require.Error(t, err)
	assert.True(t, IsGenerationError(err))
}
