package gen

import (
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/macrocosm/compiler/load"
)

func TestDeriveFlat(t *testing.T) {
	t.Run("keys in declaration order", func(t *testing.T) {
		decl := enum("QueryMsg",
			query("GetOwner", "string"),
			query("Balance", "[]github.com/org/bank.Coin", "string"),
			query("Config", "*Config"),
		)
		entries, err := DeriveFlat(decl)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "get_owner", entries[0].Key)
		assert.Equal(t, "balance", entries[1].Key)
		assert.Equal(t, "Balance", entries[1].Variant)
		assert.Equal(t, "[]github.com/org/bank.Coin", entries[1].Response.String())
		assert.Equal(t, "config", entries[2].Key)
	})

	t.Run("empty", func(t *testing.T) {
		entries, err := DeriveFlat(enum("QueryMsg"))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("missing returns", func(t *testing.T) {
		_, err := DeriveFlat(enum("QueryMsg", query("Foo", "bool"), sub("Bar", "string")))
		require.Error(t, err)
		d := Diagnostics(err)
		require.Len(t, d, 1)
		assert.Equal(t, MissingResponseType, d[0].Kind)
		assert.Equal(t, "Bar", d[0].Variant)
		assert.Contains(t, err.Error(), "missing return type for query")
	})

	t.Run("invalid returns", func(t *testing.T) {
		v := query("Foo", "bool")
		v.Annotations[0].Args = append(v.Annotations[0].Args, "string")
		_, err := DeriveFlat(enum("QueryMsg", v))
		assert.ErrorIs(t, err, ErrInvalidResponseType)

		_, err = DeriveFlat(enum("QueryMsg", query("Foo", "map[string")))
		assert.ErrorIs(t, err, ErrInvalidResponseType)

		twice := query("Foo", "bool")
		twice.Annotations = append(twice.Annotations, twice.Annotations[0])
		_, err = DeriveFlat(enum("QueryMsg", twice))
		assert.ErrorIs(t, err, ErrInvalidResponseType)
	})

	t.Run("duplicate key", func(t *testing.T) {
		_, err := DeriveFlat(enum("QueryMsg", query("ABalance", "bool"), query("A_balance", "bool")))
		require.Error(t, err)
		assert.True(t, IsDiagnostic(err, DuplicateQueryKey))
		assert.Contains(t, err.Error(), `key "a_balance" is also produced by ABalance`)
	})
}

func TestDeriveNested(t *testing.T) {
	t.Run("delegates", func(t *testing.T) {
		delegates, err := DeriveNested(enum("QueryMsg",
			sub("Cw1", "github.com/org/cw1.QueryMsg"),
			sub("Whitelist", "github.com/org/whitelist.QueryMsg[T]"),
		))
		require.NoError(t, err)
		require.Len(t, delegates, 2)
		assert.Equal(t, "github.com/org/cw1.QueryMsg", delegates[0].String())
		assert.Equal(t, "github.com/org/whitelist.QueryMsg[T]", delegates[1].String())
	})

	t.Run("empty", func(t *testing.T) {
		delegates, err := DeriveNested(enum("QueryMsg"))
		require.NoError(t, err)
		assert.Empty(t, delegates)
	})

	tests := []struct {
		name    string
		variant *load.Variant
		kind    DiagnosticKind
	}{
		{"struct variant", &load.Variant{Name: "Sub", Fields: []*load.Field{{Name: "inner", Type: "QueryMsg"}}}, StructVariantNotSubquery},
		{"unit variant", &load.Variant{Name: "Sub"}, UnitVariantNotSubquery},
		{"two fields", sub("Sub", "A", "B"), WrongArity},
		{"no fields", sub("Sub"), WrongArity},
		{"not a named type", sub("Sub", "[]A"), InvalidDescriptor},
		{"bad type", sub("Sub", "map["), InvalidDescriptor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeriveNested(enum("QueryMsg", tt.variant))
			require.Error(t, err)
			assert.True(t, IsDiagnostic(err, tt.kind), "got %v", err)
			assert.ErrorIs(t, err, tt.kind.Sentinel())
		})
	}
}

func TestDeriveQueryResponsesFlat(t *testing.T) {
	decl := enum("QueryMsg", query("Foo", "bool"), query("Bar", "uint32", "T"))
	decl.Generics = []*load.Generic{{Name: "T"}}

	f := jen.NewFilePathName("example.com/contract/msg", "msg")
	require.NoError(t, DeriveQueryResponses(f, decl, SchemaPackage(testRuntime)))
	src := render(t, f)

	assert.Contains(t, src, "func QueryMsgResponseSchemas[T schema.Describable]() schema.Registry {")
	assert.Contains(t, src, "return schema.Registry{\n\t\t\"foo\": schema.For[bool](),\n\t\t\"bar\": schema.For[uint32](),\n\t}")
	assert.Contains(t, src, `"github.com/syssam/macrocosm/schema"`)
	assert.NotContains(t, src, "ResponseSchemas() schema.Registry {\n\treturn QueryMsgResponseSchemas")
}

func TestDeriveQueryResponsesMethod(t *testing.T) {
	decl := noBoundsFor(enum("QueryMsg", query("Foo", "[]T")), "T")
	decl.Generics = []*load.Generic{{Name: "T"}}

	f := jen.NewFile("msg")
	require.NoError(t, DeriveQueryResponses(f, decl, SchemaPackage(testRuntime)))
	src := render(t, f)

	assert.Contains(t, src, "func QueryMsgResponseSchemas[T any]() schema.Registry {")
	assert.Contains(t, src, `"foo": schema.For[[]T](),`)
	assert.Contains(t, src, "func (QueryMsg[T]) ResponseSchemas() schema.Registry {\n\treturn QueryMsgResponseSchemas[T]()\n}")
}

func TestDeriveQueryResponsesNested(t *testing.T) {
	t.Run("delegates", func(t *testing.T) {
		decl := nested(enum("QueryMsg",
			sub("Cw1", "github.com/org/cw1.QueryMsg"),
			sub("Whitelist", "github.com/org/whitelist.QueryMsg"),
		))
		f := jen.NewFile("msg")
		require.NoError(t, DeriveQueryResponses(f, decl, SchemaPackage(testRuntime)))
		src := render(t, f)

		assert.Contains(t, src, "subqueries := [2]schema.Registry{\n\t\tcw1.QueryMsgResponseSchemas(),\n\t\twhitelist.QueryMsgResponseSchemas(),\n\t}")
		assert.Contains(t, src, "return schema.CombineSubqueries[QueryMsg](subqueries[:])")
		assert.Contains(t, src, "func (QueryMsg) ResponseSchemas() schema.Registry {")
	})

	t.Run("generic delegates", func(t *testing.T) {
		decl := nested(enum("QueryMsg", sub("Inner", "github.com/org/cw1.QueryMsg[T]")))
		decl.Generics = []*load.Generic{{Name: "T"}}
		f := jen.NewFile("msg")
		require.NoError(t, DeriveQueryResponses(f, decl, SchemaPackage(testRuntime)))
		src := render(t, f)

		assert.Contains(t, src, "cw1.QueryMsgResponseSchemas[T](),")
		assert.Contains(t, src, "return schema.CombineSubqueries[QueryMsg[T]](subqueries[:])")
		assert.Contains(t, src, "QueryMsgResponseSchemas[T interface {")
		assert.Contains(t, src, "schema.QueryResponses")
		assert.NotContains(t, src, ") ResponseSchemas()")
	})

	t.Run("empty", func(t *testing.T) {
		f := jen.NewFile("msg")
		require.NoError(t, DeriveQueryResponses(f, nested(enum("QueryMsg")), SchemaPackage(testRuntime)))
		src := render(t, f)
		assert.Contains(t, src, "[0]schema.Registry")
		assert.Contains(t, src, "return schema.CombineSubqueries[QueryMsg](subqueries[:])")
	})
}

func TestDeriveQueryResponsesDiagnostics(t *testing.T) {
	structDecl := &load.Declaration{Name: "QueryMsg", Kind: load.KindStruct}
	err := DeriveQueryResponses(jen.NewFile("msg"), structDecl, SchemaPackage(testRuntime))
	assert.ErrorIs(t, err, ErrUnsupportedShape)

	union := &load.Declaration{Name: "QueryMsg", Kind: load.KindUnion}
	err = DeriveQueryResponses(jen.NewFile("msg"), union, SchemaPackage(testRuntime))
	assert.ErrorIs(t, err, ErrUnsupportedShape)

	err = DeriveQueryResponses(jen.NewFile("msg"), enum("QueryMsg", sub("Foo")), SchemaPackage(testRuntime))
	assert.ErrorIs(t, err, ErrMissingResponseType)

	err = DeriveQueryResponses(jen.NewFile("msg"), nested(enum("QueryMsg", query("Foo", "bool"))), SchemaPackage(testRuntime))
	assert.ErrorIs(t, err, ErrUnitVariantNotSubquery)
}
