package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/macrocosm/compiler/load"
)

func TestReadConfig(t *testing.T) {
	generic := func() *load.Declaration {
		d := enum("QueryMsg", query("Foo", "bool"))
		d.Generics = []*load.Generic{{Name: "T"}, {Name: "U"}}
		return d
	}

	t.Run("defaults", func(t *testing.T) {
		cfg, err := ReadConfig(generic())
		require.NoError(t, err)
		assert.False(t, cfg.Nested)
		assert.Empty(t, cfg.Exemptions())
	})

	t.Run("nested", func(t *testing.T) {
		cfg, err := ReadConfig(nested(generic()))
		require.NoError(t, err)
		assert.True(t, cfg.Nested)
	})

	t.Run("nested with value", func(t *testing.T) {
		d := generic()
		d.Annotations = []*load.Annotation{{Name: AnnotationQueryResponses, Params: []*load.Annotation{{Name: paramNested, Value: "false"}}}}
		cfg, err := ReadConfig(d)
		require.NoError(t, err)
		assert.False(t, cfg.Nested)
	})

	t.Run("groups accumulate", func(t *testing.T) {
		d := noBoundsFor(nested(generic()), "U")
		d = noBoundsFor(d, "T")
		cfg, err := ReadConfig(d)
		require.NoError(t, err)
		assert.True(t, cfg.Nested)
		assert.Equal(t, []string{"T", "U"}, cfg.Exemptions())
		assert.True(t, cfg.Exempt("T"))
	})

	t.Run("unknown parameter", func(t *testing.T) {
		d := generic()
		d.Annotations = []*load.Annotation{{Name: AnnotationQueryResponses, Params: []*load.Annotation{{Name: "flatten"}}}}
		_, err := ReadConfig(d)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnrecognizedParameter)
		assert.Contains(t, err.Error(), "parameter flatten")
	})

	t.Run("invalid nested value", func(t *testing.T) {
		d := generic()
		d.Annotations = []*load.Annotation{{Name: AnnotationQueryResponses, Params: []*load.Annotation{{Name: paramNested, Value: "sometimes"}}}}
		_, err := ReadConfig(d)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("nested with arguments", func(t *testing.T) {
		d := generic()
		d.Annotations = []*load.Annotation{{Name: AnnotationQueryResponses, Params: []*load.Annotation{{Name: paramNested, Args: []string{"x"}}}}}
		_, err := ReadConfig(d)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("group arguments", func(t *testing.T) {
		d := generic()
		d.Annotations = []*load.Annotation{{Name: AnnotationQueryResponses, Args: []string{"nested", "bogus"}}}
		_, err := ReadConfig(d)
		require.Error(t, err)
		assert.True(t, IsDiagnostic(err, InvalidParameter))
		assert.Contains(t, err.Error(), `"bogus"`)

		d.Annotations = []*load.Annotation{{Name: AnnotationQueryResponses, Value: "nested"}}
		_, err = ReadConfig(d)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("no_bounds_for with parameters", func(t *testing.T) {
		d := generic()
		d.Annotations = []*load.Annotation{{Name: AnnotationQueryResponses, Params: []*load.Annotation{
			{Name: paramNoBoundsFor, Params: []*load.Annotation{{Name: "T"}}},
		}}}
		_, err := ReadConfig(d)
		require.Error(t, err)
		assert.True(t, IsDiagnostic(err, InvalidParameter))
		assert.Contains(t, err.Error(), "parameter no_bounds_for")
	})

	t.Run("null parameter", func(t *testing.T) {
		d := generic()
		d.Annotations = []*load.Annotation{{Name: AnnotationQueryResponses, Params: []*load.Annotation{nil}}}
		_, err := ReadConfig(d)
		assert.ErrorIs(t, err, ErrInvalidDescriptor)
	})

	t.Run("no_bounds_for unknown generic", func(t *testing.T) {
		_, err := ReadConfig(noBoundsFor(generic(), "V"))
		require.Error(t, err)
		assert.True(t, IsDiagnostic(err, InvalidParameter))
		assert.Contains(t, err.Error(), `"V" is not a generic parameter of QueryMsg`)
	})
}
