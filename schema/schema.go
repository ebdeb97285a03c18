package schema

import (
	"encoding/json"
	"reflect"
	"sort"

	"github.com/invopop/jsonschema"
)

// Registry maps query keys to the JSON schema of their responses.
type Registry map[string]*jsonschema.Schema

// Describable is the bound placed on generic parameters of query types.
// It adds no method set: every Go type can be reflected into a JSON
// schema by For, so the bound only marks the parameters whose schemas
// the registry reflects. Parameters listed in no_bounds_for are left
// without it. Types refine their schema by implementing JSONSchema or
// JSONSchemaExtend, which the reflector picks up.
type Describable = any

// QueryResponses is implemented by query types that know the response
// schemas of their queries.
type QueryResponses interface {
	ResponseSchemas() Registry
}

var reflector = &jsonschema.Reflector{}

// For returns the JSON schema of T.
func For[T any]() *jsonschema.Schema {
	return reflector.ReflectFromType(reflect.TypeFor[T]())
}

// Keys returns the query keys in sorted order.
func (r Registry) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a shallow copy of r.
func (r Registry) Clone() Registry {
	out := make(Registry, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// JSON returns the registry as indented JSON with sorted keys.
func (r Registry) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Of returns the response schemas of the query type Q.
func Of[Q QueryResponses]() Registry {
	var q Q
	return q.ResponseSchemas()
}
