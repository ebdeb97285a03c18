package gen

import (
	"go/token"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
)

// Normalize converts a variant name to its registry key: every upper-case
// letter after the first character is preceded by an underscore and every
// letter is lower-cased.
//
//	Normalize("AString")      // a_string
//	Normalize("Wasm123AndCo") // wasm123_and_co
func Normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// exportName returns the exported Go name of a descriptor field name.
func exportName(name string) string {
	if name == "" {
		return name
	}
	s := inflect.Camelize(name)
	if !token.IsIdentifier(s) {
		return "X" + s
	}
	return s
}

// tupleField returns the field name of the i-th positional field.
func tupleField(i int) string {
	return "V" + strconv.Itoa(i)
}

// humanize returns the default display text of a variant.
func humanize(variant string) string {
	return inflect.Humanize(Normalize(variant))
}

// variantType returns the name of the struct type of a variant.
func variantType(decl, variant string) string {
	return decl + variant
}

// registryFunc returns the name of the registry function of a query type.
func registryFunc(name string) string {
	return name + "ResponseSchemas"
}
