package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/macrocosm/compiler/load"
)

var multiValues = jen.Options{Open: "{", Close: "}", Separator: ",", Multi: true}

// DeriveQueryResponses derives the response registry of decl and renders
// it into f. The registry is a generic function whose type parameters
// carry the injected bounds. When no bounds were injected the query type
// also gets a ResponseSchemas method.
func DeriveQueryResponses(f *jen.File, decl *load.Declaration, schemaPkg string) error {
	if err := validate(decl); err != nil {
		return err
	}
	cfg, err := ReadConfig(decl)
	if err != nil {
		return err
	}
	params, err := NewTypeParams(decl)
	if err != nil {
		return err
	}
	registry := func() *jen.Statement { return jen.Qual(schemaPkg, "Registry") }
	self := jen.Id(decl.Name).Types(typeArgs(params)...)

	var body []jen.Code
	if cfg.Nested {
		delegates, err := DeriveNested(decl)
		if err != nil {
			return err
		}
		calls := make([]jen.Code, len(delegates))
		for i, d := range delegates {
			n := d.Named()
			calls[i] = qualified(n.Package, registryFunc(n.Name), n.Args).Call()
		}
		body = []jen.Code{
			jen.Id("subqueries").Op(":=").Index(jen.Lit(len(calls))).Add(registry()).Custom(multiValues, calls...),
			jen.Return(jen.Qual(schemaPkg, "CombineSubqueries").Types(self).Call(jen.Id("subqueries").Index(jen.Op(":")))),
		}
	} else {
		entries, err := DeriveFlat(decl)
		if err != nil {
			return err
		}
		items := make([]jen.Code, len(entries))
		for i, e := range entries {
			items[i] = jen.Lit(e.Key).Op(":").Qual(schemaPkg, "For").Types(typeCode(e.Response)).Call()
		}
		body = []jen.Code{jen.Return(registry().Custom(multiValues, items...))}
	}

	fn := registryFunc(decl.Name)
	if cfg.Nested {
		f.Commentf("%s returns the combined response schemas of the %s subqueries.", fn, decl.Name)
	} else {
		f.Commentf("%s returns the response schema of every %s query, keyed by query name.", fn, decl.Name)
	}
	injected := InjectBounds(params, cfg, schemaBounds(schemaPkg, cfg.Nested)...)
	f.Func().Id(fn).Types(typeParams(injected)...).Params().Add(registry()).Block(body...)

	if !injectsBounds(params, cfg) {
		f.Comment("ResponseSchemas implements schema.QueryResponses.")
		f.Func().Params(jen.Id(decl.Name).Types(typeArgs(params)...)).Id("ResponseSchemas").Params().Add(registry()).Block(
			jen.Return(jen.Id(fn).Types(typeArgs(params)...).Call()),
		)
	}
	return nil
}
