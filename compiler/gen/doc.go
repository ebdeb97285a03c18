// Package gen derives Go code from contract message descriptors.
//
// Two derivations are supported, selected by the derive list of a
// declaration:
//
//   - error: a sealed error interface merging the user variants with the
//     standard error catalog, plus conversion helpers to and from the
//     runtime's standard error.
//   - query_responses: a registry function mapping every query key to the
//     JSON schema of its response type.
//
// # Architecture
//
//	Descriptor (yaml, json, toml, cue, msgpack)
//	        ↓
//	   load.Document
//	        ↓
//	   Build (DeriveError, DeriveQueryResponses)
//	        ↓
//	   Artifact (*jen.File)
//	        ↓
//	   Writer (goimports, parallel writes)
//
// # Error Handling
//
// Derivation failures are reported as *Diagnostic values whose Kind
// identifies the failure. Each kind matches a sentinel error:
//
//	_, err := gen.Build(cfg, doc)
//	if errors.Is(err, gen.ErrMissingResponseType) {
//	    // a query variant lacks a returns annotation
//	}
//	for _, d := range gen.Diagnostics(err) {
//	    fmt.Println(d.Kind, d.Type, d.Variant)
//	}
//
// Derivation of a declaration stops at its first failure. Failures of
// different declarations are joined.
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	cfg, err := gen.NewConfig(
//	    gen.WithTarget("./msg"),
//	    gen.WithPackage("github.com/org/contract/msg"),
//	    gen.WithWorkers(4),
//	)
//	_, err = gen.NewGenerator(cfg).Generate(ctx, docs...)
//
// # Generated Output
//
//	{target}/{dir}/
//	├── {type}.go            // error declarations
//	└── {type}_responses.go  // query registries, excluded from wasm builds
package gen
