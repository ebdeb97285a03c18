package gen

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/macrocosm/compiler/load"
)

// Derive names accepted in a declaration's derive list.
const (
	DeriveErrorName          = "error"
	DeriveQueryResponsesName = "query_responses"
)

const registryFileSuffix = "_responses"

// Registries pull in reflection, keep them out of contract builds.
const registryBuildConstraint = "//go:build !wasm\n"

// ArtifactKind identifies what an Artifact declares.
type ArtifactKind uint8

// Artifact kinds.
const (
	ErrorArtifact ArtifactKind = iota + 1
	RegistryArtifact
)

// String returns the derive name producing the kind.
func (k ArtifactKind) String() string {
	switch k {
	case ErrorArtifact:
		return DeriveErrorName
	case RegistryArtifact:
		return DeriveQueryResponsesName
	default:
		return fmt.Sprintf("ArtifactKind(%d)", k)
	}
}

// Artifact is one generated Go file.
type Artifact struct {
	Kind ArtifactKind
	Decl *load.Declaration
	// Path is relative to the configured target directory.
	Path string
	File *jen.File
}

// Build derives every artifact requested by the declarations of doc.
// Derivation stops at the first failure of a declaration, failures of
// different declarations are joined.
func Build(cfg *Config, doc *load.Document) ([]*Artifact, error) {
	pkgPath, pkgName, err := packageOf(cfg, doc)
	if err != nil {
		return nil, err
	}
	var (
		out  []*Artifact
		errs []error
	)
	for i, decl := range doc.Declarations {
		if decl == nil {
			errs = append(errs, &Diagnostic{
				Kind:    InvalidDescriptor,
				Pos:     doc.Source,
				Message: fmt.Sprintf("declaration %d is null", i),
			})
			continue
		}
		artifacts, err := buildDecl(cfg, doc, decl, pkgPath, pkgName)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, artifacts...)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

func buildDecl(cfg *Config, doc *load.Document, decl *load.Declaration, pkgPath, pkgName string) ([]*Artifact, error) {
	var out []*Artifact
	for _, d := range decl.Derive {
		f := jen.NewFilePathName(pkgPath, pkgName)
		a := &Artifact{Decl: decl, File: f}
		switch d {
		case DeriveErrorName:
			a.Kind = ErrorArtifact
			a.Path = filepath.Join(doc.Dir, Normalize(decl.Name)+".go")
			if cfg.Header != "" {
				f.HeaderComment(cfg.Header)
			}
			if err := DeriveError(f, decl, cfg.Runtime); err != nil {
				return nil, err
			}
		case DeriveQueryResponsesName:
			a.Kind = RegistryArtifact
			a.Path = filepath.Join(doc.Dir, Normalize(decl.Name)+registryFileSuffix+".go")
			f.HeaderComment(registryBuildConstraint)
			if cfg.Header != "" {
				f.HeaderComment(cfg.Header)
			}
			if err := DeriveQueryResponses(f, decl, SchemaPackage(cfg.Runtime)); err != nil {
				return nil, err
			}
		default:
			return nil, invalid(decl, "", fmt.Sprintf("unknown derive %q, expected %s or %s", d, DeriveErrorName, DeriveQueryResponsesName), nil)
		}
		out = append(out, a)
	}
	return out, nil
}

// packageOf resolves the import path and name of the package the
// artifacts of doc are generated into.
func packageOf(cfg *Config, doc *load.Document) (string, string, error) {
	var pkgPath string
	if cfg.Package != "" {
		pkgPath = path.Join(cfg.Package, filepath.ToSlash(doc.Dir))
	}
	name := doc.Package
	if name == "" && pkgPath != "" {
		name = path.Base(pkgPath)
	}
	if name == "" || name == "." || name == "/" {
		return "", "", &Diagnostic{
			Kind:    InvalidDescriptor,
			Pos:     doc.Source,
			Message: "cannot determine the package name, set package in the descriptor",
		}
	}
	return pkgPath, name, nil
}

// SchemaPackage returns the import path of the schema registry package of
// a runtime.
func SchemaPackage(runtime string) string {
	return path.Join(runtime, "schema")
}
