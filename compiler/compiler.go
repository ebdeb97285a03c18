// Package compiler loads descriptor documents and runs the generators on
// them.
//
//	cfg, err := gen.NewConfig(gen.WithTarget("./msg"), gen.WithPackage("github.com/org/contract/msg"))
//	if err != nil {
//	    return err
//	}
//	if _, err := compiler.Generate(ctx, cfg, "./descriptors"); err != nil {
//	    return err
//	}
package compiler

import (
	"context"
	"fmt"

	"github.com/syssam/macrocosm/compiler/gen"
	"github.com/syssam/macrocosm/compiler/load"
)

// Generate loads the descriptors found at paths and writes the generated
// artifacts below cfg.Target.
func Generate(ctx context.Context, cfg *gen.Config, paths ...string) ([]*gen.Artifact, error) {
	docs, err := Load(paths...)
	if err != nil {
		return nil, err
	}
	return gen.NewGenerator(cfg).Generate(ctx, docs...)
}

// Check loads the descriptors found at paths and reports every
// diagnostic without writing anything.
func Check(cfg *gen.Config, paths ...string) error {
	docs, err := Load(paths...)
	if err != nil {
		return err
	}
	return gen.NewGenerator(cfg).Check(docs...)
}

// Load loads the descriptors found at paths.
func Load(paths ...string) ([]*load.Document, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("compiler: no descriptor paths")
	}
	docs, err := load.LoadPaths(paths...)
	if err != nil {
		return nil, fmt.Errorf("compiler: %w", err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("compiler: no descriptors found in %v", paths)
	}
	return docs, nil
}
