package gen

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/macrocosm/compiler/load"
)

// Generator derives artifacts from descriptor documents and writes them.
type Generator struct {
	cfg    *Config
	writer *Writer
}

// NewGenerator creates a generator for cfg.
func NewGenerator(cfg *Config) *Generator {
	return &Generator{cfg: cfg, writer: NewWriter(cfg.Target)}
}

// Metrics returns the metrics of the underlying writer.
func (g *Generator) Metrics() WriterMetrics {
	return g.writer.Metrics()
}

// Plan derives the artifacts of every document without writing them.
// Failures of all declarations are joined. Two declarations producing
// the same file are reported as a GenerationError.
func (g *Generator) Plan(docs ...*load.Document) ([]*Artifact, error) {
	var (
		all  []*Artifact
		errs []error
	)
	seen := make(map[string]*Artifact)
	for _, doc := range docs {
		artifacts, err := Build(g.cfg, doc)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, a := range artifacts {
			if prev, ok := seen[a.Path]; ok {
				errs = append(errs, NewGenerationError("plan", a.Path,
					fmt.Sprintf("%s and %s generate the same file", prev.Decl.Name, a.Decl.Name), nil))
				continue
			}
			seen[a.Path] = a
			all = append(all, a)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return all, nil
}

// Check reports every diagnostic of docs without writing anything.
func (g *Generator) Check(docs ...*load.Document) error {
	artifacts, err := g.Plan(docs...)
	if err != nil {
		return err
	}
	g.cfg.Logger.Info("check passed", "documents", len(docs), "artifacts", len(artifacts))
	return nil
}

// Generate plans the artifacts of docs and writes them in parallel.
// Nothing is written when planning fails.
func (g *Generator) Generate(ctx context.Context, docs ...*load.Document) ([]*Artifact, error) {
	artifacts, err := g.Plan(docs...)
	if err != nil {
		return nil, err
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Workers)
	for _, a := range artifacts {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if err := g.writer.Write(a); err != nil {
				return err
			}
			g.cfg.Logger.Debug("wrote artifact", "kind", a.Kind, "type", a.Decl.Name, "path", a.Path)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	m := g.writer.Metrics()
	g.cfg.Logger.Info("generation finished", "files", m.FilesGenerated, "bytes", m.TotalBytes)
	return artifacts, nil
}
