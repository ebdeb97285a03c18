package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/syssam/macrocosm/compiler/gen"
)

// projectFile is the layout of macrocosm.toml.
type projectFile struct {
	Inputs  []string `toml:"inputs"`
	Target  string   `toml:"target"`
	Package string   `toml:"package"`
	Runtime string   `toml:"runtime"`
	Workers int      `toml:"workers"`
}

// loadProjectFile reads the project file. A missing default file yields an
// empty project, a missing explicit file is an error.
func loadProjectFile(path string) (*projectFile, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	var pf projectFile
	md, err := toml.DecodeFile(path, &pf)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
		return &pf, nil
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("read %s: unknown key %q", path, undecoded[0].String())
	}
	return &pf, nil
}

// resolve merges the project file with the command line. Flags that were
// set explicitly win over the file and positional arguments replace its
// inputs.
func (o *rootOptions) resolve(cmd *cobra.Command, args []string, logger *slog.Logger) (*gen.Config, []string, error) {
	pf, err := loadProjectFile(o.config)
	if err != nil {
		return nil, nil, err
	}
	flags := cmd.Flags()
	pick := func(name, flag, file string) string {
		if flags.Changed(name) {
			return flag
		}
		return file
	}

	opts := []gen.Option{gen.WithLogger(logger)}
	if v := pick("target", o.target, pf.Target); v != "" {
		opts = append(opts, gen.WithTarget(v))
	}
	if v := pick("package", o.pkg, pf.Package); v != "" {
		opts = append(opts, gen.WithPackage(v))
	}
	if v := pick("runtime", o.runtime, pf.Runtime); v != "" {
		opts = append(opts, gen.WithRuntime(v))
	}
	switch {
	case flags.Changed("workers"):
		opts = append(opts, gen.WithWorkers(o.workers))
	case pf.Workers != 0:
		opts = append(opts, gen.WithWorkers(pf.Workers))
	}
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return nil, nil, err
	}

	inputs := args
	if len(inputs) == 0 {
		inputs = slices.Clone(pf.Inputs)
	}
	if len(inputs) == 0 {
		return nil, nil, fmt.Errorf("no descriptor inputs, pass paths or set inputs in %s", DefaultConfigFile)
	}
	return cfg, inputs, nil
}

