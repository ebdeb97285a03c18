package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/syssam/macrocosm/compiler"
	"github.com/syssam/macrocosm/compiler/gen"
)

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	var watchInputs bool
	cmd := &cobra.Command{
		Use:   "generate [paths...]",
		Short: "Generate code for the given descriptor files or directories",
		Example: `  macrocosm generate --package github.com/org/contract ./descriptors
  macrocosm generate --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger(cmd.ErrOrStderr())
			cfg, inputs, err := opts.resolve(cmd, args, logger)
			if err != nil {
				return err
			}
			run := func(ctx context.Context) error {
				artifacts, err := compiler.Generate(ctx, cfg, inputs...)
				if err != nil {
					report(cmd.ErrOrStderr(), err)
					return reportedError{err}
				}
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "generated %d files in %s\n", len(artifacts), cfg.Target)
				return nil
			}
			if !watchInputs {
				return run(cmd.Context())
			}
			return watch(cmd.Context(), logger, inputs, run)
		},
	}
	cmd.Flags().BoolVarP(&watchInputs, "watch", "w", false, "regenerate whenever a descriptor changes")
	return cmd
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [paths...]",
		Short: "Validate descriptors without writing any file",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger(cmd.ErrOrStderr())
			cfg, inputs, err := opts.resolve(cmd, args, logger)
			if err != nil {
				return err
			}
			if err := compiler.Check(cfg, inputs...); err != nil {
				report(cmd.ErrOrStderr(), err)
				if n := len(gen.Diagnostics(err)); n > 0 {
					return reportedError{fmt.Errorf("check failed with %d diagnostics", n)}
				}
				return reportedError{err}
			}
			color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
