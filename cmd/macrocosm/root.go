package main

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// DefaultConfigFile is read from the working directory when --config is not set.
const DefaultConfigFile = "macrocosm.toml"

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	config  string
	verbose bool
	target  string
	pkg     string
	runtime string
	workers int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "macrocosm",
		Short:         "Generate error and query response code from descriptors",
		Long:          `macrocosm reads enum descriptors and writes Go error types and query response schema registries.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.config, "config", "", "project file (default "+DefaultConfigFile+" if present)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every written artifact")
	flags.StringVar(&opts.target, "target", "", "output root directory")
	flags.StringVar(&opts.pkg, "package", "", "import path of the output root")
	flags.StringVar(&opts.runtime, "runtime", "", "import path of the macrocosm runtime")
	flags.IntVar(&opts.workers, "workers", 0, "number of files written concurrently")

	cmd.AddCommand(newGenerateCmd(opts))
	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// logger returns the logger for one invocation, tagged with a fresh run id.
func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("run", uuid.NewString())
}
