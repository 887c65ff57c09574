// Package commands implements the cimgen command line.
package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// globals holds the persistent flags shared by every command.
type globals struct {
	verbose bool
	config  string
}

// logger returns a text logger writing to w, at debug level in verbose mode.
func (g *globals) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if g.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:   "cimgen",
		Short: "Generate bidirectional CIM entity packages",
		Long: `cimgen - generator of Go entity packages for CIM class schemas.

Every class of the schema becomes a struct. Every pair of references that
name each other as inverse becomes a bidirectional association kept
consistent by the relation package.

Examples:
  # Generate the cim14 package
  cimgen generate ./cim14/schema --target ./cim14

  # Regenerate on every schema change
  cimgen generate ./cim14/schema --target ./cim14 --watch

  # List classes and associations
  cimgen describe ./cim14/schema`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().StringVarP(&g.config, "config", "c", "", "YAML config file (target, package, header, workers)")

	root.AddCommand(newGenerateCmd(g), newDescribeCmd())
	return root
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
