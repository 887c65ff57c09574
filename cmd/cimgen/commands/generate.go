package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/syssam/cim/compiler"
	"github.com/syssam/cim/compiler/gen"
)

func newGenerateCmd(g *globals) *cobra.Command {
	var (
		flags fileConfig
		watch bool
	)
	cmd := &cobra.Command{
		Use:   "generate [schema path]",
		Short: "Generate a Go package from YAML class schemas",
		Long: `Generate a Go package from a schema file, or from every *.yaml and *.yml
file of a schema directory.

Generated files that are no longer produced, for example the file of a
removed class, are deleted from the target directory. Files whose content
did not change are not rewritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "./schema"
			if len(args) > 0 {
				path = args[0]
			}
			cfg := &fileConfig{}
			if g.config != "" {
				c, err := loadConfig(g.config)
				if err != nil {
					return err
				}
				cfg = c
			}
			cfg.merge(flags)

			log := g.logger(cmd.ErrOrStderr())
			opts := append(cfg.options(), gen.WithLogger(log))
			run := func(ctx context.Context) error {
				return compiler.Generate(ctx, path, opts...)
			}
			ctx := cmd.Context()
			if err := run(ctx); err != nil && !watch {
				return err
			} else if err != nil {
				log.Error("generate failed", "error", err)
			}
			if !watch {
				return nil
			}
			err := newWatcher(path, log, run).Watch(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&flags.Target, "target", "t", "", "output directory of the generated package")
	cmd.Flags().StringVarP(&flags.Package, "package", "p", "", "package name (default: base name of the target)")
	cmd.Flags().StringVar(&flags.Header, "header", "", "header comment of generated files")
	cmd.Flags().IntVarP(&flags.Workers, "workers", "w", 0, "files rendered in parallel (default: GOMAXPROCS)")
	cmd.Flags().BoolVar(&watch, "watch", false, "regenerate on schema changes until interrupted")
	return cmd
}
