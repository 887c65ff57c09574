package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/syssam/cim/compiler"
	"github.com/syssam/cim/compiler/gen"
)

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe [schema path]",
		Short: "Print the classes and associations of a schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "./schema"
			if len(args) > 0 {
				path = args[0]
			}
			// Nothing is written, the target only completes the config.
			graph, err := compiler.LoadGraph(path, gen.WithTarget(os.TempDir()), gen.WithPackage("describe"))
			if err != nil {
				return err
			}
			return describe(cmd.OutOrStdout(), graph)
		},
	}
}

// describe prints a class table followed by an association table.
func describe(w io.Writer, g *gen.Graph) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CLASS\tPACKAGE\tBASE\tATTRIBUTES\tREFERENCES")
	for _, t := range g.Nodes {
		base := "-"
		if t.Base != nil {
			base = t.Base.Name
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", t.Name, t.Package, base, len(t.Fields), len(t.Edges))
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "ASSOCIATION\tKIND")
	for _, a := range g.Assocs {
		fmt.Fprintf(tw, "%s <-> %s\t%s\n", a.From.Label(), a.To.Label(), a.Kind())
	}
	return tw.Flush()
}
