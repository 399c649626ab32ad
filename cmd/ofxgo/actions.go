package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/justyntemme/ofxgo/pkg/framework/action"
)

// NewActionsCmd creates the actions subcommand.
func NewActionsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "actions",
		Short: "List the actions a plugin dispatches",
		Long: `List every action the dispatch pipeline maps, with its scope and
argument shape. Library actions are handled by ofxgo itself and never reach
an effect. With --all, the actions that are recognized but declined are
listed too.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeActions(cmd.OutOrStdout(), all)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include declined actions")
	return cmd
}

func writeActions(out io.Writer, all bool) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, "ACTION\tSCOPE\tARGS\tHANDLED BY")
	_, _ = fmt.Fprintln(w, "------\t-----\t----\t----------")
	for _, row := range action.Table() {
		by := "effect"
		if row.Library {
			by = "library"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.Name, row.Scope, row.Args, by)
	}
	if all {
		for _, name := range action.Unsupported() {
			_, _ = fmt.Fprintf(w, "%s\t-\t-\tdeclined\n", name)
		}
	}
	return w.Flush()
}
