package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes with their positions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			all := s.store.Notes()

			if s.flags.jsonMode {
				views := make([]noteView, len(all))
				for i, n := range all {
					views[i] = viewOf(i, n)
				}
				return printJSON(out, views)
			}

			width := len(fmt.Sprint(len(all) - 1))
			for i, n := range all {
				fmt.Fprintf(out, "%*d  %s\n", width, i, listRow(n.Text))
			}
			return nil
		},
	}
}
