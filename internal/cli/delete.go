package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <position>...",
		Aliases: []string{"rm"},
		Short:   "Remove one or more notes",
		Long: `Remove the notes at the given positions.

All positions refer to the list as printed before the command runs, so
"notes delete 0 1" removes the first two notes. If any position is invalid
nothing is removed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			positions := make([]int, 0, len(args))
			for _, arg := range args {
				p, err := parsePosition(arg)
				if err != nil {
					return err
				}
				positions = append(positions, p)
			}

			before := s.store.Len()
			if err := s.store.Delete(positions...); err != nil {
				return storeError(err)
			}
			removed := before - s.store.Len()

			if s.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), map[string]int{
					"deleted":   removed,
					"remaining": s.store.Len(),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d note(s)\n", removed)
			return nil
		},
	}
}
