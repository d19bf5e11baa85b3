package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show <position>",
		Short: "Print the full text of one note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			n, err := s.store.At(position)
			if err != nil {
				return storeError(err)
			}

			if s.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), viewOf(position, n))
			}
			fmt.Fprintln(cmd.OutOrStdout(), n.Text)
			return nil
		},
	}
}
