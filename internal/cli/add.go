package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "add [text...]",
		Short: "Append a note",
		Long: `Append a note at the end of the list.

The note text is the arguments joined by spaces. With no arguments the draft
is read from standard input. An empty draft creates an empty note.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := noteText(cmd, args)
			if err != nil {
				return err
			}

			n, err := s.store.Append(text)
			if err != nil {
				return storeError(err)
			}

			position := s.store.Len() - 1
			if s.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), viewOf(position, n))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added note %d\n", position)
			return nil
		},
	}
}
