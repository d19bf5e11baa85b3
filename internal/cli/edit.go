package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEditCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <position> [text...]",
		Short: "Replace the text of a note",
		Long: `Replace the text of the note at position.

The new text is the remaining arguments joined by spaces. With no text
arguments it is read from standard input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			// Validate before reading stdin so a bad position fails fast.
			if _, err := s.store.At(position); err != nil {
				return storeError(err)
			}

			text, err := noteText(cmd, args[1:])
			if err != nil {
				return err
			}
			if err := s.store.EditText(position, text); err != nil {
				return storeError(err)
			}

			if s.flags.jsonMode {
				n, _ := s.store.At(position)
				return printJSON(cmd.OutOrStdout(), viewOf(position, n))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated note %d\n", position)
			return nil
		},
	}
}
