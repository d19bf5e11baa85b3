package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/notes/pkg/notes"
)

const modulePath = "github.com/mesh-intelligence/notes"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the notes version",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoSession: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "notes %s\nmodule: %s\n", notes.Version, modulePath)
			return nil
		},
	}
}
