package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/notes/internal/paths"
)

func newInitCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize notes storage",
		Long:  "Create the configuration file and data directory, then open the storage backend.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The session already created config.yaml and attached the
			// backend; report where things live.
			out := cmd.OutOrStdout()
			if s.flags.jsonMode {
				return printJSON(out, map[string]any{
					"config":  paths.ConfigFile(s.configDir),
					"data":    s.dataDir,
					"backend": s.backendName,
					"notes":   s.store.Len(),
				})
			}
			fmt.Fprintln(out, "Notes initialized successfully")
			fmt.Fprintln(out, "  config:", paths.ConfigFile(s.configDir))
			fmt.Fprintln(out, "  data:  ", s.dataDir)
			return nil
		},
	}
}
