package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/academia/internal/wire"
)

// DashboardCmd returns the dashboard command
func DashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"status"},
		Short:   "Show activity totals by type and the leading activities",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.DashboardAdapterWithOutput(cmd.OutOrStdout()).Show(commandContext(cmd))
		},
	}
}
