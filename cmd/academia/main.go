package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/academia/internal/cli"
	"github.com/example/academia/internal/ports/secondary"
	"github.com/example/academia/internal/version"
	"github.com/example/academia/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "academia",
		Short:   "Academia - manage research, teaching and outreach activities",
		Version: version.String(),
		Long: `Academia keeps a list of academic activities (research, teaching and
outreach), each with a person responsible and an end date.`,
		SilenceUsage: true,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.ActivityCmd())
	rootCmd.AddCommand(cli.DashboardCmd())

	err := rootCmd.Execute()
	if errors.Is(err, secondary.ErrCorruptStore) {
		wire.Logger().Error("activity store is corrupt", "error", err)
	}
	wire.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
