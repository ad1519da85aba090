package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/academia/internal/config"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var backend, path string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write .academia/config.json in the current directory",
		Long: `Write .academia/config.json in the current directory, choosing where
activities are stored.

Backends:
  sqlite   SQLite database (default ~/.academia/academia.db)
  file     JSON file (default ~/.academia/store.json)
  memory   process memory, lost on exit
  none     nothing is stored

Examples:
  academia init
  academia init --backend file --path ./atividades.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			if !force {
				if _, err := config.LoadConfig(cwd); err == nil {
					return fmt.Errorf("config already exists in %s (use --force to overwrite)", cwd)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}

			cfg := config.Default()
			cfg.StoreBackend = backend
			cfg.StorePath = path
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := config.SaveConfig(cwd, cfg); err != nil {
				return err
			}

			location, err := cfg.ResolveStorePath()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "✓ Config written to .academia/config.json")
			if location != "" {
				fmt.Fprintf(out, "  Store: %s (%s)\n", cfg.StoreBackend, location)
			} else {
				fmt.Fprintf(out, "  Store: %s\n", cfg.StoreBackend)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintln(out, "  academia activity list")
			fmt.Fprintln(out, "  academia dashboard")

			return nil
		},
	}

	cmd.Flags().StringVarP(&backend, "backend", "b", config.BackendSQLite, "Store backend (sqlite, file, memory, none)")
	cmd.Flags().StringVarP(&path, "path", "p", "", "Store location (default per backend)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config")

	return cmd
}
