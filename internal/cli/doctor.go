package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/academia/internal/config"
	"github.com/example/academia/internal/ports/primary"
	"github.com/example/academia/internal/ports/secondary"
	"github.com/example/academia/internal/version"
	"github.com/example/academia/internal/wire"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate academia configuration and store",
		Long: `Health check for the activity store.

Validates:
- Configuration (.academia/config.json and ACADEMIA_* overrides)
- Store backend and location
- Stored activities decode cleanly

Examples:
  academia doctor              # Run full health check
  academia doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cwd, err := os.Getwd()
			if err != nil {
				cwd = "."
			}

			results := []CheckResult{}
			cfgResult, cfgOK := checkConfig(cwd)
			results = append(results, cfgResult)

			// wire exits on a bad config, so only go further with a good one
			if cfgOK {
				store := wire.Store()
				results = append(results, checkStore(store.Backend, store.Location, store.Available))
				results = append(results, checkRecords(commandContext(cmd), wire.ActivityService()))
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				printChecks(out, results)
				if hasErrors {
					fmt.Fprintln(out, "\n⚠ Issues found.")
				} else {
					fmt.Fprintln(out, "All checks passed.")
				}
				fmt.Fprintf(out, "\n%s\n", version.String())
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

func printChecks(out io.Writer, results []CheckResult) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Check              Status")
	fmt.Fprintln(out, "─────────────────────────")
	for _, r := range results {
		fmt.Fprintf(out, "%-18s %s\n", r.Name, r.Status)
	}
	fmt.Fprintln(out)

	hasDetails := false
	for _, r := range results {
		if r.Status != "✓" && r.Details != "" {
			if !hasDetails {
				fmt.Fprintln(out, "Details:")
				hasDetails = true
			}
			fmt.Fprintf(out, "\n%s:\n%s\n", r.Name, r.Details)
		}
	}
}

// checkConfig validates the configuration seen from dir
func checkConfig(dir string) (CheckResult, bool) {
	if _, err := config.Resolve(dir); err != nil {
		return CheckResult{Name: "Config", Status: "✗", Details: "  " + err.Error()}, false
	}
	return CheckResult{Name: "Config", Status: "✓"}, true
}

// checkStore reports the configured medium
func checkStore(backend, location string, available bool) CheckResult {
	name := fmt.Sprintf("Store (%s)", backend)
	if !available {
		return CheckResult{
			Name:    name,
			Status:  "⚠",
			Details: "  No persistent medium: activities are not kept between commands",
		}
	}
	if location == "" {
		return CheckResult{
			Name:    name,
			Status:  "⚠",
			Details: "  In-memory store: activities are lost when the process exits",
		}
	}
	return CheckResult{Name: name, Status: "✓", Details: "  " + location}
}

// checkRecords loads the collection and reports how many activities it holds
func checkRecords(ctx context.Context, service primary.ActivityService) CheckResult {
	activities, err := service.ListActivities(ctx)
	if errors.Is(err, secondary.ErrCorruptStore) {
		return CheckResult{
			Name:    "Activities",
			Status:  "✗",
			Details: fmt.Sprintf("  %v\n  Fix or remove the stored value to continue", err),
		}
	}
	if err != nil {
		return CheckResult{Name: "Activities", Status: "✗", Details: "  " + err.Error()}
	}
	return CheckResult{Name: fmt.Sprintf("Activities (%d)", len(activities)), Status: "✓"}
}
