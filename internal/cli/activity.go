package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	coreactivity "github.com/example/academia/internal/core/activity"
	"github.com/example/academia/internal/ports/primary"
	"github.com/example/academia/internal/wire"
)

// dateFlagLayout is the format accepted by --end-date.
const dateFlagLayout = "2006-01-02"

var activityCmd = &cobra.Command{
	Use:     "activity",
	Aliases: []string{"atividade"},
	Short:   "Manage academic activities",
	Long:    "Create, list, edit and delete research, teaching and outreach activities",
}

var activityCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new activity",
	Long: `Create a new activity. Name and responsible must be 3-100 characters and
the end date must be today or later.

Examples:
  academia activity create --name "Pesquisa sobre IA" --responsible Tiago \
    --end-date 2030-06-30 --type research`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		responsible, _ := cmd.Flags().GetString("responsible")
		endDateRaw, _ := cmd.Flags().GetString("end-date")
		description, _ := cmd.Flags().GetString("description")
		typ, _ := cmd.Flags().GetString("type")

		req, err := buildCreateRequest(name, responsible, endDateRaw, description, typ, time.Now())
		if err != nil {
			return err
		}

		return wire.ActivityAdapterWithOutput(cmd.OutOrStdout()).Create(commandContext(cmd), req)
	},
}

var activityListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List activities",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.ActivityAdapterWithOutput(cmd.OutOrStdout()).List(commandContext(cmd))
	},
}

var activityShowCmd = &cobra.Command{
	Use:   "show [activity-id]",
	Short: "Show activity details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.ActivityAdapterWithOutput(cmd.OutOrStdout()).Show(commandContext(cmd), args[0])
		return err
	},
}

var activityUpdateCmd = &cobra.Command{
	Use:   "update [activity-id]",
	Short: "Edit an activity",
	Long: `Edit an activity. Only the flags given are changed; an empty
--description clears the description.

Examples:
  academia activity update 2 --end-date 2030-07-20
  academia activity update 3 --type outreach --description ""`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := buildUpdateRequest(cmd, args[0], time.Now())
		if err != nil {
			return err
		}

		return wire.ActivityAdapterWithOutput(cmd.OutOrStdout()).Update(commandContext(cmd), req)
	},
}

var activityDeleteCmd = &cobra.Command{
	Use:     "delete [activity-id]",
	Aliases: []string{"rm"},
	Short:   "Delete an activity",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		yes, _ := cmd.Flags().GetBool("yes")

		if !yes && !confirmPrompt(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete activity %s?", id)) {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}

		return wire.ActivityAdapterWithOutput(cmd.OutOrStdout()).Delete(commandContext(cmd), id)
	},
}

// buildCreateRequest validates raw flag values and builds a create request.
// Text values are stored trimmed, as they are measured.
func buildCreateRequest(name, responsible, endDateRaw, description, typ string, now time.Time) (primary.CreateActivityRequest, error) {
	name = strings.TrimSpace(name)
	responsible = strings.TrimSpace(responsible)
	description = strings.TrimSpace(description)

	var endDate time.Time
	if endDateRaw != "" {
		d, err := parseEndDate(endDateRaw)
		if err != nil {
			return primary.CreateActivityRequest{}, err
		}
		endDate = d
	}

	guard := coreactivity.CanCreateActivity(coreactivity.CreateActivityContext{
		Name:        name,
		Responsible: responsible,
		EndDate:     endDate,
		Type:        typ,
		Today:       now,
	})
	if err := guard.Error(); err != nil {
		return primary.CreateActivityRequest{}, err
	}

	return primary.CreateActivityRequest{
		Name:        name,
		Responsible: responsible,
		EndDate:     endDate,
		Description: description,
		Type:        typ,
	}, nil
}

// buildUpdateRequest turns the flags that were set into an update request.
func buildUpdateRequest(cmd *cobra.Command, id string, now time.Time) (primary.UpdateActivityRequest, error) {
	req := primary.UpdateActivityRequest{ActivityID: id}
	flags := cmd.Flags()

	if flags.Changed("name") {
		v, _ := flags.GetString("name")
		v = strings.TrimSpace(v)
		req.Name = &v
	}
	if flags.Changed("responsible") {
		v, _ := flags.GetString("responsible")
		v = strings.TrimSpace(v)
		req.Responsible = &v
	}
	if flags.Changed("end-date") {
		raw, _ := flags.GetString("end-date")
		d, err := parseEndDate(raw)
		if err != nil {
			return req, err
		}
		req.EndDate = &d
	}
	if flags.Changed("description") {
		v, _ := flags.GetString("description")
		v = strings.TrimSpace(v)
		req.Description = &v
	}
	if flags.Changed("type") {
		v, _ := flags.GetString("type")
		req.Type = &v
	}

	guard := coreactivity.CanUpdateActivity(coreactivity.UpdateActivityContext{
		Name:        req.Name,
		Responsible: req.Responsible,
		EndDate:     req.EndDate,
		Description: req.Description,
		Type:        req.Type,
		Today:       now,
	})
	if err := guard.Error(); err != nil {
		return req, err
	}
	return req, nil
}

// parseEndDate parses a YYYY-MM-DD flag value as a UTC calendar day.
func parseEndDate(raw string) (time.Time, error) {
	d, err := time.Parse(dateFlagLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid end date %q (expected YYYY-MM-DD)", raw)
	}
	return d, nil
}

func addActivityFieldFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("name", "n", "", "Activity name (3-100 characters)")
	cmd.Flags().StringP("responsible", "r", "", "Person responsible (3-100 characters)")
	cmd.Flags().StringP("end-date", "e", "", "End date (YYYY-MM-DD, today or later)")
	cmd.Flags().StringP("description", "d", "", "Optional description")
	cmd.Flags().StringP("type", "t", "", "Activity type: research, teaching or outreach")
}

// ActivityCmd returns the activity command
func ActivityCmd() *cobra.Command {
	// Add flags
	addActivityFieldFlags(activityCreateCmd)
	addActivityFieldFlags(activityUpdateCmd)
	activityDeleteCmd.Flags().BoolP("yes", "y", false, "Skip confirmation prompt")

	// Add subcommands
	activityCmd.AddCommand(activityCreateCmd)
	activityCmd.AddCommand(activityListCmd)
	activityCmd.AddCommand(activityShowCmd)
	activityCmd.AddCommand(activityUpdateCmd)
	activityCmd.AddCommand(activityDeleteCmd)

	return activityCmd
}
