// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting, but delegate
// business logic to services.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/academia/internal/ports/primary"
)

// displayDate is how end dates are shown to users.
const displayDate = "02/01/2006"

// ActivityAdapter is a thin adapter that translates CLI operations to ActivityService calls.
// It depends only on the ActivityService interface, enabling easy testing with mocks.
type ActivityAdapter struct {
	service primary.ActivityService
	out     io.Writer
}

// NewActivityAdapter creates a new ActivityAdapter with the given service.
func NewActivityAdapter(service primary.ActivityService, out io.Writer) *ActivityAdapter {
	return &ActivityAdapter{
		service: service,
		out:     out,
	}
}

// Create creates a new activity.
func (a *ActivityAdapter) Create(ctx context.Context, req primary.CreateActivityRequest) error {
	resp, err := a.service.CreateActivity(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Created activity %s: %s\n", resp.ActivityID, resp.Activity.Name)
	return nil
}

// List lists every activity in storage order.
func (a *ActivityAdapter) List(ctx context.Context) error {
	activities, err := a.service.ListActivities(ctx)
	if err != nil {
		return fmt.Errorf("failed to list activities: %w", err)
	}

	if len(activities) == 0 {
		fmt.Fprintln(a.out, "No activities found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-6s %-10s %-10s %-20s %s\n", "ID", "TYPE", "ENDS", "RESPONSIBLE", "NAME")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, act := range activities {
		fmt.Fprintf(a.out, "%-6s %s %-10s %-20s %s\n",
			act.ID,
			TypeMarker(act.Type, fmt.Sprintf("%-10s", act.TypeName)),
			act.EndDate.Format(displayDate),
			act.Responsible,
			act.Name,
		)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Show displays details for a single activity.
func (a *ActivityAdapter) Show(ctx context.Context, activityID string) (*primary.Activity, error) {
	act, err := a.service.GetActivity(ctx, activityID)
	if errors.Is(err, primary.ErrActivityNotFound) {
		return nil, fmt.Errorf("activity %s not found", activityID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	fmt.Fprintf(a.out, "\nActivity:    %s\n", act.ID)
	fmt.Fprintf(a.out, "Name:        %s\n", act.Name)
	fmt.Fprintf(a.out, "Responsible: %s\n", act.Responsible)
	fmt.Fprintf(a.out, "Type:        %s\n", TypeMarker(act.Type, fmt.Sprintf("%s (%s)", act.TypeName, act.Type)))
	fmt.Fprintf(a.out, "Ends:        %s\n", act.EndDate.Format(displayDate))
	if act.Description != "" {
		fmt.Fprintf(a.out, "Description: %s\n", act.Description)
	}
	fmt.Fprintln(a.out)

	return act, nil
}

// Update applies an edit to an activity.
func (a *ActivityAdapter) Update(ctx context.Context, req primary.UpdateActivityRequest) error {
	_, err := a.service.UpdateActivity(ctx, req)
	if errors.Is(err, primary.ErrActivityNotFound) {
		return fmt.Errorf("activity %s not found", req.ActivityID)
	}
	if err != nil {
		return fmt.Errorf("failed to update activity: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Activity %s updated\n", req.ActivityID)
	return nil
}

// Delete removes an activity.
func (a *ActivityAdapter) Delete(ctx context.Context, activityID string) error {
	removed, err := a.service.DeleteActivity(ctx, activityID)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	if !removed {
		return fmt.Errorf("activity %s not found", activityID)
	}

	fmt.Fprintf(a.out, "✓ Deleted activity %s\n", activityID)
	return nil
}

// TypeMarker colours text by activity type label.
func TypeMarker(label, text string) string {
	return typeColor(label).Sprint(text)
}

func typeColor(label string) *color.Color {
	switch label {
	case "Pesquisa":
		return color.New(color.FgHiBlue)
	case "Docência":
		return color.New(color.FgYellow)
	case "Extensão":
		return color.New(color.FgHiGreen)
	}
	return color.New(color.FgWhite)
}
