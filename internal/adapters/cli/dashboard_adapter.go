package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/academia/internal/ports/primary"
)

// DashboardAdapter renders the dashboard view.
type DashboardAdapter struct {
	service primary.DashboardService
	out     io.Writer
}

// NewDashboardAdapter creates a new DashboardAdapter with the given service.
func NewDashboardAdapter(service primary.DashboardService, out io.Writer) *DashboardAdapter {
	return &DashboardAdapter{
		service: service,
		out:     out,
	}
}

// Show prints totals, a per-type bar chart and the leading activities.
func (a *DashboardAdapter) Show(ctx context.Context) error {
	dash, err := a.service.GetDashboard(ctx)
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	fmt.Fprintf(a.out, "\n%s %d\n\n", bold.Sprint("Activities:"), dash.Total)

	fmt.Fprintln(a.out, bold.Sprint("By type"))
	for _, c := range dash.ByType {
		bar := strings.Repeat("█", c.Count)
		fmt.Fprintf(a.out, "  %-10s %3d %s\n", c.TypeName, c.Count, TypeMarker(c.Type, bar))
	}

	fmt.Fprintln(a.out)
	if len(dash.Recent) == 0 {
		fmt.Fprintln(a.out, "No activities yet")
		return nil
	}

	fmt.Fprintln(a.out, bold.Sprint("Activities"))
	for _, act := range dash.Recent {
		fmt.Fprintf(a.out, "  %s %s: %s (%s, ends %s)\n",
			TypeMarker(act.Type, "●"),
			act.ID,
			act.Name,
			act.Responsible,
			act.EndDate.Format(displayDate),
		)
	}
	fmt.Fprintln(a.out)

	return nil
}
