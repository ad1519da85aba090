package primary

import "context"

// DashboardService defines the primary port for the dashboard view.
type DashboardService interface {
	// GetDashboard aggregates the activity collection.
	GetDashboard(ctx context.Context) (*Dashboard, error)
}

// Dashboard is the aggregated view of all activities.
type Dashboard struct {
	Total  int
	ByType []TypeCount // always Research, Teaching, Outreach in that order
	Recent []*Activity // leading activities in storage order
}

// TypeCount is the number of activities of one type.
type TypeCount struct {
	Type     string
	TypeName string
	Count    int
}
