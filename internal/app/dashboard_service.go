package app

import (
	"context"
	"fmt"

	coreactivity "github.com/example/academia/internal/core/activity"
	"github.com/example/academia/internal/ports/primary"
)

// DashboardServiceImpl implements the DashboardService interface.
// It reads through the ActivityService and never touches storage directly.
type DashboardServiceImpl struct {
	activities primary.ActivityService
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(activities primary.ActivityService) *DashboardServiceImpl {
	return &DashboardServiceImpl{activities: activities}
}

// GetDashboard counts activities per type and picks the leading ones.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*primary.Dashboard, error) {
	activities, err := s.activities.ListActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}

	types := make([]coreactivity.Type, len(activities))
	for i, a := range activities {
		types[i] = coreactivity.Type(a.Type)
	}

	tally := coreactivity.Tally(types)
	byType := make([]primary.TypeCount, len(tally))
	for i, c := range tally {
		byType[i] = primary.TypeCount{
			Type:     string(c.Type),
			TypeName: c.Type.Name(),
			Count:    c.Count,
		}
	}

	return &primary.Dashboard{
		Total:  len(activities),
		ByType: byType,
		Recent: activities[:coreactivity.Recent(len(activities))],
	}, nil
}

// Ensure DashboardServiceImpl implements the interface.
var _ primary.DashboardService = (*DashboardServiceImpl)(nil)
