// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import (
	"context"
	"errors"
	"time"
)

// ErrActivityNotFound signals that no activity has the requested ID.
var ErrActivityNotFound = errors.New("activity not found")

// ActivityService defines the primary port for activity operations.
// It is the only way the presentation layer changes the activity collection.
// Field constraints (lengths, end date, type) are checked by the caller.
type ActivityService interface {
	// CreateActivity assigns an ID to a new activity and stores it.
	CreateActivity(ctx context.Context, req CreateActivityRequest) (*CreateActivityResponse, error)

	// ListActivities returns every activity in storage order.
	ListActivities(ctx context.Context) ([]*Activity, error)

	// GetActivity retrieves an activity by ID.
	// Returns ErrActivityNotFound when absent.
	GetActivity(ctx context.Context, activityID string) (*Activity, error)

	// UpdateActivity merges the fields set in the request over the stored activity.
	// Returns ErrActivityNotFound, without writing, when absent.
	UpdateActivity(ctx context.Context, req UpdateActivityRequest) (*Activity, error)

	// DeleteActivity removes an activity and reports whether one was removed.
	DeleteActivity(ctx context.Context, activityID string) (bool, error)
}

// CreateActivityRequest contains parameters for creating an activity.
type CreateActivityRequest struct {
	Name        string
	Responsible string
	EndDate     time.Time
	Description string
	Type        string // English name or stored label
}

// CreateActivityResponse contains the result of creating an activity.
type CreateActivityResponse struct {
	ActivityID string
	Activity   *Activity
}

// UpdateActivityRequest contains parameters for editing an activity.
// Nil fields are preserved.
type UpdateActivityRequest struct {
	ActivityID  string
	Name        *string
	Responsible *string
	EndDate     *time.Time
	Description *string
	Type        *string
}

// Activity represents an academic activity at the port boundary.
type Activity struct {
	ID          string
	Name        string
	Responsible string
	EndDate     time.Time
	Description string
	Type        string // stored label: Pesquisa, Docência or Extensão
	TypeName    string // English name: Research, Teaching or Outreach
}
