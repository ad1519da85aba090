package app

import (
	"context"
	"fmt"
	"time"

	coreactivity "github.com/example/academia/internal/core/activity"
	"github.com/example/academia/internal/ports/primary"
	"github.com/example/academia/internal/ports/secondary"
)

const activityEntity = "activity"

// ActivityServiceImpl implements the ActivityService interface.
// Every operation reads the whole collection, applies one change and writes
// the whole collection back.
type ActivityServiceImpl struct {
	store     secondary.ActivityStore
	logWriter secondary.LogWriter
}

// NewActivityService creates a new ActivityService with injected dependencies.
func NewActivityService(store secondary.ActivityStore, logWriter secondary.LogWriter) *ActivityServiceImpl {
	return &ActivityServiceImpl{
		store:     store,
		logWriter: logWriter,
	}
}

// CreateActivity creates a new activity.
func (s *ActivityServiceImpl) CreateActivity(ctx context.Context, req primary.CreateActivityRequest) (*primary.CreateActivityResponse, error) {
	typ, err := coreactivity.ParseType(req.Type)
	if err != nil {
		return nil, err
	}

	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load activities: %w", err)
	}

	nextID, err := s.store.ReserveID(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("failed to generate activity ID: %w", err)
	}

	record := &secondary.ActivityRecord{
		ID:          nextID,
		Name:        req.Name,
		Responsible: req.Responsible,
		EndDate:     coreactivity.CalendarDay(req.EndDate),
		Description: req.Description,
		Type:        string(typ),
	}
	records = append(records, record)

	if err := s.store.Save(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to save activities: %w", err)
	}

	// Audit is best-effort; the activity is already stored
	_ = s.logWriter.LogCreate(ctx, activityEntity, nextID)

	return &primary.CreateActivityResponse{
		ActivityID: nextID,
		Activity:   s.recordToActivity(record),
	}, nil
}

// ListActivities retrieves all activities in storage order.
func (s *ActivityServiceImpl) ListActivities(ctx context.Context) ([]*primary.Activity, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	activities := make([]*primary.Activity, len(records))
	for i, r := range records {
		activities[i] = s.recordToActivity(r)
	}
	return activities, nil
}

// GetActivity retrieves an activity by ID.
func (s *ActivityServiceImpl) GetActivity(ctx context.Context, activityID string) (*primary.Activity, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load activities: %w", err)
	}

	i := indexOf(records, activityID)
	if i < 0 {
		return nil, notFound(activityID)
	}
	return s.recordToActivity(records[i]), nil
}

// UpdateActivity merges the set fields of the request over an activity.
func (s *ActivityServiceImpl) UpdateActivity(ctx context.Context, req primary.UpdateActivityRequest) (*primary.Activity, error) {
	patch, err := requestToPatch(req)
	if err != nil {
		return nil, err
	}

	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load activities: %w", err)
	}

	i := indexOf(records, req.ActivityID)
	if i < 0 {
		return nil, notFound(req.ActivityID)
	}

	before := recordToCore(records[i])
	after := coreactivity.ApplyPatch(before, patch)
	records[i] = coreToRecord(after)

	if err := s.store.Save(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to save activities: %w", err)
	}

	for _, c := range changedFields(before, after) {
		_ = s.logWriter.LogUpdate(ctx, activityEntity, after.ID, c.field, c.from, c.to)
	}

	return s.recordToActivity(records[i]), nil
}

// DeleteActivity removes an activity and reports whether it existed.
func (s *ActivityServiceImpl) DeleteActivity(ctx context.Context, activityID string) (bool, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load activities: %w", err)
	}

	kept := make([]*secondary.ActivityRecord, 0, len(records))
	for _, r := range records {
		if r.ID != activityID {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return false, nil
	}

	if err := s.store.Save(ctx, kept); err != nil {
		return false, fmt.Errorf("failed to save activities: %w", err)
	}

	_ = s.logWriter.LogDelete(ctx, activityEntity, activityID)
	return true, nil
}

// Helper methods

func (s *ActivityServiceImpl) recordToActivity(r *secondary.ActivityRecord) *primary.Activity {
	return &primary.Activity{
		ID:          r.ID,
		Name:        r.Name,
		Responsible: r.Responsible,
		EndDate:     r.EndDate,
		Description: r.Description,
		Type:        r.Type,
		TypeName:    coreactivity.Type(r.Type).Name(),
	}
}

func indexOf(records []*secondary.ActivityRecord, id string) int {
	for i, r := range records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func notFound(id string) error {
	return fmt.Errorf("%w: %s", primary.ErrActivityNotFound, id)
}

func requestToPatch(req primary.UpdateActivityRequest) (coreactivity.Patch, error) {
	patch := coreactivity.Patch{
		Name:        req.Name,
		Responsible: req.Responsible,
		Description: req.Description,
	}
	if req.EndDate != nil {
		day := coreactivity.CalendarDay(*req.EndDate)
		patch.EndDate = &day
	}
	if req.Type != nil {
		typ, err := coreactivity.ParseType(*req.Type)
		if err != nil {
			return coreactivity.Patch{}, err
		}
		patch.Type = &typ
	}
	return patch, nil
}

func recordToCore(r *secondary.ActivityRecord) coreactivity.Activity {
	return coreactivity.Activity{
		ID:          r.ID,
		Name:        r.Name,
		Responsible: r.Responsible,
		EndDate:     r.EndDate,
		Description: r.Description,
		Type:        coreactivity.Type(r.Type),
	}
}

func coreToRecord(a coreactivity.Activity) *secondary.ActivityRecord {
	return &secondary.ActivityRecord{
		ID:          a.ID,
		Name:        a.Name,
		Responsible: a.Responsible,
		EndDate:     a.EndDate,
		Description: a.Description,
		Type:        string(a.Type),
	}
}

type fieldChange struct {
	field, from, to string
}

func changedFields(before, after coreactivity.Activity) []fieldChange {
	var changes []fieldChange
	add := func(field, from, to string) {
		if from != to {
			changes = append(changes, fieldChange{field, from, to})
		}
	}
	add("name", before.Name, after.Name)
	add("responsible", before.Responsible, after.Responsible)
	add("end_date", before.EndDate.Format(time.DateOnly), after.EndDate.Format(time.DateOnly))
	add("description", before.Description, after.Description)
	add("type", string(before.Type), string(after.Type))
	return changes
}

// Ensure ActivityServiceImpl implements the interface.
var _ primary.ActivityService = (*ActivityServiceImpl)(nil)
