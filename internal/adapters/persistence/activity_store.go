// Package persistence adapts key-value media into the activity collection store.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	coreactivity "github.com/example/academia/internal/core/activity"
	"github.com/example/academia/internal/logger"
	"github.com/example/academia/internal/ports/secondary"
)

// Keys under which the collection and the ID sequence are stored.
const (
	CollectionKey = "atividades"
	SequenceKey   = "atividades:seq"
)

const dateLayout = "2006-01-02"

// ActivityStore implements secondary.ActivityStore over a key-value medium.
// A store built without a medium keeps nothing: Load returns an empty
// collection and writes are dropped.
type ActivityStore struct {
	kv  secondary.KeyValueStore
	log *logger.Logger
}

// NewActivityStore creates an activity store on kv. kv may be nil when no
// persistent medium exists.
func NewActivityStore(kv secondary.KeyValueStore, log *logger.Logger) *ActivityStore {
	if log == nil {
		log = logger.NewNop()
	}
	return &ActivityStore{kv: kv, log: log}
}

// Available reports whether a persistent medium backs the store.
func (s *ActivityStore) Available() bool {
	return s.kv != nil
}

// activityJSON is the persisted shape of one activity. Pointers tell absent
// fields apart from empty ones.
type activityJSON struct {
	ID          *string `json:"id"`
	Nome        *string `json:"nome"`
	Responsavel *string `json:"responsavel"`
	DataFim     *string `json:"dataFim"`
	Descricao   *string `json:"descricao,omitempty"`
	Tipo        *string `json:"tipo"`
}

// Load returns the stored collection, seeding an empty store first.
func (s *ActivityStore) Load(ctx context.Context) ([]*secondary.ActivityRecord, error) {
	if !s.Available() {
		s.log.Debug("no persistent medium, returning empty collection")
		return []*secondary.ActivityRecord{}, nil
	}

	raw, err := s.kv.Get(ctx, CollectionKey)
	if err != nil && !errors.Is(err, secondary.ErrKeyNotFound) {
		return nil, fmt.Errorf("failed to read activities: %w", err)
	}
	if errors.Is(err, secondary.ErrKeyNotFound) || strings.TrimSpace(raw) == "" {
		return s.seed(ctx)
	}

	return decodeActivities(raw)
}

// Save replaces the stored collection.
func (s *ActivityStore) Save(ctx context.Context, records []*secondary.ActivityRecord) error {
	if !s.Available() {
		return nil
	}

	raw, err := encodeActivities(records)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, CollectionKey, raw); err != nil {
		return fmt.Errorf("failed to write activities: %w", err)
	}
	return nil
}

// ReserveID allocates the next activity ID and records it in the sequence,
// so IDs of deleted activities are never handed out again.
func (s *ActivityStore) ReserveID(ctx context.Context, existing []*secondary.ActivityRecord) (string, error) {
	ids := make([]string, len(existing))
	for i, r := range existing {
		ids[i] = r.ID
	}

	if !s.Available() {
		id, _, err := coreactivity.NextID(0, ids)
		return id, err
	}

	seq, err := s.readSequence(ctx)
	if err != nil {
		return "", err
	}

	id, next, err := coreactivity.NextID(seq, ids)
	if err != nil {
		return "", err
	}
	if err := s.kv.Set(ctx, SequenceKey, strconv.Itoa(next)); err != nil {
		return "", fmt.Errorf("failed to record activity sequence: %w", err)
	}
	return id, nil
}

func (s *ActivityStore) readSequence(ctx context.Context) (int, error) {
	raw, err := s.kv.Get(ctx, SequenceKey)
	if errors.Is(err, secondary.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read activity sequence: %w", err)
	}

	seq, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || seq < 0 {
		return 0, &secondary.CorruptStoreError{
			Key:    SequenceKey,
			Index:  -1,
			Reason: fmt.Sprintf("sequence %q is not a non-negative integer", raw),
		}
	}
	return seq, nil
}

func (s *ActivityStore) seed(ctx context.Context) ([]*secondary.ActivityRecord, error) {
	seed := coreactivity.Seed()
	records := make([]*secondary.ActivityRecord, len(seed))
	for i, a := range seed {
		records[i] = &secondary.ActivityRecord{
			ID:          a.ID,
			Name:        a.Name,
			Responsible: a.Responsible,
			EndDate:     a.EndDate,
			Description: a.Description,
			Type:        string(a.Type),
		}
	}

	if err := s.Save(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to seed activities: %w", err)
	}
	s.log.Info("seeded empty activity store", "count", len(records))
	return records, nil
}

func encodeActivities(records []*secondary.ActivityRecord) (string, error) {
	out := make([]activityJSON, len(records))
	for i, r := range records {
		id, name, responsible, tipo := r.ID, r.Name, r.Responsible, r.Type
		end := r.EndDate.Format(dateLayout)
		out[i] = activityJSON{
			ID:          &id,
			Nome:        &name,
			Responsavel: &responsible,
			DataFim:     &end,
			Tipo:        &tipo,
		}
		if r.Description != "" {
			desc := r.Description
			out[i].Descricao = &desc
		}
	}

	data, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("failed to encode activities: %w", err)
	}
	return string(data), nil
}

func decodeActivities(raw string) ([]*secondary.ActivityRecord, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		return nil, corrupt(-1, "value is not a JSON array", err)
	}
	if elems == nil {
		return nil, corrupt(-1, "value is null", nil)
	}

	records := make([]*secondary.ActivityRecord, 0, len(elems))
	seen := make(map[string]bool, len(elems))
	for i, elem := range elems {
		var a activityJSON
		if err := json.Unmarshal(elem, &a); err != nil {
			return nil, corrupt(i, "malformed activity", err)
		}

		record, reason := a.toRecord()
		if reason != "" {
			return nil, corrupt(i, reason, nil)
		}
		if seen[record.ID] {
			return nil, corrupt(i, fmt.Sprintf("duplicate id %q", record.ID), nil)
		}
		seen[record.ID] = true
		records = append(records, record)
	}
	return records, nil
}

func (a activityJSON) toRecord() (*secondary.ActivityRecord, string) {
	switch {
	case a.ID == nil || *a.ID == "":
		return nil, "missing id"
	case a.Nome == nil:
		return nil, "missing nome"
	case a.Responsavel == nil:
		return nil, "missing responsavel"
	case a.DataFim == nil:
		return nil, "missing dataFim"
	case a.Tipo == nil:
		return nil, "missing tipo"
	}

	if !coreactivity.Type(*a.Tipo).Valid() {
		return nil, fmt.Sprintf("unknown tipo %q", *a.Tipo)
	}
	end, err := parseDate(*a.DataFim)
	if err != nil {
		return nil, fmt.Sprintf("invalid dataFim %q", *a.DataFim)
	}

	record := &secondary.ActivityRecord{
		ID:          *a.ID,
		Name:        *a.Nome,
		Responsible: *a.Responsavel,
		EndDate:     end,
		Type:        *a.Tipo,
	}
	if a.Descricao != nil {
		record.Description = *a.Descricao
	}
	return record, ""
}

// parseDate accepts a plain date or an RFC 3339 timestamp and returns UTC
// midnight of its calendar day.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

func corrupt(index int, reason string, err error) error {
	return &secondary.CorruptStoreError{
		Key:    CollectionKey,
		Index:  index,
		Reason: reason,
		Err:    err,
	}
}

// Ensure ActivityStore implements the interface.
var _ secondary.ActivityStore = (*ActivityStore)(nil)
