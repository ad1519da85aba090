package app

import (
	"context"
	"strconv"
	"time"

	"github.com/example/academia/internal/ports/secondary"
)

// Ensure mocks implement the interfaces
var (
	_ secondary.ActivityStore = (*mockActivityStore)(nil)
	_ secondary.LogWriter     = (*mockLogWriter)(nil)
)

// mockActivityStore implements secondary.ActivityStore for testing.
// It keeps the collection in a slice and counts writes.
type mockActivityStore struct {
	records    []*secondary.ActivityRecord
	seq        int
	saves      int
	loadErr    error
	saveErr    error
	reserveErr error
}

func newMockActivityStore(records ...*secondary.ActivityRecord) *mockActivityStore {
	return &mockActivityStore{records: records}
}

func (m *mockActivityStore) Load(ctx context.Context) ([]*secondary.ActivityRecord, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]*secondary.ActivityRecord, len(m.records))
	for i, r := range m.records {
		c := *r
		out[i] = &c
	}
	return out, nil
}

func (m *mockActivityStore) Save(ctx context.Context, records []*secondary.ActivityRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.records = make([]*secondary.ActivityRecord, len(records))
	for i, r := range records {
		c := *r
		m.records[i] = &c
	}
	return nil
}

func (m *mockActivityStore) ReserveID(ctx context.Context, existing []*secondary.ActivityRecord) (string, error) {
	if m.reserveErr != nil {
		return "", m.reserveErr
	}
	m.seq++
	return strconv.Itoa(m.seq), nil
}

func (m *mockActivityStore) Available() bool {
	return true
}

type logEntry struct {
	action, entityID, field, from, to string
}

// mockLogWriter implements secondary.LogWriter and records every entry.
type mockLogWriter struct {
	entries []logEntry
}

func (m *mockLogWriter) LogCreate(ctx context.Context, entityType, entityID string) error {
	m.entries = append(m.entries, logEntry{action: "create", entityID: entityID})
	return nil
}

func (m *mockLogWriter) LogUpdate(ctx context.Context, entityType, entityID, fieldName, oldValue, newValue string) error {
	m.entries = append(m.entries, logEntry{action: "update", entityID: entityID, field: fieldName, from: oldValue, to: newValue})
	return nil
}

func (m *mockLogWriter) LogDelete(ctx context.Context, entityType, entityID string) error {
	m.entries = append(m.entries, logEntry{action: "delete", entityID: entityID})
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleRecords() []*secondary.ActivityRecord {
	return []*secondary.ActivityRecord{
		{ID: "1", Name: "Pesquisa sobre IA", Responsible: "Tiago", EndDate: date(2027, time.June, 30), Description: "IA aplicada", Type: "Pesquisa"},
		{ID: "2", Name: "Curso de Programação", Responsible: "Elmano", EndDate: date(2027, time.July, 20), Type: "Docência"},
		{ID: "3", Name: "Projeto Social", Responsible: "Jermana", EndDate: date(2027, time.September, 25), Type: "Extensão"},
	}
}
