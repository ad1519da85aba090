package persistence_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/example/academia/internal/adapters/memory"
	"github.com/example/academia/internal/adapters/persistence"
	coreactivity "github.com/example/academia/internal/core/activity"
	"github.com/example/academia/internal/logger"
	"github.com/example/academia/internal/ports/secondary"
)

func newTestStore(t *testing.T) (*persistence.ActivityStore, *memory.KVStore) {
	t.Helper()
	kv := memory.NewKVStore()
	return persistence.NewActivityStore(kv, logger.NewNop()), kv
}

func ids(records []*secondary.ActivityRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestActivityStore_LoadSeedsEmptyStore(t *testing.T) {
	store, kv := newTestStore(t)
	ctx := context.Background()

	records, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := ids(records); !reflect.DeepEqual(got, []string{"1", "2", "3"}) {
		t.Errorf("expected seed ids [1 2 3], got %v", got)
	}
	if records[1].Type != "Docência" {
		t.Errorf("expected second seed to be Docência, got %q", records[1].Type)
	}

	raw, err := kv.Get(ctx, persistence.CollectionKey)
	if err != nil {
		t.Fatalf("expected seed to be written: %v", err)
	}
	if !strings.Contains(raw, `"nome":"Pesquisa sobre IA"`) || !strings.Contains(raw, `"dataFim":"2025-06-30"`) {
		t.Errorf("unexpected persisted seed: %s", raw)
	}
}

func TestActivityStore_SeedOnce(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("first Load failed: %v", err)
	}
	second, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("second Load differs from first:\n%+v\n%+v", first, second)
	}
	if len(second) != 3 {
		t.Errorf("expected 3 records after second load, got %d", len(second))
	}
}

func TestActivityStore_SeedLogged(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	store := persistence.NewActivityStore(memory.NewKVStore(), logger.FromZap(zap.New(core)))

	if _, err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if n := logs.FilterMessage("seeded empty activity store").Len(); n != 1 {
		t.Errorf("expected one seeding log entry, got %d", n)
	}
}

func TestActivityStore_EmptyValueIsSeeded(t *testing.T) {
	store, kv := newTestStore(t)
	ctx := context.Background()
	if err := kv.Set(ctx, persistence.CollectionKey, ""); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	records, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("expected seed, got %d records", len(records))
	}
}

func TestActivityStore_EmptyArrayIsNotSeeded(t *testing.T) {
	store, kv := newTestStore(t)
	ctx := context.Background()
	if err := kv.Set(ctx, persistence.CollectionKey, "[]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	records, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty collection, got %d records", len(records))
	}
}

func TestActivityStore_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	saved := []*secondary.ActivityRecord{
		{
			ID:          "10",
			Name:        "Oficina de Robótica",
			Responsible: "Ana",
			EndDate:     time.Date(2027, time.February, 1, 0, 0, 0, 0, time.UTC),
			Description: "Extensão em escolas públicas",
			Type:        "Extensão",
		},
		{
			ID:          "2",
			Name:        "Cálculo I",
			Responsible: "Elmano",
			EndDate:     time.Date(2026, time.December, 15, 0, 0, 0, 0, time.UTC),
			Type:        "Docência",
		},
	}

	if err := store.Save(ctx, saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !reflect.DeepEqual(saved, loaded) {
		t.Errorf("round trip mismatch:\nsaved  %+v\nloaded %+v", saved, loaded)
	}
}

func TestActivityStore_OmitsEmptyDescription(t *testing.T) {
	store, kv := newTestStore(t)
	ctx := context.Background()

	err := store.Save(ctx, []*secondary.ActivityRecord{{
		ID: "1", Name: "Nome", Responsible: "Resp", Type: "Pesquisa",
		EndDate: time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC),
	}})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	raw, _ := kv.Get(ctx, persistence.CollectionKey)
	if strings.Contains(raw, "descricao") {
		t.Errorf("expected descricao to be omitted, got %s", raw)
	}
}

func TestActivityStore_AcceptsTimestampDates(t *testing.T) {
	store, kv := newTestStore(t)
	ctx := context.Background()

	raw := `[{"id":"1","nome":"Pesquisa sobre IA","responsavel":"Tiago","dataFim":"2025-06-30T00:00:00.000Z","tipo":"Pesquisa"}]`
	if err := kv.Set(ctx, persistence.CollectionKey, raw); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	records, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
	if !records[0].EndDate.Equal(want) {
		t.Errorf("expected %v, got %v", want, records[0].EndDate)
	}
}

func TestActivityStore_CorruptValues(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantIndex int
		wantText  string
	}{
		{"not json", `{oops`, -1, "not a JSON array"},
		{"object instead of array", `{"id":"1"}`, -1, "not a JSON array"},
		{"null", `null`, -1, "value is null"},
		{"numeric id", `[{"id":1,"nome":"a","responsavel":"b","dataFim":"2026-01-01","tipo":"Pesquisa"}]`, 0, "malformed activity"},
		{"missing nome", `[{"id":"1","responsavel":"b","dataFim":"2026-01-01","tipo":"Pesquisa"}]`, 0, "missing nome"},
		{"missing id", `[{"nome":"a","responsavel":"b","dataFim":"2026-01-01","tipo":"Pesquisa"}]`, 0, "missing id"},
		{"unknown tipo", `[{"id":"1","nome":"a","responsavel":"b","dataFim":"2026-01-01","tipo":"Lazer"}]`, 0, "unknown tipo"},
		{"bad date", `[{"id":"1","nome":"a","responsavel":"b","dataFim":"amanhã","tipo":"Pesquisa"}]`, 0, "invalid dataFim"},
		{"null element", `[null]`, 0, "missing id"},
		{
			"duplicate id",
			`[{"id":"1","nome":"a","responsavel":"b","dataFim":"2026-01-01","tipo":"Pesquisa"},` +
				`{"id":"1","nome":"c","responsavel":"d","dataFim":"2026-01-01","tipo":"Docência"}]`,
			1, "duplicate id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, kv := newTestStore(t)
			ctx := context.Background()
			if err := kv.Set(ctx, persistence.CollectionKey, tt.raw); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			_, err := store.Load(ctx)
			if !errors.Is(err, secondary.ErrCorruptStore) {
				t.Fatalf("expected ErrCorruptStore, got %v", err)
			}
			var corruptErr *secondary.CorruptStoreError
			if !errors.As(err, &corruptErr) {
				t.Fatalf("expected *CorruptStoreError, got %T", err)
			}
			if corruptErr.Index != tt.wantIndex {
				t.Errorf("Index = %d, want %d", corruptErr.Index, tt.wantIndex)
			}
			if !strings.Contains(err.Error(), tt.wantText) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantText)
			}

			// The corrupt value is left untouched
			raw, _ := kv.Get(ctx, persistence.CollectionKey)
			if raw != tt.raw {
				t.Errorf("corrupt value was modified: %s", raw)
			}
		})
	}
}

func TestActivityStore_ReserveID(t *testing.T) {
	store, kv := newTestStore(t)
	ctx := context.Background()

	records, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	id, err := store.ReserveID(ctx, records)
	if err != nil {
		t.Fatalf("ReserveID failed: %v", err)
	}
	if id != "4" {
		t.Errorf("expected id 4 after seed, got %s", id)
	}

	seq, _ := kv.Get(ctx, persistence.SequenceKey)
	if seq != "4" {
		t.Errorf("expected sequence 4, got %q", seq)
	}

	// Reserved but unused ids are not handed out again
	id, err = store.ReserveID(ctx, records)
	if err != nil {
		t.Fatalf("ReserveID failed: %v", err)
	}
	if id != "5" {
		t.Errorf("expected id 5, got %s", id)
	}
}

func TestActivityStore_ReserveIDOnEmptyCollection(t *testing.T) {
	store, _ := newTestStore(t)

	id, err := store.ReserveID(context.Background(), nil)
	if err != nil {
		t.Fatalf("ReserveID failed: %v", err)
	}
	if id != "1" {
		t.Errorf("expected id 1, got %s", id)
	}
}

func TestActivityStore_ReserveIDIgnoresIDAtIntegerLimit(t *testing.T) {
	store, kv := newTestStore(t)
	ctx := context.Background()
	existing := []*secondary.ActivityRecord{{ID: "9223372036854775807"}}

	first, err := store.ReserveID(ctx, existing)
	if err != nil {
		t.Fatalf("ReserveID failed: %v", err)
	}
	existing = append(existing, &secondary.ActivityRecord{ID: first})

	second, err := store.ReserveID(ctx, existing)
	if err != nil {
		t.Fatalf("second ReserveID failed: %v", err)
	}
	if first != "1" || second != "2" {
		t.Errorf("expected ids 1 and 2, got %s and %s", first, second)
	}

	seq, err := kv.Get(ctx, persistence.SequenceKey)
	if err != nil || seq != "2" {
		t.Errorf("expected sequence 2, got %q (%v)", seq, err)
	}
}

func TestActivityStore_ReserveIDExhausted(t *testing.T) {
	store, kv := newTestStore(t)
	ctx := context.Background()
	if err := kv.Set(ctx, persistence.SequenceKey, "9223372036854775806"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	_, err := store.ReserveID(ctx, nil)
	if !errors.Is(err, coreactivity.ErrIDSpaceExhausted) {
		t.Fatalf("expected ErrIDSpaceExhausted, got %v", err)
	}

	seq, _ := kv.Get(ctx, persistence.SequenceKey)
	if seq != "9223372036854775806" {
		t.Errorf("expected sequence untouched, got %q", seq)
	}
}

func TestActivityStore_CorruptSequence(t *testing.T) {
	store, kv := newTestStore(t)
	ctx := context.Background()
	if err := kv.Set(ctx, persistence.SequenceKey, "many"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	_, err := store.ReserveID(ctx, nil)
	if !errors.Is(err, secondary.ErrCorruptStore) {
		t.Errorf("expected ErrCorruptStore, got %v", err)
	}
}

func TestActivityStore_WithoutMedium(t *testing.T) {
	store := persistence.NewActivityStore(nil, nil)
	ctx := context.Background()

	if store.Available() {
		t.Error("expected store without medium to be unavailable")
	}

	records, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty collection, got %d", len(records))
	}

	err = store.Save(ctx, []*secondary.ActivityRecord{{ID: "1", Name: "x", Type: "Pesquisa"}})
	if err != nil {
		t.Errorf("expected Save to be a no-op, got %v", err)
	}
	records, _ = store.Load(ctx)
	if len(records) != 0 {
		t.Errorf("expected Save to be dropped, got %d records", len(records))
	}

	id, err := store.ReserveID(ctx, nil)
	if err != nil || id != "1" {
		t.Errorf("expected id 1 without error, got %q, %v", id, err)
	}
}
