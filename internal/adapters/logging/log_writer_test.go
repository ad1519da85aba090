package logging_test

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/example/academia/internal/adapters/logging"
	"github.com/example/academia/internal/ctxutil"
	"github.com/example/academia/internal/logger"
)

func newObservedWriter() (*logging.AuditLogWriter, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return logging.NewAuditLogWriter(logger.FromZap(zap.New(core))), logs
}

func TestAuditLogWriter_LogCreate(t *testing.T) {
	writer, logs := newObservedWriter()
	ctx := ctxutil.WithActor(context.Background(), "tiago")

	if err := writer.LogCreate(ctx, "activity", "4"); err != nil {
		t.Fatalf("LogCreate failed: %v", err)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["action"] != "create" || fields["entity_id"] != "4" || fields["entity_type"] != "activity" {
		t.Errorf("unexpected fields: %v", fields)
	}
	if fields["actor"] != "tiago" {
		t.Errorf("expected actor tiago, got %v", fields["actor"])
	}
	if fields["component"] != "audit" {
		t.Errorf("expected component audit, got %v", fields["component"])
	}
}

func TestAuditLogWriter_LogUpdate(t *testing.T) {
	writer, logs := newObservedWriter()

	if err := writer.LogUpdate(context.Background(), "activity", "2", "name", "Old", "New"); err != nil {
		t.Fatalf("LogUpdate failed: %v", err)
	}

	fields := logs.All()[0].ContextMap()
	if fields["field"] != "name" || fields["old"] != "Old" || fields["new"] != "New" {
		t.Errorf("unexpected fields: %v", fields)
	}
	if _, ok := fields["actor"]; ok {
		t.Error("expected no actor field without actor in context")
	}
}

func TestAuditLogWriter_LogDelete(t *testing.T) {
	writer, logs := newObservedWriter()

	if err := writer.LogDelete(context.Background(), "activity", "3"); err != nil {
		t.Fatalf("LogDelete failed: %v", err)
	}

	if n := logs.FilterField(zap.String("action", "delete")).Len(); n != 1 {
		t.Errorf("expected 1 delete entry, got %d", n)
	}
}
