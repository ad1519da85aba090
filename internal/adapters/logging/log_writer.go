// Package logging contains log-backed adapter implementations.
package logging

import (
	"context"

	"github.com/example/academia/internal/ctxutil"
	"github.com/example/academia/internal/logger"
	"github.com/example/academia/internal/ports/secondary"
)

// AuditLogWriter implements secondary.LogWriter by writing structured log entries.
type AuditLogWriter struct {
	log *logger.Logger
}

// NewAuditLogWriter creates a new AuditLogWriter.
func NewAuditLogWriter(log *logger.Logger) *AuditLogWriter {
	return &AuditLogWriter{log: log.With("component", "audit")}
}

// LogCreate logs a create operation for an entity.
func (w *AuditLogWriter) LogCreate(ctx context.Context, entityType, entityID string) error {
	w.write(ctx, entityType, entityID, "create")
	return nil
}

// LogUpdate logs an update operation for an entity field.
func (w *AuditLogWriter) LogUpdate(ctx context.Context, entityType, entityID, fieldName, oldValue, newValue string) error {
	w.write(ctx, entityType, entityID, "update",
		"field", fieldName,
		"old", oldValue,
		"new", newValue,
	)
	return nil
}

// LogDelete logs a delete operation for an entity.
func (w *AuditLogWriter) LogDelete(ctx context.Context, entityType, entityID string) error {
	w.write(ctx, entityType, entityID, "delete")
	return nil
}

func (w *AuditLogWriter) write(ctx context.Context, entityType, entityID, action string, extra ...interface{}) {
	kv := []interface{}{
		"action", action,
		"entity_type", entityType,
		"entity_id", entityID,
	}
	if actor := ctxutil.ActorFromContext(ctx); actor != "" {
		kv = append(kv, "actor", actor)
	}
	w.log.Info("audit", append(kv, extra...)...)
}

// Ensure AuditLogWriter implements the interface
var _ secondary.LogWriter = (*AuditLogWriter)(nil)
