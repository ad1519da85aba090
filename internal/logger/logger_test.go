package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		mode  string
		level zapcore.Level
	}{
		{"prod", zapcore.InfoLevel},
		{"Production", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{"", zapcore.WarnLevel},
		{"verbose", zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			l, err := New(tt.mode)
			if err != nil {
				t.Fatalf("New(%q) failed: %v", tt.mode, err)
			}
			core := l.SugaredLogger.Desugar().Core()
			if !core.Enabled(tt.level) {
				t.Errorf("expected %s to be enabled", tt.level)
			}
			if tt.level > zapcore.DebugLevel && core.Enabled(tt.level-1) {
				t.Errorf("expected %s to be disabled", tt.level-1)
			}
		})
	}
}

func TestLogger_WithAddsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With("component", "store")

	l.Info("seeded empty activity store", "count", 3)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["component"] != "store" {
		t.Errorf("expected component field, got %v", fields)
	}
	if fields["count"] != int64(3) {
		t.Errorf("expected count 3, got %v (%T)", fields["count"], fields["count"])
	}
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Error("discarded")
	l.Sync()
}
