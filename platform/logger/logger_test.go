package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{in: "debug", want: LevelDebug},
		{in: " INFO ", want: LevelInfo},
		{in: "", want: LevelInfo},
		{in: "warning", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := parseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoggerBeforeInitIsNop(t *testing.T) {
	require.NotNil(t, L())
	assert.NotPanics(t, func() {
		Info(context.Background(), "nothing to see")
		With(String("k", "v")).Error(context.Background(), "still nothing")
	})
}

func TestContextFieldsAreAttached(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	l := &logger{zapLogger: zap.New(core)}

	ctx := ContextWithFields(context.Background(), String("request_id", "req-1"))
	ctx = ContextWithFields(ctx, String("route", "/v1/projects"))

	l.Info(ctx, "handled", Int("status", 200))
	l.Info(context.Background(), "plain")

	entries := logs.All()
	require.Len(t, entries, 2)

	fields := entries[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "/v1/projects", fields["route"])
	assert.EqualValues(t, 200, fields["status"])

	assert.Empty(t, entries[1].ContextMap())
}

func TestContextWithFieldsDoesNotLeakBetweenBranches(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	l := &logger{zapLogger: zap.New(core)}

	base := ContextWithFields(context.Background(), String("request_id", "req-1"))
	left := ContextWithFields(base, String("branch", "left"))
	right := ContextWithFields(base, String("branch", "right"))

	l.Info(left, "left")
	l.Info(right, "right")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "left", entries[0].ContextMap()["branch"])
	assert.Equal(t, "right", entries[1].ContextMap()["branch"])
}

func TestReplaceRoutesPackageLevelCalls(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	restore := Replace(core)

	With(String("project_id", "p-1")).Error(context.Background(), "boom")
	Debug(context.Background(), "quiet")

	restore()
	Error(context.Background(), "after restore")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, LevelError, entries[0].Level)
	assert.Equal(t, "p-1", entries[0].ContextMap()["project_id"])
	assert.Equal(t, LevelDebug, entries[1].Level)
}
