package logging

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" warn ", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestFromContext_NoLoggerIsDisabled(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestWithTabID_AddsField(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), zerolog.New(&buf))
	ctx = WithComponent(WithTabID(ctx, "tab-1"), "favicon")

	FromContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"tab_id":"tab-1"`)
	assert.Contains(t, buf.String(), `"component":"favicon"`)
}

func TestNewWithFile_WritesRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabicon.log")
	cfg := DefaultConfig()
	cfg.Format = "json"

	logger, cleanup := NewWithFile(cfg, FileConfig{Path: path, MaxSizeMB: 1})
	logger.Info().Msg("written")
	cleanup()

	assert.FileExists(t, path)
}

func TestRecoverPanic_LogsAndRepanics(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	assert.PanicsWithValue(t, "boom", func() {
		defer RecoverPanic(logger)
		panic("boom")
	})
	assert.Contains(t, buf.String(), `"panic":"boom"`)
}
