package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
	}{
		{name: "debug level", level: "debug", format: "text", expectLevel: logrus.DebugLevel},
		{name: "info level json", level: "info", format: "json", expectLevel: logrus.InfoLevel},
		{name: "warn level", level: "warn", format: "text", expectLevel: logrus.WarnLevel},
		{name: "error level", level: "error", format: "json", expectLevel: logrus.ErrorLevel},
		{name: "invalid level defaults to info", level: "bogus", format: "text", expectLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			require.NotNil(t, logger)

			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok, "logger should be a LogrusAdapter")
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)
		})
	}
}

func TestLogrusAdapter_FieldsAndError(t *testing.T) {
	underlying := logrus.New()
	var buf bytes.Buffer
	underlying.SetOutput(&buf)
	underlying.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(underlying)
	logger.WithField(FieldCategory, "Food").
		WithError(errors.New("boom")).
		Error("something failed", Field{Key: FieldCount, Value: 3})

	out := buf.String()
	assert.Contains(t, out, `"category":"Food"`)
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, `"count":3`)
	assert.Contains(t, out, "something failed")
}

func TestMockLogger_RecordsDerivedEntries(t *testing.T) {
	mock := NewMockLogger()
	mock.WithField("k", "v").WithError(errors.New("boom")).Warn("careful")
	mock.Info("plain")

	entries := mock.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "WARN", entries[0].Level)
	assert.Equal(t, "careful", entries[0].Message)
	assert.True(t, mock.HasEntry("INFO", "plain"))
	assert.False(t, mock.HasEntry("ERROR", "plain"))
}
