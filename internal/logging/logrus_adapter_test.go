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
		{name: "debug level with text format", level: "debug", format: "text", expectLevel: logrus.DebugLevel},
		{name: "info level with json format", level: "info", format: "json", expectLevel: logrus.InfoLevel},
		{name: "warn level with text format", level: "warn", format: "text", expectLevel: logrus.WarnLevel},
		{name: "invalid level defaults to info", level: "loud", format: "text", expectLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogrusAdapterWithOutput(tt.level, tt.format, &buf)
			require.NotNil(t, logger)

			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok, "logger should be a LogrusAdapter")
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)

			if tt.format == "json" {
				_, ok := adapter.logger.Formatter.(*logrus.JSONFormatter)
				assert.True(t, ok, "formatter should be JSONFormatter")
			} else {
				_, ok := adapter.logger.Formatter.(*logrus.TextFormatter)
				assert.True(t, ok, "formatter should be TextFormatter")
			}
		})
	}
}

func newBufferedAdapter(level logrus.Level) (Logger, *bytes.Buffer) {
	l := logrus.New()
	var buf bytes.Buffer
	l.SetOutput(&buf)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return &LogrusAdapter{logger: l, entry: logrus.NewEntry(l)}, &buf
}

func TestLogrusAdapter_LevelsAndFields(t *testing.T) {
	logger, buf := newBufferedAdapter(logrus.InfoLevel)

	logger.Debug("hidden", F(FieldFile, "a.pdf"))
	logger.Info("parsed statement", F(FieldFile, "a.pdf"), F(FieldPurchases, 12))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "parsed statement")
	assert.Contains(t, out, "file_path=a.pdf")
	assert.Contains(t, out, "purchases=12")
}

func TestLogrusAdapter_ChainedCalls(t *testing.T) {
	logger, buf := newBufferedAdapter(logrus.InfoLevel)

	logger.
		WithField(FieldParser, "card").
		WithFields(F(FieldFile, "jan.pdf")).
		WithError(errors.New("no header")).
		Error("statement rejected")

	out := buf.String()
	assert.Contains(t, out, "statement rejected")
	assert.Contains(t, out, "parser=card")
	assert.Contains(t, out, "file_path=jan.pdf")
	assert.Contains(t, out, "no header")
}

func TestConvertFields(t *testing.T) {
	fields := convertFields([]Field{F("k1", "v1"), F("k2", 42)})
	assert.Len(t, fields, 2)
	assert.Equal(t, "v1", fields["k1"])
	assert.Equal(t, 42, fields["k2"])

	assert.Len(t, convertFields(nil), 0)
}
