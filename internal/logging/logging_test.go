package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapterLevels(t *testing.T) {
	testCases := []struct {
		level    string
		expected logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"bogus", logrus.InfoLevel},
	}

	for _, tc := range testCases {
		adapter, ok := NewLogrusAdapter(tc.level, "text").(*LogrusAdapter)
		require.True(t, ok)
		assert.Equal(t, tc.expected, adapter.logger.GetLevel(), "level %s", tc.level)
	}
}

func TestLogrusAdapterJSONOutput(t *testing.T) {
	underlying := logrus.New()
	underlying.SetFormatter(&logrus.JSONFormatter{})
	underlying.SetLevel(logrus.DebugLevel)
	var buf bytes.Buffer
	underlying.SetOutput(&buf)

	logger := NewLogrusAdapterFromLogger(underlying)
	logger.WithField("account", "ACC-1").Info("report generated")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "report generated", entry["msg"])
	assert.Equal(t, "ACC-1", entry["account"])
	assert.Equal(t, "info", entry["level"])
}

func TestLogrusAdapterFieldChaining(t *testing.T) {
	underlying := logrus.New()
	underlying.SetFormatter(&logrus.JSONFormatter{})
	var buf bytes.Buffer
	underlying.SetOutput(&buf)

	logger := NewLogrusAdapterFromLogger(underlying)
	logger.WithFields(
		Field{Key: FieldCount, Value: 3},
		Field{Key: FieldRiskLevel, Value: "low"},
	).WithError(errors.New("boom")).Error("analysis failed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, float64(3), entry[FieldCount])
	assert.Equal(t, "low", entry[FieldRiskLevel])
	assert.Equal(t, "boom", entry["error"])
}

func TestMockLoggerCapturesEntries(t *testing.T) {
	mock := &MockLogger{}

	mock.Debug("d")
	mock.Info("i")
	mock.Warn("w")
	mock.Error("e")

	require.Len(t, mock.Entries, 4)
	assert.True(t, mock.HasEntry("DEBUG", "d"))
	assert.True(t, mock.HasEntry("INFO", "i"))
	assert.True(t, mock.HasEntry("WARN", "w"))
	assert.True(t, mock.HasEntry("ERROR", "e"))
	assert.False(t, mock.HasEntry("INFO", "missing"))

	mock.Clear()
	assert.Empty(t, mock.Entries)
}

func TestMockLoggerDerivedLoggersRecordToRoot(t *testing.T) {
	mock := &MockLogger{}

	mock.WithField("k", "v").Info("from field")
	mock.WithFields(Field{Key: "a", Value: 1}).WithError(errors.New("boom")).Error("from chain")

	require.Len(t, mock.Entries, 2)
	assert.True(t, mock.HasEntry("INFO", "from field"))
	assert.True(t, mock.HasEntry("ERROR", "from chain"))

	require.Len(t, mock.Entries[0].Fields, 1)
	assert.Equal(t, "k", mock.Entries[0].Fields[0].Key)
	require.Error(t, mock.Entries[1].Error)
}
