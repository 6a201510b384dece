package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_InfoWritesJSONLine(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewLoggerWithOptions("ridemate-test", "INFO", &out, &errOut)

	log.Info(Entry{
		Action:    "booking_requested",
		Message:   "Asha booked a seat",
		RideID:    "r1",
		AccountID: "a1",
	})

	require.NotEmpty(t, out.Bytes())
	assert.Empty(t, errOut.Bytes())

	var entry Entry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "ridemate-test", entry.Service)
	assert.Equal(t, "booking_requested", entry.Action)
	assert.Equal(t, "r1", entry.RideID)
	assert.NotEmpty(t, entry.Timestamp)
	assert.NotEmpty(t, entry.Hostname)
}

func TestLogger_ErrorGoesToErrWriter(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewLoggerWithOptions("test", "INFO", &out, &errOut)

	log.Error(Entry{
		Action:  "save_failed",
		Message: "boom",
		Error:   &ErrObj{Msg: "boom"},
	})

	assert.Empty(t, out.Bytes())
	require.NotEmpty(t, errOut.Bytes())

	var entry Entry
	require.NoError(t, json.Unmarshal(errOut.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry.Level)
	require.NotNil(t, entry.Error)
	assert.Equal(t, "boom", entry.Error.Msg)
}

func TestLogger_MinLevelFiltering(t *testing.T) {
	var out bytes.Buffer
	log := NewLoggerWithOptions("test", "WARN", &out, &out)

	log.Debug(Entry{Action: "debug_event"})
	log.Info(Entry{Action: "info_event"})
	assert.Empty(t, out.Bytes())

	log.Warn(Entry{Action: "warn_event"})
	assert.Contains(t, out.String(), "warn_event")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel(" WARN "))
	assert.Equal(t, LevelError, ParseLevel("ERROR"))
	// неизвестные значения падают в INFO
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
	assert.Equal(t, LevelInfo, ParseLevel(""))
}
