package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrument_JSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	shutdown, err := Instrument(context.Background(), Options{
		Level:  slog.LevelInfo,
		Format: "json",
		Writer: &buf,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	slog.Debug("hidden")
	slog.Info("visible", "endpoint", "login")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record), "exactly one JSON record: %s", buf.String())
	assert.Equal(t, "visible", record["msg"])
	assert.Equal(t, "login", record["endpoint"])
}

func TestInstrument_TextDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	_, err := Instrument(context.Background(), Options{Level: slog.LevelDebug, Writer: &buf})
	require.NoError(t, err)

	slog.Debug("debug line")
	assert.Contains(t, buf.String(), "msg=\"debug line\"")
}

func TestInstrument_StdoutExporterFansOut(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	shutdown, err := Instrument(context.Background(), Options{
		Level:    slog.LevelWarn,
		Format:   "text",
		Exporter: ExporterStdout,
		Writer:   &buf,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	slog.Info("below threshold")
	slog.Warn("above threshold")

	assert.NotContains(t, buf.String(), "below threshold")
	assert.Contains(t, buf.String(), "above threshold")
}

func TestInstrument_Rejects(t *testing.T) {
	_, err := Instrument(context.Background(), Options{Format: "xml"})
	assert.Error(t, err)

	_, err = Instrument(context.Background(), Options{Exporter: "carrier-pigeon"})
	assert.Error(t, err)
}
