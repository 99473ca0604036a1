package slogpretty

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestPrettyHandler(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	log.With("op", "media.MediaService.Get").Debug("media not found", "id", "42")

	out := buf.String()
	assert.Contains(t, out, "DEBUG:")
	assert.Contains(t, out, "media not found")
	assert.Contains(t, out, `"op": "media.MediaService.Get"`)
	assert.Contains(t, out, `"id": "42"`)
}

func TestPrettyHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	log.Debug("hidden")

	assert.Empty(t, buf.String())
}
