package logger_test

import (
	"bytes"
	"testing"

	"codeberg.org/mutker/filterdash/internal/errors"
	"codeberg.org/mutker/filterdash/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLevels(t *testing.T) {
	var buf bytes.Buffer
	logger.Init(logger.Options{Output: &buf, NoColor: true})

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	logger.Init(logger.Options{Output: &buf, NoColor: true, Debug: true})
	logger.Debug().Msg("debugging")
	assert.Contains(t, buf.String(), "debugging")
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	logger.Init(logger.Options{Output: &buf, NoColor: true, Verbose: true})

	log := logger.For("ui")
	log.Info().Int("uses", 42).Msg("refreshed")
	log.ErrorWithCode(errors.New().New(errors.ErrInvalidSelector)).Msg("build failed")

	out := buf.String()
	assert.Contains(t, out, "component=ui")
	assert.Contains(t, out, "uses=42")
	assert.Contains(t, out, "error_code=invalid_selector")
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]logger.LogLevel{
		"debug":   logger.DebugLevel,
		"INFO":    logger.InfoLevel,
		"warning": logger.WarnLevel,
		"warn":    logger.WarnLevel,
		"error":   logger.ErrorLevel,
	} {
		got, err := logger.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logger.ParseLevel("loud")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidLogLevel))
}
