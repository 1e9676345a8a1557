package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_SplitsStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	logger, err := NewLogger(&out, &errOut, "info")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("fetched project")
	logger.Warn("collection skipped")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "INFO\tfetched project")
	assert.NotContains(t, out.String(), "collection skipped")
	assert.Contains(t, errOut.String(), "WARN\tcollection skipped")
}

func TestNewLogger_SingleStream(t *testing.T) {
	var out bytes.Buffer
	logger, err := NewLogger(&out, nil, "debug")
	require.NoError(t, err)

	logger.Debug("verbose")
	logger.Error("failed")

	assert.Contains(t, out.String(), "DEBUG\tverbose")
	assert.Contains(t, out.String(), "ERROR\tfailed")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, nil, "loud")
	assert.Error(t, err)
}
