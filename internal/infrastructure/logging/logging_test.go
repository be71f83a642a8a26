package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/snowfort/internal/infrastructure/config"
)

func TestNew_Level(t *testing.T) {
	log, closer, err := New(config.LogConfig{Level: "debug"})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestNew_DefaultLevel(t *testing.T) {
	log, closer, err := New(config.LogConfig{})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")

	log, closer, err := New(config.LogConfig{Level: "info", File: path, JSON: true, MaxSizeMB: 1})
	require.NoError(t, err)

	log.WithField("chunk", "(0,0)").Info("chunk spawned")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"chunk":"(0,0)"`)
	assert.Contains(t, string(data), "chunk spawned")
}
