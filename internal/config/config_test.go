package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OFFJOURNAL_CONFIG_PATH", t.TempDir())

	v := New()
	v.SetConfigName("does-not-exist")
	cfg, err := Load(v)
	require.NoError(t, err)

	home, err := homedir.Dir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".offjournal"), cfg.DataDir)
	assert.Equal(t, 1500*time.Millisecond, cfg.SaveDelay)
	assert.Equal(t, 3*time.Second, cfg.StatusTTL)
	assert.Equal(t, "optimistic", cfg.SavePolicy)
	assert.Equal(t, "last-wins", cfg.Correlation)
	assert.Equal(t, filepath.Join(cfg.DataDir, "offjournal.log"), cfg.LogFile)
	assert.True(t, cfg.Index)
	assert.Equal(t, filepath.Join(cfg.DataDir, "index.db"), cfg.IndexPath())
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := "data_dir: " + filepath.Join(dir, "journal") + "\n" +
		"save_delay: 2s\n" +
		"save_policy: confirm\n" +
		"index: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "offjournal.yaml"), []byte(yaml), 0644))

	t.Setenv("OFFJOURNAL_CONFIG_PATH", dir)
	t.Setenv("OFFJOURNAL_CORRELATION", "strict")

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "journal"), cfg.DataDir)
	assert.Equal(t, 2*time.Second, cfg.SaveDelay)
	assert.Equal(t, "confirm", cfg.SavePolicy)
	assert.Equal(t, "strict", cfg.Correlation)
	assert.False(t, cfg.Index)
}

func TestLoad_RejectsBadDelay(t *testing.T) {
	t.Setenv("OFFJOURNAL_CONFIG_PATH", t.TempDir())
	t.Setenv("OFFJOURNAL_SAVE_DELAY", "-1s")

	v := New()
	v.SetConfigName("does-not-exist")
	_, err := Load(v)
	assert.Error(t, err)
}
