package main

import (
	"os"
	"path/filepath"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	homedir.DisableCache = true
}

func TestLoadConfigDefaultsWhenHomeFileMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	v := viper.New()

	cfg, err := loadConfig(v, false)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.Client.BaseURL)
	assert.Equal(t, "/api", cfg.Client.APIPrefix)
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tui.yaml")
	require.NoError(t, os.WriteFile(path, []byte("client:\n  base_url: http://orders.local:9000\n  username: dior\n"), 0o644))

	t.Setenv("PEDIDOS_URL", "http://from-env:8000")
	v := viper.New()
	v.SetEnvPrefix("PEDIDOS")
	v.AutomaticEnv()
	v.Set("config", path)
	v.Set("api_prefix", "")

	cfg, err := loadConfig(v, true)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:8000", cfg.Client.BaseURL)
	assert.Equal(t, "dior", cfg.Client.Username)
	assert.Equal(t, "", cfg.Client.APIPrefix)
}

func TestLoadConfigExplicitMissingFile(t *testing.T) {
	v := viper.New()
	v.Set("config", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := loadConfig(v, true)
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadPrefix(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	v := viper.New()
	v.Set("api_prefix", "api/")
	_, err := loadConfig(v, false)
	assert.Error(t, err)
}
