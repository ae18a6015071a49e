package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "waterrat", cfg.Decode.Product)
	require.Equal(t, "WLM", cfg.Decode.AnalogSubtype)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
	require.EqualValues(t, 8<<20, cfg.HTTP.MaxBodyBytes)
	require.Equal(t, 50, cfg.HTTP.RatePerSecond)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Empty(t, cfg.Logging.File.Filename)
	require.True(t, cfg.Metrics.Enable)
	require.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ewpayload.yaml")
	yaml := []byte(`
decode:
  product: analog
  analogSubtype: RG
http:
  addr: ":9090"
  writeTimeout: 3s
logging:
  level: debug
  format: json
`)
	require.NoError(t, os.WriteFile(path, yaml, 0o600))
	t.Setenv("EWP_HTTP_BURST", "7")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "analog", cfg.Decode.Product)
	require.Equal(t, "RG", cfg.Decode.AnalogSubtype)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, 3*time.Second, cfg.HTTP.WriteTimeout)
	require.Equal(t, 7, cfg.HTTP.Burst)
	require.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
