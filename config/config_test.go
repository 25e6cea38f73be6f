package config

import (
	"testing"
	"time"

	"check-speedtest/nagios"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, nagios.Thresholds{}, cfg.Thresholds)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
	assert.Equal(t, 0, cfg.ServerID)
	assert.Equal(t, "8.8.8.8", cfg.PingTarget)
}

func TestLoadShortFlags(t *testing.T) {
	cfg, err := Load([]string{"-w", "5", "-c", "4", "-W", "3", "-C", "2", "-v"})
	require.NoError(t, err)

	want := nagios.Thresholds{DownloadWarning: 5, DownloadCritical: 4, UploadWarning: 3, UploadCritical: 2}
	assert.Equal(t, want, cfg.Thresholds)
	assert.True(t, cfg.Verbose)
}

func TestLoadLongFlags(t *testing.T) {
	cfg, err := Load([]string{
		"--warning=5", "--critical=4", "--Warning=3", "--Critical=2",
		"--log-file", "/var/log/check-speedtest.log",
		"--timeout", "90s",
		"--server", "1234",
		"--ping-target", "1.1.1.1",
	})
	require.NoError(t, err)

	want := nagios.Thresholds{DownloadWarning: 5, DownloadCritical: 4, UploadWarning: 3, UploadCritical: 2}
	assert.Equal(t, want, cfg.Thresholds)
	assert.Equal(t, "/var/log/check-speedtest.log", cfg.LogFile)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
	assert.Equal(t, 1234, cfg.ServerID)
	assert.Equal(t, "1.1.1.1", cfg.PingTarget)
}

func TestLoadNormalizesThresholds(t *testing.T) {
	cfg, err := Load([]string{"-w", "3", "-c", "5", "-W", "-2"})
	require.NoError(t, err)

	assert.Equal(t, 5.0, cfg.Thresholds.DownloadWarning)
	assert.Equal(t, 5.0, cfg.Thresholds.DownloadCritical)
	assert.Equal(t, 0.0, cfg.Thresholds.UploadWarning)
}

func TestLoadEnvFallback(t *testing.T) {
	t.Setenv("SPEEDTEST_TIMEOUT_SECONDS", "120")
	t.Setenv("SPEEDTEST_SERVER_ID", "4321")
	t.Setenv("SPEEDTEST_PING_TARGET", "9.9.9.9")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 120*time.Second, cfg.Timeout)
	assert.Equal(t, 4321, cfg.ServerID)
	assert.Equal(t, "9.9.9.9", cfg.PingTarget)
}

func TestLoadFlagsWinOverEnv(t *testing.T) {
	t.Setenv("SPEEDTEST_TIMEOUT_SECONDS", "120")
	t.Setenv("SPEEDTEST_PING_TARGET", "9.9.9.9")

	cfg, err := Load([]string{"--timeout", "30s", "--ping-target", "1.1.1.1"})
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "1.1.1.1", cfg.PingTarget)
}

func TestLoadBadEnvIgnored(t *testing.T) {
	t.Setenv("SPEEDTEST_TIMEOUT_SECONDS", "soon")
	t.Setenv("SPEEDTEST_SERVER_ID", "-7")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 60*time.Second, cfg.Timeout)
	assert.Equal(t, 0, cfg.ServerID)
}

func TestLoadBadFlag(t *testing.T) {
	_, err := Load([]string{"--no-such-flag"})
	assert.Error(t, err)
}
