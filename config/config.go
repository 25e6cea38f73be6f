package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"check-speedtest/nagios"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
)

const (
	defaultTimeout    = 60 * time.Second
	defaultPingTarget = "8.8.8.8"
)

// ErrHelp is returned by Load when -h/--help was requested
var ErrHelp = flag.ErrHelp

// Config holds the settings for one check invocation
type Config struct {
	Thresholds  nagios.Thresholds
	Verbose     bool
	LogFile     string
	Timeout     time.Duration
	ServerID    int
	PingTarget  string
	ShowVersion bool
}

// Load parses command-line flags, with env fallbacks for the operational
// knobs. Flags win over env.
func Load(args []string) (*Config, error) {
	// Try .env, fall back to plain environment
	_ = godotenv.Load()

	cfg := &Config{}

	fs := flag.NewFlagSet("check-speedtest", flag.ContinueOnError)
	fs.Float64VarP(&cfg.Thresholds.DownloadWarning, "warning", "w", 0,
		"lower download speed warning limit (Mbit/s), 0 disables")
	fs.Float64VarP(&cfg.Thresholds.DownloadCritical, "critical", "c", 0,
		"lower download speed critical limit (Mbit/s), 0 disables")
	fs.Float64VarP(&cfg.Thresholds.UploadWarning, "Warning", "W", 0,
		"lower upload speed warning limit (Mbit/s), 0 disables")
	fs.Float64VarP(&cfg.Thresholds.UploadCritical, "Critical", "C", 0,
		"lower upload speed critical limit (Mbit/s), 0 disables")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable verbose output")
	fs.StringVar(&cfg.LogFile, "log-file", "", "file to log to, default: <stderr>")
	fs.DurationVar(&cfg.Timeout, "timeout", envDuration("SPEEDTEST_TIMEOUT_SECONDS", defaultTimeout),
		"time limit for the whole measurement")
	fs.IntVar(&cfg.ServerID, "server", envInt("SPEEDTEST_SERVER_ID", 0),
		"speedtest.net server ID, 0 picks the nearest")
	fs.StringVar(&cfg.PingTarget, "ping-target", envString("SPEEDTEST_PING_TARGET", defaultPingTarget),
		"host for the connectivity pre-check")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to parse arguments: %w", err)
	}

	cfg.Thresholds = cfg.Thresholds.Normalize()
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return cfg, nil
}

// envString gets an env value with fallback
func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// envInt gets a numeric env value with fallback
func envInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value < 0 {
		return fallback
	}
	return value
}

// envDuration gets an env value in whole seconds with fallback
func envDuration(key string, fallback time.Duration) time.Duration {
	secs, err := strconv.Atoi(os.Getenv(key))
	if err != nil || secs < 1 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}
