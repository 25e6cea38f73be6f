package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"check-speedtest/collector"
	"check-speedtest/config"
	"check-speedtest/nagios"

	"github.com/sirupsen/logrus"
)

// Build info
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args)
	if err != nil {
		if !errors.Is(err, config.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		return nagios.StatusUnknown
	}

	if cfg.ShowVersion {
		fmt.Printf("check-speedtest %s (%s) built on %s\n", version, commit, date)
		return nagios.StatusOK
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nagios.StatusUnknown
	}
	defer closeLog()

	logger.Debugf("check-speedtest %s (%s) built on %s", version, commit, date)
	logger.Debugf("Thresholds: download w=%v c=%v, upload w=%v c=%v",
		cfg.Thresholds.DownloadWarning, cfg.Thresholds.DownloadCritical,
		cfg.Thresholds.UploadWarning, cfg.Thresholds.UploadCritical)

	// Bail out before the transfer test when the uplink is down
	latency, err := collector.CheckConnectivity(cfg.PingTarget)
	if err != nil {
		logger.Warnf("Connectivity check failed: %v", err)
		fmt.Println(nagios.UnknownOutput())
		return nagios.StatusUnknown
	}
	logger.Debugf("Ping %s: %.1fms, %.0f%% loss", latency.Target, latency.Latency, latency.PacketLoss)

	before := collector.SnapshotTraffic()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	result, err := collector.RunSpeedTest(ctx, cfg.ServerID, logger)
	if err != nil {
		logger.Warnf("Speed measurement failed: %v", err)
		fmt.Println(nagios.UnknownOutput())
		return nagios.StatusUnknown
	}

	delta := collector.SnapshotTraffic().Sub(before)
	logger.Debugf("Interface traffic during test: sent=%d recv=%d bytes", delta.BytesSent, delta.BytesRecv)

	status := nagios.Evaluate(result.DownloadMbps, result.UploadMbps, cfg.Thresholds)
	fmt.Println(nagios.FormatOutput(status, result.DownloadMbps, result.UploadMbps, cfg.Thresholds))

	return status
}

// newLogger builds the logger: stderr by default so stdout stays reserved
// for the plugin line, or a file when --log-file is set
func newLogger(cfg *config.Config) (*logrus.Logger, func(), error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logger.SetOutput(os.Stderr)
	if cfg.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	closeLog := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logger.SetOutput(f)
		closeLog = func() { f.Close() }
	}

	return logger, closeLog, nil
}
