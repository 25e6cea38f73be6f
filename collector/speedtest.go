package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"check-speedtest/models"

	"github.com/showwin/speedtest-go/speedtest"
	"github.com/sirupsen/logrus"
)

// RunSpeedTest measures download and upload throughput against a
// speedtest.net server. serverID 0 picks the closest server. The whole
// measurement honors the context deadline.
func RunSpeedTest(ctx context.Context, serverID int, logger logrus.FieldLogger) (*models.Result, error) {
	user, err := speedtest.FetchUserInfoContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client info: %w", err)
	}
	logger.Debugf("Client: IP=%s ISP=%s", user.IP, user.Isp)

	serverList, err := speedtest.FetchServerListContext(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch server list: %w", err)
	}

	var ids []int
	if serverID > 0 {
		ids = append(ids, serverID)
	}
	targets, err := serverList.FindServer(ids)
	if err != nil {
		return nil, fmt.Errorf("no usable speedtest server: %w", err)
	}

	for _, s := range targets {
		logger.Debugf("Server: %s %s (%s) distance=%.1fkm", s.ID, s.Name, s.Sponsor, s.Distance)

		if err := s.PingTestContext(ctx); err != nil {
			return nil, fmt.Errorf("ping test failed: %w", err)
		}
		if err := s.DownloadTestContext(ctx); err != nil {
			return nil, fmt.Errorf("download test failed: %w", err)
		}
		if err := s.UploadTestContext(ctx, false); err != nil {
			return nil, fmt.Errorf("upload test failed: %w", err)
		}

		logger.Debugf("Latency: %s, Download: %.2f Mbit/s, Upload: %.2f Mbit/s",
			s.Latency, s.DLSpeed, s.ULSpeed)

		return &models.Result{
			Timestamp:    time.Now(),
			ServerID:     s.ID,
			ServerName:   s.Name,
			Sponsor:      s.Sponsor,
			Latency:      s.Latency,
			DownloadMbps: s.DLSpeed,
			UploadMbps:   s.ULSpeed,
		}, nil
	}

	return nil, errors.New("no speedtest server found")
}
