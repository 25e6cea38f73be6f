package collector

import (
	"fmt"
	"time"

	"check-speedtest/models"

	probing "github.com/prometheus-community/pro-bing"
)

const (
	pingCount   = 3
	pingTimeout = 5 * time.Second
)

// CheckConnectivity pings the target to confirm the uplink works before
// spending a full transfer test on it.
func CheckConnectivity(target string) (*models.LatencyInfo, error) {
	pinger, err := probing.NewPinger(target)
	if err != nil {
		return nil, fmt.Errorf("failed to create pinger: %w", err)
	}
	pinger.Count = pingCount
	pinger.Timeout = pingTimeout
	// Unprivileged UDP ping so the plugin runs without CAP_NET_RAW
	pinger.SetPrivileged(false)

	if err := pinger.Run(); err != nil {
		return nil, fmt.Errorf("ping %s failed: %w", target, err)
	}

	stats := pinger.Statistics()
	info := &models.LatencyInfo{
		Target:     target,
		Latency:    stats.AvgRtt.Seconds() * 1000, // ms
		PacketLoss: stats.PacketLoss,
		Success:    stats.PacketsRecv > 0,
	}

	if stats.PacketsRecv == 0 {
		return info, fmt.Errorf("no ping reply from %s", target)
	}
	return info, nil
}
