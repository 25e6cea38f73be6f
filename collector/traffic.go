package collector

import (
	"check-speedtest/models"

	gopsnet "github.com/shirou/gopsutil/v3/net"
)

// SnapshotTraffic gathers aggregated interface byte counters
func SnapshotTraffic() models.TrafficInfo {
	if netIO, err := gopsnet.IOCounters(false); err == nil && len(netIO) > 0 {
		return models.TrafficInfo{
			BytesSent: netIO[0].BytesSent,
			BytesRecv: netIO[0].BytesRecv,
		}
	}
	return models.TrafficInfo{}
}
