package models

import "time"

// Result holds one speed measurement
type Result struct {
	Timestamp    time.Time
	ServerID     string
	ServerName   string
	Sponsor      string
	Latency      time.Duration
	DownloadMbps float64
	UploadMbps   float64
}

// LatencyInfo holds the connectivity pre-check outcome
type LatencyInfo struct {
	Target     string
	Latency    float64 // ms
	PacketLoss float64 // percent
	Success    bool
}

// TrafficInfo holds aggregated network interface byte counters
type TrafficInfo struct {
	BytesSent uint64
	BytesRecv uint64
}

// Sub returns the counter deltas since an earlier snapshot. A counter that
// went backwards (interface reset) yields 0 instead of wrapping.
func (t TrafficInfo) Sub(prev TrafficInfo) TrafficInfo {
	var d TrafficInfo
	if t.BytesSent >= prev.BytesSent {
		d.BytesSent = t.BytesSent - prev.BytesSent
	}
	if t.BytesRecv >= prev.BytesRecv {
		d.BytesRecv = t.BytesRecv - prev.BytesRecv
	}
	return d
}
