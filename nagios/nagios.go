// Package nagios implements the plugin output and exit-code contract:
// https://nagios-plugins.org/doc/guidelines.html
package nagios

import (
	"fmt"
	"strconv"
)

// Nagios plugin return codes
const (
	StatusOK       = 0
	StatusWarning  = 1
	StatusCritical = 2
	StatusUnknown  = 3
)

var statusNames = []string{"OK", "WARNING", "CRITICAL", "UNKNOWN"}

// StatusName returns the text for a return code
func StatusName(status int) string {
	if status < 0 || status >= len(statusNames) {
		return statusNames[StatusUnknown]
	}
	return statusNames[status]
}

// Thresholds are lower speed limits in Mbit/s, 0 means disabled
type Thresholds struct {
	DownloadWarning  float64
	DownloadCritical float64
	UploadWarning    float64
	UploadCritical   float64
}

// Normalize clamps negative limits to disabled and raises a warning limit
// that sits below its critical limit up to the critical limit
func (t Thresholds) Normalize() Thresholds {
	if t.DownloadWarning < 0 {
		t.DownloadWarning = 0
	}
	if t.DownloadCritical < 0 {
		t.DownloadCritical = 0
	}
	if t.UploadWarning < 0 {
		t.UploadWarning = 0
	}
	if t.UploadCritical < 0 {
		t.UploadCritical = 0
	}

	if t.DownloadWarning < t.DownloadCritical {
		t.DownloadWarning = t.DownloadCritical
	}
	if t.UploadWarning < t.UploadCritical {
		t.UploadWarning = t.UploadCritical
	}

	return t
}

// Evaluate compares measured speeds against the thresholds. Critical takes
// precedence over warning, both per direction and overall.
func Evaluate(download, upload float64, t Thresholds) int {
	status := StatusOK

	switch {
	case t.DownloadCritical > 0 && download <= t.DownloadCritical:
		status = StatusCritical
	case t.DownloadWarning > 0 && download <= t.DownloadWarning:
		status = StatusWarning
	}

	switch {
	case t.UploadCritical > 0 && upload <= t.UploadCritical:
		status = StatusCritical
	case t.UploadWarning > 0 && upload <= t.UploadWarning:
		if status != StatusCritical {
			status = StatusWarning
		}
	}

	return status
}

// FormatOutput builds the plugin line with performance data
func FormatOutput(status int, download, upload float64, t Thresholds) string {
	msg := fmt.Sprintf("%s: Download=%.2f Upload=%.2f", StatusName(status), download, upload)
	perfdata := fmt.Sprintf("Download=%.2f;%s;%s;; Upload=%.2f;%s;%s;;",
		download, limit(t.DownloadWarning), limit(t.DownloadCritical),
		upload, limit(t.UploadWarning), limit(t.UploadCritical))
	return msg + "|" + perfdata
}

// UnknownOutput is the plugin line when no measurement ran
func UnknownOutput() string {
	return StatusName(StatusUnknown) + ": Download=? Upload=?"
}

// limit renders a threshold for perfdata, empty when disabled
func limit(v float64) string {
	if v <= 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
