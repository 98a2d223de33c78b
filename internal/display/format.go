package display

import (
	"fmt"
)

// MiB is the divisor used for every megabyte figure in the report.
const MiB = 1024 * 1024

// Megabytes converts a byte count to binary megabytes.
func Megabytes(bytes int64) float64 {
	return float64(bytes) / MiB
}

// FormatMB returns a size in megabytes with two decimals (e.g. "3.21 MB").
func FormatMB(bytes int64) string {
	return fmt.Sprintf("%.2f MB", Megabytes(bytes))
}

// FormatPercent returns a percentage with one decimal (e.g. "75.1%").
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// Reduction returns how much smaller after is than before, in percent.
// A non-positive before yields 0 rather than dividing by zero. The result is
// negative when after grew.
func Reduction(before, after int64) float64 {
	if before <= 0 {
		return 0
	}
	return float64(before-after) / float64(before) * 100
}
