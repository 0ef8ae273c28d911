package domain

import "time"

// Mtime converts a modification time to seconds since the epoch.
// The conversion is deterministic, so equal file times always compare equal.
func Mtime(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
