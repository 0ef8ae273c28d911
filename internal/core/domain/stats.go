package domain

import "time"

// QuantStats summarizes one run of the transform pipeline.
type QuantStats struct {
	Processed   int
	Skipped     int
	BytesBefore int64
	BytesAfter  int64
	Duration    time.Duration
}

// Saved returns the number of bytes removed by quantization.
func (s QuantStats) Saved() int64 {
	return s.BytesBefore - s.BytesAfter
}
