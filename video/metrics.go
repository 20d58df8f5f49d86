package video

import "sync/atomic"

// Package-level counters for simple pipeline health metrics.
// Intended to observe backpressure between frame producers and the renderer.
var (
	framesIn       atomic.Uint64 // frames pushed into feeds
	framesUploaded atomic.Uint64 // frames handed to the GPU upload path
	framesDropped  atomic.Uint64 // frames overwritten before upload
)

// ResetCounters resets all metrics to zero.
func ResetCounters() {
	framesIn.Store(0)
	framesUploaded.Store(0)
	framesDropped.Store(0)
}

// GetCounters returns a snapshot of current metrics.
//
// Returns:
//   - map[string]uint64: counter values keyed by metric name
func GetCounters() map[string]uint64 {
	return map[string]uint64{
		"frames_in":       framesIn.Load(),
		"frames_uploaded": framesUploaded.Load(),
		"frames_dropped":  framesDropped.Load(),
	}
}

func incFramesIn()       { framesIn.Add(1) }
func incFramesUploaded() { framesUploaded.Add(1) }
func incFramesDropped()  { framesDropped.Add(1) }

// CountFrameUploaded records that a frame was handed to the GPU upload path.
// Called by the presenter after writing both plane textures.
func CountFrameUploaded() { incFramesUploaded() }
