package video

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// feed is the implementation of the Feed interface.
type feed struct {
	id string

	// latest holds the most recently pushed frame. Producers overwrite it
	// freely; consumers read it without copying.
	latest atomic.Pointer[Frame]

	// dirty is set when a pushed frame has not yet been taken. It gives each
	// produced frame upload-once semantics: Take reports true exactly once
	// per Push, no matter how often the render loop polls.
	dirty atomic.Bool
}

// Feed is a latest-frame mailbox between a frame producer (decoder, capture
// source, test pattern) and the render loop. It never queues: a producer that
// outruns the consumer silently replaces the pending frame, which is the
// correct behavior for live video where only the newest frame matters.
type Feed interface {
	// ID returns the unique identifier assigned to this feed at creation.
	//
	// Returns:
	//   - string: the feed's UUID string
	ID() string

	// Push publishes a frame as the feed's latest. If a previous frame was
	// still pending it is counted as dropped. Safe for concurrent use with
	// Take, though a feed expects a single producer.
	//
	// Parameters:
	//   - f: the frame to publish
	Push(f *Frame)

	// Take returns the latest frame and whether it is fresh. The fresh flag
	// is true only on the first Take after a Push; repeated calls return the
	// same frame with fresh = false so the consumer can redraw without
	// re-uploading.
	//
	// Returns:
	//   - *Frame: the latest frame, or nil if nothing was ever pushed
	//   - bool: true if this frame has not been taken before
	Take() (*Frame, bool)
}

var _ Feed = &feed{}

// NewFeed creates a new Feed with a generated UUID identifier.
//
// Returns:
//   - Feed: the new empty feed
func NewFeed() Feed {
	return &feed{
		id: uuid.NewString(),
	}
}

func (f *feed) ID() string {
	return f.id
}

func (f *feed) Push(fr *Frame) {
	if fr == nil {
		return
	}
	incFramesIn()
	f.latest.Store(fr)
	if f.dirty.Swap(true) {
		// Previous frame was never taken.
		incFramesDropped()
	}
}

func (f *feed) Take() (*Frame, bool) {
	fresh := f.dirty.CompareAndSwap(true, false)
	fr := f.latest.Load()
	if fr == nil {
		return nil, false
	}
	return fr, fresh
}
