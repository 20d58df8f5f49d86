package video

import "testing"

func TestFeedTakeOnce(t *testing.T) {
	ResetCounters()
	f := NewFeed()

	if _, ok := f.Take(); ok {
		t.Error("empty feed should report no frame")
	}

	frame := NewFrame(4, 4)
	f.Push(frame)

	got, fresh := f.Take()
	if !fresh || got != frame {
		t.Errorf("first Take = (%p, %v), want (%p, true)", got, fresh, frame)
	}

	// The frame stays available for re-reads but is no longer fresh.
	got, fresh = f.Take()
	if fresh {
		t.Error("second Take should not report a fresh frame")
	}
	if got != frame {
		t.Error("second Take should still return the latest frame")
	}
}

func TestFeedLatestWins(t *testing.T) {
	ResetCounters()
	f := NewFeed()

	first := NewFrame(4, 4)
	second := NewFrame(4, 4)
	f.Push(first)
	f.Push(second)

	got, fresh := f.Take()
	if !fresh || got != second {
		t.Error("Take should return the most recent push")
	}

	counters := GetCounters()
	if counters["frames_in"] != 2 {
		t.Errorf("frames_in = %d, want 2", counters["frames_in"])
	}
	if counters["frames_dropped"] != 1 {
		t.Errorf("frames_dropped = %d, want 1", counters["frames_dropped"])
	}
}

func TestFeedIDsUnique(t *testing.T) {
	a := NewFeed()
	b := NewFeed()
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("feed IDs %q and %q should be distinct and non-empty", a.ID(), b.ID())
	}
}

func TestResetCounters(t *testing.T) {
	f := NewFeed()
	f.Push(NewFrame(4, 4))

	ResetCounters()
	for name, v := range GetCounters() {
		if v != 0 {
			t.Errorf("counter %s = %d after reset, want 0", name, v)
		}
	}
}
