// Package clock provides a frame-driven scheduler. Time only moves when the
// owner calls Advance, and callbacks run on the caller's goroutine, so
// scheduled work never overlaps with frame updates.
package clock

import (
	"sort"
	"time"
)

// Scheduler is what controllers depend on.
type Scheduler interface {
	Now() time.Duration
	After(d time.Duration, fn func()) *Timer
}

// Timer is a pending callback. Stop prevents it from firing.
type Timer struct {
	at      time.Duration
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

// Stop reports whether the call prevented the timer from firing.
func (t *Timer) Stop() bool {
	if t == nil || t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Pending reports whether the timer is still waiting to fire.
func (t *Timer) Pending() bool {
	return t != nil && !t.fired && !t.stopped
}

// Deadline is the timeline instant at which the timer fires.
func (t *Timer) Deadline() time.Duration {
	return t.at
}

// Timeline is a single-threaded Scheduler. It is not safe for concurrent use.
type Timeline struct {
	now     time.Duration
	seq     uint64
	pending []*Timer
}

func NewTimeline() *Timeline {
	return &Timeline{}
}

func (tl *Timeline) Now() time.Duration {
	return tl.now
}

// After schedules fn to run once the timeline has advanced by d.
// A non-positive d fires on the next Advance.
func (tl *Timeline) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	tl.seq++
	t := &Timer{at: tl.now + d, seq: tl.seq, fn: fn}
	tl.pending = append(tl.pending, t)
	return t
}

// Advance moves time forward by d and runs every timer that falls due, in
// deadline order. Timers scheduled by a callback run in the same call if
// their deadline is inside the window. Now() reports each timer's deadline
// while its callback runs.
func (tl *Timeline) Advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	end := tl.now + d
	for {
		t := tl.next(end)
		if t == nil {
			break
		}
		tl.now = t.at
		t.fired = true
		t.fn()
	}
	tl.now = end
}

// Len returns the number of timers still waiting.
func (tl *Timeline) Len() int {
	n := 0
	for _, t := range tl.pending {
		if t.Pending() {
			n++
		}
	}
	return n
}

// next pops the earliest live timer due at or before end.
func (tl *Timeline) next(end time.Duration) *Timer {
	live := tl.pending[:0]
	for _, t := range tl.pending {
		if t.Pending() {
			live = append(live, t)
		}
	}
	tl.pending = live
	if len(tl.pending) == 0 {
		return nil
	}

	sort.Slice(tl.pending, func(i, j int) bool {
		if tl.pending[i].at == tl.pending[j].at {
			return tl.pending[i].seq < tl.pending[j].seq
		}
		return tl.pending[i].at < tl.pending[j].at
	})
	t := tl.pending[0]
	if t.at > end {
		return nil
	}
	tl.pending = tl.pending[1:]
	return t
}
