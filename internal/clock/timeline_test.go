package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimelineFiresInDeadlineOrder(t *testing.T) {
	tl := NewTimeline()
	var order []string

	tl.After(300*time.Millisecond, func() { order = append(order, "c") })
	tl.After(100*time.Millisecond, func() { order = append(order, "a") })
	tl.After(200*time.Millisecond, func() { order = append(order, "b") })

	tl.Advance(150 * time.Millisecond)
	assert.Equal(t, []string{"a"}, order)

	tl.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 1150*time.Millisecond, tl.Now())
	assert.Equal(t, 0, tl.Len())
}

func TestTimelineSameDeadlineKeepsScheduleOrder(t *testing.T) {
	tl := NewTimeline()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		tl.After(time.Second, func() { order = append(order, i) })
	}
	tl.Advance(time.Second)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestTimelineNowDuringCallback(t *testing.T) {
	tl := NewTimeline()
	var seen time.Duration
	tl.After(40*time.Millisecond, func() { seen = tl.Now() })

	tl.Advance(time.Second)
	assert.Equal(t, 40*time.Millisecond, seen)
}

func TestTimelineChainedTimersInsideWindow(t *testing.T) {
	tl := NewTimeline()
	fired := 0
	var again func()
	again = func() {
		fired++
		tl.After(100*time.Millisecond, again)
	}
	tl.After(100*time.Millisecond, again)

	tl.Advance(450 * time.Millisecond)
	assert.Equal(t, 4, fired)
	assert.Equal(t, 1, tl.Len())
}

func TestTimerStop(t *testing.T) {
	tl := NewTimeline()
	fired := false
	timer := tl.After(time.Second, func() { fired = true })

	assert.True(t, timer.Pending())
	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	tl.Advance(2 * time.Second)
	assert.False(t, fired)
	assert.False(t, timer.Pending())
}

func TestTimerStopAfterFire(t *testing.T) {
	tl := NewTimeline()
	timer := tl.After(time.Millisecond, func() {})
	tl.Advance(time.Millisecond)

	assert.False(t, timer.Stop())
	var nilTimer *Timer
	assert.False(t, nilTimer.Stop())
}
