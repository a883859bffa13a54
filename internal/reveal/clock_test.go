package reveal

import (
	"sort"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type manualTimer struct {
	when time.Time
	seq  int
	f    func()
}

// manualClock is a Scheduler whose time only moves on Advance. Callbacks
// run inline on the advancing goroutine in due order.
type manualClock struct {
	now    time.Time
	seq    int
	timers []*manualTimer
}

func newManualClock() *manualClock {
	return &manualClock{now: epoch}
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) AfterFunc(d time.Duration, f func()) {
	c.seq++
	c.timers = append(c.timers, &manualTimer{when: c.now.Add(d), seq: c.seq, f: f})
}

// Advance moves time forward by d, firing due timers.
func (c *manualClock) Advance(d time.Duration) {
	c.AdvanceTo(c.now.Sub(epoch) + d)
}

// AdvanceTo moves time to the given offset from epoch.
func (c *manualClock) AdvanceTo(offset time.Duration) {
	target := epoch.Add(offset)
	for {
		sort.SliceStable(c.timers, func(i, j int) bool {
			if c.timers[i].when.Equal(c.timers[j].when) {
				return c.timers[i].seq < c.timers[j].seq
			}
			return c.timers[i].when.Before(c.timers[j].when)
		})
		if len(c.timers) == 0 || c.timers[0].when.After(target) {
			break
		}
		next := c.timers[0]
		c.timers = c.timers[1:]
		c.now = next.when
		next.f()
	}
	if target.After(c.now) {
		c.now = target
	}
}

func (c *manualClock) Offset() time.Duration { return c.now.Sub(epoch) }

type applied struct {
	region Region
	at     time.Duration
}

// recordingLayer records every applied region with the clock offset.
type recordingLayer struct {
	clock    *manualClock
	missing  map[Region]bool
	applied  []applied
	progress [][2]int
}

func newRecordingLayer(clock *manualClock) *recordingLayer {
	return &recordingLayer{clock: clock, missing: map[Region]bool{}}
}

func (l *recordingLayer) Exists(r Region) bool { return !l.missing[r] }

func (l *recordingLayer) Apply(r Region) {
	l.applied = append(l.applied, applied{region: r, at: l.clock.Offset()})
}

func (l *recordingLayer) ShowProgress(settled, total int) {
	l.progress = append(l.progress, [2]int{settled, total})
}
