package demo

import (
	"sort"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/wachat/internal/chat"
)

// demoEpoch is the wall time the virtual clock starts at, just after the seeded history.
var demoEpoch = time.Date(2025, time.January, 15, 10, 36, 0, 0, time.Local)

type pendingEvent struct {
	at    time.Duration
	seq   int
	event chat.Event
}

// VirtualClock schedules lifecycle transitions against virtual time. It satisfies
// app.Scheduler: scheduled transitions fire only when Advance moves past them.
type VirtualClock struct {
	elapsed time.Duration
	seq     int
	pending []pendingEvent
}

// NewVirtualClock returns a clock at the demo epoch with nothing scheduled.
func NewVirtualClock() *VirtualClock {
	return &VirtualClock{}
}

// Schedule records the transitions relative to the current virtual time.
func (c *VirtualClock) Schedule(items []chat.Scheduled) tea.Cmd {
	for _, item := range items {
		c.pending = append(c.pending, pendingEvent{
			at:    c.elapsed + item.Delay,
			seq:   c.seq,
			event: item.Event,
		})
		c.seq++
	}
	return nil
}

// Now returns the virtual wall time.
func (c *VirtualClock) Now() time.Time {
	return demoEpoch.Add(c.elapsed)
}

// Elapsed returns the virtual time passed since the epoch.
func (c *VirtualClock) Elapsed() time.Duration {
	return c.elapsed
}

// Pending returns the number of transitions not yet due.
func (c *VirtualClock) Pending() int {
	return len(c.pending)
}

// Advance moves the clock forward by d and returns the transitions that fell due,
// ordered by due time and then by scheduling order.
func (c *VirtualClock) Advance(d time.Duration) []chat.Event {
	c.elapsed += d

	sort.SliceStable(c.pending, func(i, j int) bool {
		if c.pending[i].at != c.pending[j].at {
			return c.pending[i].at < c.pending[j].at
		}
		return c.pending[i].seq < c.pending[j].seq
	})

	n := 0
	for n < len(c.pending) && c.pending[n].at <= c.elapsed {
		n++
	}
	due := make([]chat.Event, n)
	for i := range n {
		due[i] = c.pending[i].event
	}
	c.pending = c.pending[n:]
	return due
}
