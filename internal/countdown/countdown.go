// Package countdown derives display-oriented time-remaining breakdowns
// from a room's end deadline. It is purely a read: nothing here mutates
// room state, and a room is closed the instant the remaining time is zero.
package countdown

import (
	"context"
	"time"
)

// Remaining is the integer decomposition of the time left until a
// deadline. All components are non-negative; truncation only, no rounding.
type Remaining struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// IsZero reports whether no time remains, i.e. the room is closed.
func (r Remaining) IsZero() bool {
	return r.Days == 0 && r.Hours == 0 && r.Minutes == 0 && r.Seconds == 0
}

// TimeRemaining decomposes max(end-now, 0) into days, hours, minutes and
// seconds using the fixed 86400/3600/60 factors.
func TimeRemaining(end, now time.Time) Remaining {
	total := int(end.Sub(now) / time.Second)
	if total <= 0 {
		return Remaining{}
	}
	return Remaining{
		Days:    total / 86400,
		Hours:   (total / 3600) % 24,
		Minutes: (total / 60) % 60,
		Seconds: total % 60,
	}
}

// Watch emits a Remaining sample once per second until the deadline
// passes or the context is cancelled, then closes the channel. One
// watcher per displayed product; cancelling the context is the teardown.
func Watch(ctx context.Context, end time.Time) <-chan Remaining {
	ch := make(chan Remaining, 1)
	go func() {
		defer close(ch)
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				r := TimeRemaining(end, now)
				select {
				case ch <- r:
				case <-ctx.Done():
					return
				}
				if r.IsZero() {
					return
				}
			}
		}
	}()
	return ch
}
