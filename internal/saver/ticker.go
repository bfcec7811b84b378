package saver

import (
	"context"
	"time"

	"github.com/julianstephens/simpleclock/internal/constants"
)

// TickSource delivers animation ticks. The channel closes when ctx is done.
type TickSource interface {
	Ticks(ctx context.Context) <-chan time.Time
}

// Ticker is a TickSource backed by time.Ticker.
type Ticker struct {
	interval time.Duration
}

// NewTicker returns a ticker firing every interval. Non-positive intervals
// use the default refresh interval.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = constants.RefreshInterval
	}
	return &Ticker{interval: interval}
}

func (t *Ticker) Interval() time.Duration {
	return t.interval
}

func (t *Ticker) Ticks(ctx context.Context) <-chan time.Time {
	out := make(chan time.Time)
	go func() {
		defer close(out)
		tk := time.NewTicker(t.interval)
		defer tk.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-tk.C:
				select {
				case out <- now:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
