// Package frame drives simulations at a fixed refresh rate.
//
// A Driver is the "request next frame" primitive of the arcade: it delivers
// one tick per interval until cancelled. Cancel is synchronous, so once it
// returns no further frame is delivered and no callback is running.
package frame

import (
	"context"
	"sync"
	"time"
)

// DefaultRate is the tick rate used when a non-positive rate is given.
const DefaultRate = 60

// Driver delivers frame ticks at a fixed rate.
type Driver struct {
	interval time.Duration
	frames   chan time.Time
	stop     chan struct{}
	done     chan struct{}

	startOnce  sync.Once
	cancelOnce sync.Once
	mu         sync.Mutex // Held while a Run callback executes
}

// NewDriver creates a driver ticking rate times per second.
func NewDriver(rate int) *Driver {
	if rate <= 0 {
		rate = DefaultRate
	}
	return &Driver{
		interval: time.Second / time.Duration(rate),
		frames:   make(chan time.Time, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Interval returns the time between frames.
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Start begins ticking. Calling Start more than once has no effect.
func (d *Driver) Start() {
	d.startOnce.Do(func() {
		go d.loop()
	})
}

// loop forwards ticker events to the frames channel.
// A frame the consumer has not picked up yet is replaced, not queued.
func (d *Driver) loop() {
	defer close(d.done)
	defer close(d.frames)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-d.stop:
			return
		case t := <-ticker.C:
			select {
			case d.frames <- t:
			default:
				// Drop the stale frame and deliver the fresh one.
				select {
				case <-d.frames:
				default:
				}
				select {
				case d.frames <- t:
				default:
				}
			}
		}
	}
}

// Frames returns the channel of frame ticks.
// The channel is closed once the driver is cancelled.
func (d *Driver) Frames() <-chan time.Time {
	return d.frames
}

// Cancel stops the driver and waits for its goroutine to exit.
// A Run callback in progress finishes before Cancel returns.
// Cancel is idempotent and safe to call on a driver that was never started.
func (d *Driver) Cancel() {
	d.cancelOnce.Do(func() {
		close(d.stop)
		d.startOnce.Do(func() {
			// Never started: close the channels ourselves.
			close(d.frames)
			close(d.done)
		})
		<-d.done
		// Drain a frame buffered before the stop so readers see the close.
		for range d.frames {
		}
	})
	// Wait for an in-flight callback.
	d.mu.Lock()
	d.mu.Unlock() //nolint:staticcheck // Barrier only
}

// Cancelled reports whether Cancel has been called.
func (d *Driver) Cancelled() bool {
	select {
	case <-d.stop:
		return true
	default:
		return false
	}
}

// Run starts the driver and calls fn once per frame until fn returns false,
// ctx is done, or Cancel is called. It returns ctx.Err() when the context ends
// the loop and nil otherwise. fn must not call Cancel; it returns false instead.
func (d *Driver) Run(ctx context.Context, fn func(time.Time) bool) error {
	d.Start()
	for {
		select {
		case <-ctx.Done():
			d.Cancel()
			return ctx.Err()
		case t, ok := <-d.frames:
			if !ok {
				return nil
			}
			d.mu.Lock()
			if d.Cancelled() {
				d.mu.Unlock()
				return nil
			}
			more := fn(t)
			d.mu.Unlock()
			if !more {
				d.Cancel()
				return nil
			}
		}
	}
}
