package main

import "time"

// clock is the tick source for the frame scheduler.
type clock interface {
	Elapsed() time.Duration
}

// wallClock reports monotonic time since it was created.
type wallClock struct {
	start time.Time
}

func newWallClock() *wallClock {
	return &wallClock{start: time.Now()}
}

func (c *wallClock) Elapsed() time.Duration {
	return time.Since(c.start)
}

// manualClock only moves when told to.
type manualClock struct {
	elapsed time.Duration
}

func (c *manualClock) Elapsed() time.Duration { return c.elapsed }

func (c *manualClock) Advance(d time.Duration) { c.elapsed += d }

// frameTick describes one scheduler step.
type frameTick struct {
	frame   uint64
	elapsed time.Duration
	delta   time.Duration
}

// frameSubscriber runs once per tick. An error stops the tick.
type frameSubscriber func(frameTick) error

// frameScheduler calls its subscribers in registration order once per tick.
// It is driven from the game loop and never blocks between ticks.
type frameScheduler struct {
	clock       clock
	subscribers []frameSubscriber
	frame       uint64
	last        time.Duration
}

func newFrameScheduler(c clock) *frameScheduler {
	return &frameScheduler{clock: c}
}

func (s *frameScheduler) subscribe(fn frameSubscriber) {
	s.subscribers = append(s.subscribers, fn)
}

// tick reads the clock once and runs every subscriber with the same tick.
func (s *frameScheduler) tick() error {
	now := s.clock.Elapsed()
	if now < s.last {
		now = s.last
	}
	s.frame++
	t := frameTick{frame: s.frame, elapsed: now, delta: now - s.last}
	s.last = now
	for _, fn := range s.subscribers {
		if err := fn(t); err != nil {
			return err
		}
	}
	return nil
}
