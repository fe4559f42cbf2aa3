package loop

import "time"

// Spawner delivers a tick every interval while running. While stopped its
// channel is nil, so a select on it never fires.
type Spawner struct {
	interval time.Duration
	ticker   *time.Ticker
}

// NewSpawner creates a stopped spawner.
func NewSpawner(interval time.Duration) *Spawner {
	return &Spawner{interval: interval}
}

// Start begins ticking. Starting a running spawner does nothing.
func (s *Spawner) Start() {
	if s.ticker != nil {
		return
	}
	s.ticker = time.NewTicker(s.interval)
}

// Stop halts ticking. Stopping a stopped spawner does nothing.
func (s *Spawner) Stop() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	s.ticker = nil
}

// Running reports whether the spawner is ticking.
func (s *Spawner) Running() bool {
	return s.ticker != nil
}

// C returns the tick channel, or nil while stopped.
func (s *Spawner) C() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}
	return s.ticker.C
}
