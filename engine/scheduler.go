package engine

import "time"

// Scheduler paces the frame loop at a fixed target interval. A signed
// carry records how far the last sleep over- or undershot, so the
// long-run average interval converges on the target even though any
// single sleep is at the mercy of the OS scheduler.
type Scheduler struct {
	interval time.Duration
	carry    time.Duration
	last     time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

func NewScheduler(fps int) *Scheduler {
	if fps <= 0 {
		fps = 60
	}

	return &Scheduler{
		interval: time.Second / time.Duration(fps),
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// Tick blocks until the next frame is due and returns the elapsed time
// since the previous Tick in seconds. The result is never negative and
// is zero only on the very first call.
func (s *Scheduler) Tick() float64 {
	now := s.now()

	if s.last.IsZero() {
		s.last = now
		return 0
	}

	// carry is requested minus observed sleep, so an oversleep (negative
	// carry) inflates the apparent elapsed time and shortens the next
	// sleep
	elapsed := now.Sub(s.last) - s.carry
	if elapsed < s.interval {
		want := s.interval - elapsed
		s.sleep(want)

		woke := s.now()
		s.carry = want - woke.Sub(now)
		now = woke
	} else {
		s.carry = 0
	}

	dt := now.Sub(s.last).Seconds()
	s.last = now

	if dt < 0 {
		dt = 0
	}
	return dt
}

func (s *Scheduler) Interval() time.Duration {
	return s.interval
}
