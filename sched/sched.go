// Package sched is a single-threaded periodic timer service driven by the HAL
// millisecond tick stream.
//
// Nothing here runs on its own goroutine: the host loop feeds tick sequence
// numbers in with Drain or Advance, and due callbacks run synchronously on
// the caller's goroutine.
package sched

type timer struct {
	period  uint64
	due     uint64
	fn      func()
	stopped bool
}

// Scheduler fires periodic callbacks as simulated milliseconds advance.
type Scheduler struct {
	now    uint64
	timers []*timer
}

func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the last observed tick.
func (s *Scheduler) Now() uint64 { return s.now }

// Len returns the number of active timers.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Periodic calls fn every periodMs ticks, starting periodMs after now. The
// returned stop function is safe to call more than once, including from
// inside fn.
func (s *Scheduler) Periodic(periodMs uint64, fn func()) (stop func()) {
	if periodMs == 0 {
		periodMs = 1
	}
	t := &timer{period: periodMs, due: s.now + periodMs, fn: fn}
	s.timers = append(s.timers, t)
	return func() { t.stopped = true }
}

// Advance moves the clock to now and runs every due callback once. Periods
// missed because the host fell behind are dropped, not replayed. It returns
// the number of callbacks run.
func (s *Scheduler) Advance(now uint64) int {
	if now < s.now {
		return 0
	}
	s.now = now

	fired := 0
	pending := append([]*timer(nil), s.timers...)
	for _, t := range pending {
		if t.stopped || t.due > now {
			continue
		}
		t.due = now + t.period
		if t.fn != nil {
			t.fn()
		}
		fired++
	}
	s.compact()
	return fired
}

// Drain consumes every tick currently queued on ch without blocking and
// advances to the newest one.
func (s *Scheduler) Drain(ch <-chan uint64) int {
	if ch == nil {
		return 0
	}
	latest := s.now
	for {
		select {
		case seq, ok := <-ch:
			if !ok {
				return s.Advance(latest)
			}
			if seq > latest {
				latest = seq
			}
		default:
			return s.Advance(latest)
		}
	}
}

func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
}
