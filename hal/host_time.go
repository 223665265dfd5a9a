//go:build !tinygo

package hal

import "time"

const tickDur = time.Millisecond

// hostTime turns host steps into 1 ms tick sequence numbers, either from the
// wall clock or from a fixed simulated step.
type hostTime struct {
	ch  chan uint64
	seq uint64

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// Now returns the newest tick sequence number.
func (t *hostTime) Now() uint64 { return t.seq }

// step emits however many ticks of wall-clock time passed since the last
// call. The first call emits one.
func (t *hostTime) step() {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		t.stepN(1)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	ticks := uint64(t.acc / tickDur)
	if ticks == 0 {
		return
	}
	t.acc = t.acc % tickDur
	t.stepN(ticks)
}

// advance emits ticks for exactly d of simulated time, ignoring the wall
// clock.
func (t *hostTime) advance(d time.Duration) {
	t.stepN(uint64(d / tickDur))
}

// stepN publishes n new ticks. Only the newest sequence number matters to
// consumers, so when the channel is full older entries are discarded.
func (t *hostTime) stepN(n uint64) {
	if n == 0 {
		return
	}
	t.seq += n
	for {
		select {
		case t.ch <- t.seq:
			return
		default:
		}
		select {
		case <-t.ch:
		default:
		}
	}
}
