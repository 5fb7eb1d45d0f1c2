package quiz

import "time"

// StepDelay is the pause between autoplay steps.
const StepDelay = 150 * time.Millisecond

// Driver walks a session in display order, filling each non-Locked
// question with its canonical answer and locking it. It never consults
// the evaluator — autoplay is always correct and records no mistakes.
//
// Scheduling is cooperative: the caller (the session screen's tick loop,
// or a test) invokes Step once per delay interval and stops once Step
// reports done or the driver is cancelled.
type Driver struct {
	session   *Session
	cancelled bool
}

// NewDriver creates an autoplay driver over session.
func NewDriver(s *Session) *Driver {
	return &Driver{session: s}
}

// Step locks the next unanswered question. The first return is the index
// of the question just filled (-1 if nothing was done); done is true
// once no unlocked questions remain or the driver was cancelled.
func (d *Driver) Step() (filled int, done bool) {
	if d.cancelled {
		return -1, true
	}
	for i := range d.session.Questions {
		if d.session.Questions[i].Status != Locked {
			d.session.forceLock(i)
			// Done right away if that was the last one.
			return i, d.session.Complete()
		}
	}
	return -1, true
}

// Cancel stops the driver before its next step. The session is expected
// to be Reset by the caller: cancelling autoplay restarts the attempt.
func (d *Driver) Cancel() {
	d.cancelled = true
}

// Cancelled reports whether Cancel was called.
func (d *Driver) Cancelled() bool {
	return d.cancelled
}
