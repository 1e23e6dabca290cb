// Package pacer throttles the stream loop to a target frame rate.
package pacer

import "time"

// Pacer caps loop iteration rate by sleeping off the unused share of the
// frame budget. It only ever slows a fast iteration down; time lost to a
// slow capture or inference is not recovered.
type Pacer struct {
	period time.Duration
	last   time.Time

	// Clock seams for tests
	now   func() time.Time
	sleep func(time.Duration)
}

// New creates a pacer for the given frames-per-second cap.
// Non-positive rates are clamped to 1 fps so the package is safe to use
// without prior config validation. The reference timestamp starts at
// construction time.
func New(targetFPS int) *Pacer {
	if targetFPS < 1 {
		targetFPS = 1
	}
	p := &Pacer{
		period: time.Second / time.Duration(targetFPS),
		now:    time.Now,
		sleep:  time.Sleep,
	}
	p.last = p.now()
	return p
}

// Period returns the per-iteration time budget.
func (p *Pacer) Period() time.Duration {
	return p.period
}

// Wait blocks for the remainder of the current frame budget, then stamps
// the start of the next one. The stamp is taken after the sleep, so an
// iteration that overran its budget does not shrink the next one.
func (p *Pacer) Wait() {
	elapsed := p.now().Sub(p.last)
	if elapsed < p.period {
		p.sleep(p.period - elapsed)
	}
	p.last = p.now()
}
