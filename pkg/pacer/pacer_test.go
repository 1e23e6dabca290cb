package pacer

import (
	"testing"
	"time"
)

// fakeClock drives a Pacer deterministically. Sleeping advances the
// clock by the requested duration, like an ideal scheduler would.
type fakeClock struct {
	t      time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1000, 0)}
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.t = c.t.Add(d)
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// newTestPacer builds a pacer on the fake clock.
func newTestPacer(fps int, clock *fakeClock) *Pacer {
	p := &Pacer{
		period: time.Second / time.Duration(fps),
		now:    clock.now,
		sleep:  clock.sleep,
	}
	p.last = clock.now()
	return p
}

func TestWait_SleepsRemainderOfBudget(t *testing.T) {
	clock := newFakeClock()
	p := newTestPacer(30, clock) // ~33.3ms budget

	// Iteration took 10ms of the budget
	clock.advance(10 * time.Millisecond)
	p.Wait()

	if len(clock.sleeps) != 1 {
		t.Fatalf("Expected 1 sleep, got %d", len(clock.sleeps))
	}
	want := time.Second/30 - 10*time.Millisecond
	if clock.sleeps[0] != want {
		t.Errorf("Sleep: got %v, want %v", clock.sleeps[0], want)
	}
}

func TestWait_NeverSleepsWhenOverBudget(t *testing.T) {
	clock := newFakeClock()
	p := newTestPacer(30, clock)

	// Iteration took longer than the whole budget
	clock.advance(100 * time.Millisecond)
	p.Wait()

	if len(clock.sleeps) != 0 {
		t.Errorf("Expected no sleep for an over-budget iteration, got %v", clock.sleeps)
	}
}

func TestWait_ConvergesToTargetRate(t *testing.T) {
	clock := newFakeClock()
	p := newTestPacer(30, clock)

	// Near-zero processing time per iteration: consecutive stamps must
	// land exactly one period apart on the ideal clock.
	var starts []time.Time
	for i := 0; i < 10; i++ {
		clock.advance(time.Millisecond) // tiny processing cost
		p.Wait()
		starts = append(starts, clock.now())
	}

	for i := 1; i < len(starts); i++ {
		gap := starts[i].Sub(starts[i-1])
		if gap != time.Second/30 {
			t.Errorf("Gap %d: got %v, want %v", i, gap, time.Second/30)
		}
	}
}

func TestWait_NoCatchUpAfterSlowIteration(t *testing.T) {
	clock := newFakeClock()
	p := newTestPacer(30, clock)

	// One slow iteration...
	clock.advance(200 * time.Millisecond)
	p.Wait()

	// ...must not shrink the next budget: a fast follow-up still gets
	// a full-period sleep minus its own cost.
	clock.advance(time.Millisecond)
	p.Wait()

	want := time.Second/30 - time.Millisecond
	last := clock.sleeps[len(clock.sleeps)-1]
	if last != want {
		t.Errorf("Post-overrun sleep: got %v, want %v", last, want)
	}
}

func TestWait_StampTakenAfterSleep(t *testing.T) {
	clock := newFakeClock()
	p := newTestPacer(30, clock)

	clock.advance(5 * time.Millisecond)
	p.Wait()

	if !p.last.Equal(clock.now()) {
		t.Errorf("Timestamp must be taken after the sleep: got %v, clock at %v", p.last, clock.now())
	}
}

func TestNew_Period(t *testing.T) {
	tests := []struct {
		fps    int
		expect time.Duration
	}{
		{30, time.Second / 30},
		{60, time.Second / 60},
		{1, time.Second},
	}

	for _, tc := range tests {
		p := New(tc.fps)
		if p.Period() != tc.expect {
			t.Errorf("Period(%d fps): got %v, want %v", tc.fps, p.Period(), tc.expect)
		}
	}
}

func TestNew_ClampsNonPositiveRate(t *testing.T) {
	for _, fps := range []int{0, -5} {
		p := New(fps)
		if p.Period() != time.Second {
			t.Errorf("Period(%d fps): got %v, want %v", fps, p.Period(), time.Second)
		}
	}
}
