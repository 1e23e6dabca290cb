package pose

import (
	"sync"

	"gocv.io/x/gocv"
)

// Mock implements Estimator for testing.
// Results are served from a script in call order; past the end of the
// script every call reports no detection.
type Mock struct {
	// EstimateFunc overrides the scripted behavior when set.
	EstimateFunc func(img gocv.Mat) (*Pose, error)

	// Script is the sequence of results returned by successive calls.
	// A nil entry means "no detection".
	Script []*Pose

	mu    sync.Mutex
	calls int
}

// NewMock creates a mock estimator that returns the given results in order.
func NewMock(script ...*Pose) *Mock {
	return &Mock{Script: script}
}

// Estimate returns the next scripted result.
func (m *Mock) Estimate(img gocv.Mat) (*Pose, error) {
	if m.EstimateFunc != nil {
		return m.EstimateFunc(img)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.calls >= len(m.Script) {
		m.calls++
		return nil, nil
	}
	p := m.Script[m.calls]
	m.calls++
	return p, nil
}

// Close records nothing and never fails.
func (m *Mock) Close() error {
	return nil
}

// Calls returns how many times Estimate was invoked.
func (m *Mock) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// UniformPose builds a pose with every landmark at the same normalized
// position. Handy for wire-format and mapping tests.
func UniformPose(x, y, z float64) *Pose {
	p := &Pose{Score: 1.0}
	for i := range p.Landmarks {
		p.Landmarks[i] = Landmark{X: x, Y: y, Z: z, Visibility: 1.0}
	}
	return p
}
