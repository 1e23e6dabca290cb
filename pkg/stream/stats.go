package stream

import (
	"sync"
	"time"
)

// statsCounters tracks run counters. The loop writes them; the monitor
// dashboard reads snapshots from its own goroutine, hence the lock.
type statsCounters struct {
	mu              sync.RWMutex
	frames          uint64
	captureFailures uint64
	detections      uint64
	sent            uint64
	sendFailures    uint64
}

func (c *statsCounters) bumpFrame() {
	c.mu.Lock()
	c.frames++
	c.mu.Unlock()
}

func (c *statsCounters) bumpCaptureFailure() {
	c.mu.Lock()
	c.captureFailures++
	c.mu.Unlock()
}

func (c *statsCounters) bumpDetection() {
	c.mu.Lock()
	c.detections++
	c.mu.Unlock()
}

func (c *statsCounters) bumpSent() {
	c.mu.Lock()
	c.sent++
	c.mu.Unlock()
}

func (c *statsCounters) bumpSendFailure() {
	c.mu.Lock()
	c.sendFailures++
	c.mu.Unlock()
}

// Snapshot is a point-in-time view of the stream state for the
// dashboard.
type Snapshot struct {
	SessionID       string  `json:"session_id"`
	UptimeSeconds   float64 `json:"uptime_seconds"`
	Frames          uint64  `json:"frames"`
	CaptureFailures uint64  `json:"capture_failures"`
	Detections      uint64  `json:"detections"`
	Sent            uint64  `json:"sent"`
	SendFailures    uint64  `json:"send_failures"`
	MeasuredFPS     float64 `json:"measured_fps"`
}

// Stats returns a snapshot of the run counters.
func (s *Streamer) Stats() Snapshot {
	s.stats.mu.RLock()
	defer s.stats.mu.RUnlock()

	snap := Snapshot{
		SessionID:       s.sessionID,
		Frames:          s.stats.frames,
		CaptureFailures: s.stats.captureFailures,
		Detections:      s.stats.detections,
		Sent:            s.stats.sent,
		SendFailures:    s.stats.sendFailures,
	}

	if !s.startedAt.IsZero() {
		snap.UptimeSeconds = time.Since(s.startedAt).Seconds()
		if snap.UptimeSeconds > 0 {
			snap.MeasuredFPS = float64(snap.Frames) / snap.UptimeSeconds
		}
	}

	return snap
}
