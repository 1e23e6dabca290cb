// Package stream orchestrates the capture, inference, mapping, transmit
// and pacing sequence. One strictly sequential iteration at a time; the
// only state carried across iterations is the pacing timestamp and the
// run counters.
package stream

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/posecast/posecast/internal/log"
	"github.com/posecast/posecast/pkg/capture"
	"github.com/posecast/posecast/pkg/debug"
	"github.com/posecast/posecast/pkg/mapper"
	"github.com/posecast/posecast/pkg/pacer"
	"github.com/posecast/posecast/pkg/pose"
	"gocv.io/x/gocv"
)

// Source produces frames for the loop.
type Source interface {
	Read() (capture.Frame, bool)
	Close() error
}

// Estimator runs pose inference on one frame.
type Estimator interface {
	Estimate(img gocv.Mat) (*pose.Pose, error)
	Close() error
}

// Encoder renders the flat coordinate list into datagram bytes.
type Encoder interface {
	Encode(values []float64) ([]byte, error)
}

// Sender delivers one encoded frame, best effort.
type Sender interface {
	Send(payload []byte) error
	Close() error
}

// Previewer renders the frame and reports the quit keypress.
type Previewer interface {
	Show(frame capture.Frame, p *pose.Pose) bool
	Close() error
}

// Pacer throttles the loop to the target rate.
type Pacer interface {
	Wait()
}

// Config holds stream loop configuration.
type Config struct {
	TargetFPS int
}

// DefaultConfig returns the standard 30fps loop configuration.
func DefaultConfig() Config {
	return Config{TargetFPS: 30}
}

// Validate checks if the config values are within valid ranges.
// Returns a list of validation errors, or nil if valid.
func (c *Config) Validate() []string {
	var errors []string

	if c.TargetFPS < 1 || c.TargetFPS > 240 {
		errors = append(errors, "target fps must be between 1 and 240")
	}

	return errors
}

// Streamer runs the pipeline. Construct with New, then call Run once.
type Streamer struct {
	source    Source
	estimator Estimator
	encoder   Encoder
	sender    Sender
	previewer Previewer
	pacer     Pacer

	// OnPose, when set, receives every transmitted coordinate list.
	// Used by the monitor dashboard; never on the datagram path.
	OnPose func(values []float64)

	sessionID string
	startedAt time.Time
	stats     statsCounters
}

// New wires a streamer from its parts.
func New(cfg Config, source Source, estimator Estimator, encoder Encoder, sender Sender, previewer Previewer) *Streamer {
	return &Streamer{
		source:    source,
		estimator: estimator,
		encoder:   encoder,
		sender:    sender,
		previewer: previewer,
		pacer:     pacer.New(cfg.TargetFPS),
		sessionID: uuid.NewString(),
		// Stamped here, not in Run: the monitor goroutine may read
		// Stats before the loop starts, and this field has no lock.
		startedAt: time.Now(),
	}
}

// SessionID returns the per-run stream identifier.
func (s *Streamer) SessionID() string {
	return s.sessionID
}

// Run executes the loop until the quit key is pressed, the context is
// canceled, or the estimator fails. Transient capture and send errors
// are logged and skipped; the loop always moves on to the next frame.
func (s *Streamer) Run(ctx context.Context) error {
	log.Info("stream started", "session", s.sessionID)

	for {
		// Quit is cooperative: the in-flight iteration always runs
		// to completion, cancellation is observed between frames.
		select {
		case <-ctx.Done():
			log.Info("stream canceled", "session", s.sessionID)
			return nil
		default:
		}

		frame, ok := s.source.Read()
		if !ok {
			log.Warn("ignoring empty camera frame")
			s.stats.bumpCaptureFailure()
			continue
		}
		s.stats.bumpFrame()

		p, err := s.estimator.Estimate(frame.Img)
		if err != nil {
			// The estimator is an opaque dependency with no
			// recoverable-error contract. Treat failure as fatal.
			return err
		}

		if p != nil {
			s.stats.bumpDetection()
			s.transmit(p, frame.Width, frame.Height)
		} else {
			debug.PoseLog("no pose detected\n")
		}

		s.pacer.Wait()

		if quit := s.previewer.Show(frame, p); quit {
			log.Info("quit requested", "session", s.sessionID)
			return nil
		}
	}
}

// transmit maps, serializes and sends one detected pose. All failures
// here drop the frame's data and nothing else.
func (s *Streamer) transmit(p *pose.Pose, width, height int) {
	flat := mapper.Flatten(mapper.MapPose(p, width, height))

	payload, err := s.encoder.Encode(flat)
	if err != nil {
		log.Warn("encode failed, dropping frame", "error", err)
		s.stats.bumpSendFailure()
		return
	}

	if err := s.sender.Send(payload); err != nil {
		log.Warn("send failed, dropping frame", "error", err)
		s.stats.bumpSendFailure()
		return
	}
	s.stats.bumpSent()

	if s.OnPose != nil {
		s.OnPose(flat)
	}
}

// Close releases the camera, the estimator, the socket and the preview
// surface, in pipeline order.
func (s *Streamer) Close() error {
	err := s.source.Close()
	if cerr := s.estimator.Close(); err == nil {
		err = cerr
	}
	if cerr := s.sender.Close(); err == nil {
		err = cerr
	}
	if cerr := s.previewer.Close(); err == nil {
		err = cerr
	}
	return err
}
