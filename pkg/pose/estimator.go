package pose

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Estimator is the interface for pose estimation backends.
//
// Estimate returns (nil, nil) when no body is detected; that is the
// expected steady state, not an error. In video mode calls must be made in
// strict temporal order on a single logical stream, since backends smooth
// landmarks across consecutive calls.
type Estimator interface {
	// Estimate runs inference on one color frame and returns the
	// detected pose, or nil if no body was found.
	Estimate(img gocv.Mat) (*Pose, error)

	// Close releases resources
	Close() error
}

// Complexity selects the accuracy/latency tradeoff of the model.
type Complexity int

const (
	ComplexityLite Complexity = iota
	ComplexityFull
	ComplexityHeavy
)

// String returns the tier name.
func (c Complexity) String() string {
	switch c {
	case ComplexityLite:
		return "lite"
	case ComplexityFull:
		return "full"
	case ComplexityHeavy:
		return "heavy"
	default:
		return fmt.Sprintf("complexity(%d)", int(c))
	}
}

// Config holds estimator configuration.
type Config struct {
	// ModelPath overrides the per-complexity default ONNX model path.
	ModelPath string

	// Complexity is the model tier (lite, full, heavy).
	Complexity Complexity

	// SmoothLandmarks enables temporal smoothing across frames.
	// Ignored when StaticImageMode is set.
	SmoothLandmarks bool

	// EnableSegmentation is accepted for config-surface compatibility
	// but no backend here produces a segmentation mask.
	EnableSegmentation bool

	// MinDetectionConfidence is the score needed to report a pose when
	// not already tracking one (0-1).
	MinDetectionConfidence float64

	// MinTrackingConfidence is the score needed to keep reporting a
	// pose once one has been detected (0-1).
	MinTrackingConfidence float64

	// StaticImageMode treats every call as an unrelated still image:
	// no tracking state, no smoothing.
	StaticImageMode bool
}

// DefaultConfig returns the recommended configuration for live video.
func DefaultConfig() Config {
	return Config{
		Complexity:             ComplexityFull,
		SmoothLandmarks:        true,
		EnableSegmentation:     false,
		MinDetectionConfidence: 0.5,
		MinTrackingConfidence:  0.5,
		StaticImageMode:        false,
	}
}

// Validate checks if the config values are within valid ranges.
// Returns a list of validation errors, or nil if valid.
func (c *Config) Validate() []string {
	var errors []string

	if c.Complexity < ComplexityLite || c.Complexity > ComplexityHeavy {
		errors = append(errors, "complexity must be 0 (lite), 1 (full) or 2 (heavy)")
	}
	if c.MinDetectionConfidence < 0 || c.MinDetectionConfidence > 1 {
		errors = append(errors, "min_detection_confidence must be between 0.0 and 1.0")
	}
	if c.MinTrackingConfidence < 0 || c.MinTrackingConfidence > 1 {
		errors = append(errors, "min_tracking_confidence must be between 0.0 and 1.0")
	}

	return errors
}

// Model returns the ONNX model path for the configured tier.
func (c *Config) Model() string {
	if c.ModelPath != "" {
		return c.ModelPath
	}
	switch c.Complexity {
	case ComplexityLite:
		return "models/pose_landmark_lite.onnx"
	case ComplexityHeavy:
		return "models/pose_landmark_heavy.onnx"
	default:
		return "models/pose_landmark_full.onnx"
	}
}
