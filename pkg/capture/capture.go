// Package capture provides webcam frame acquisition for the stream loop.
package capture

import "gocv.io/x/gocv"

// Frame is one captured image. It is owned by the loop iteration that
// read it; the backing buffer is reused on the next Read.
type Frame struct {
	Img gocv.Mat

	// Actual delivered dimensions, read back per frame. The requested
	// capture resolution is only a hint to the driver.
	Width  int
	Height int
}

// Source is the interface for frame producers.
type Source interface {
	// Read blocks until the next frame is available. ok is false when
	// the device returned an empty or undecodable frame; the caller
	// should skip the iteration and try again.
	Read() (frame Frame, ok bool)

	// Close releases the device
	Close() error
}

// Config holds capture configuration.
type Config struct {
	DeviceID int // Camera index passed to the OS backend

	// Requested resolution hint. Drivers may deliver another size.
	Width  int
	Height int
}

// DefaultConfig returns the 720p configuration used for body tracking.
func DefaultConfig() Config {
	return Config{
		DeviceID: 0,
		Width:    1280,
		Height:   720,
	}
}

// Validate checks if the config values are within valid ranges.
// Returns a list of validation errors, or nil if valid.
func (c *Config) Validate() []string {
	var errors []string

	if c.DeviceID < 0 {
		errors = append(errors, "device id must not be negative")
	}
	if c.Width < 160 || c.Width > 7680 {
		errors = append(errors, "width must be between 160 and 7680")
	}
	if c.Height < 120 || c.Height > 4320 {
		errors = append(errors, "height must be between 120 and 4320")
	}

	return errors
}
