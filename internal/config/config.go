// Package config provides configuration helpers for posecast commands.
package config

import "os"

// Default stream configuration.
const (
	// DefaultDest matches the consumer used during development.
	// Use 127.0.0.1:5052 when the game engine runs on the same machine.
	DefaultDest = "192.168.0.165:5052"

	DefaultFPS    = 30
	DefaultWidth  = 1280
	DefaultHeight = 720
)

// Dest returns the datagram destination from the POSECAST_DEST env var.
// Falls back to the provided default if not set.
func Dest(defaultDest string) string {
	if dest := os.Getenv("POSECAST_DEST"); dest != "" {
		return dest
	}
	return defaultDest
}

// ModelPath returns the pose model path from POSECAST_MODEL env var.
// Falls back to the provided default if not set.
func ModelPath(defaultPath string) string {
	if path := os.Getenv("POSECAST_MODEL"); path != "" {
		return path
	}
	return defaultPath
}
