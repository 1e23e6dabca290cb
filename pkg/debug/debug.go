// Package debug provides global debug logging flags
package debug

import "fmt"

// Enabled controls whether debug logging is active
var Enabled bool

// Pose controls whether verbose per-frame pose logs are shown
// Use --debug-pose flag to enable these very verbose logs
var Pose bool

// Log prints a message only if debug mode is enabled
func Log(format string, args ...interface{}) {
	if Enabled {
		fmt.Printf(format, args...)
	}
}

// Logln prints a message with newline only if debug mode is enabled
func Logln(msg string) {
	if Enabled {
		fmt.Println(msg)
	}
}

// PoseLog prints a message only if pose debug mode is enabled
func PoseLog(format string, args ...interface{}) {
	if Pose {
		fmt.Printf(format, args...)
	}
}
