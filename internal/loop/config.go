package loop

import "time"

// Frame loop configuration constants.

// Timing
const (
	DefaultFPS = 60
	maxFPS     = 240
)

// Inactivity, for network sessions. Zero disables the check.
const (
	InactivityWarn       = 90 * time.Second
	InactivityDisconnect = 120 * time.Second
)

// Idle warning banner, in world coordinates.
const (
	idleWarnX    = 10
	idleWarnY    = 580
	idleWarnSize = 16
)

// FrameInterval returns the tick period for fps frames per second.
// Out-of-range values fall back to DefaultFPS.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 || fps > maxFPS {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}
