package ai

import "sync/atomic"

// debugLoggingEnabled gates per-tick debug logs of the controllers.
// Checking an atomic is cheaper than asking slog for the level on every tick.
var debugLoggingEnabled atomic.Bool

// EnableDebugLogging toggles per-tick debug logs.
// Called from main after the config is loaded (log_level: debug).
func EnableDebugLogging(enabled bool) {
	debugLoggingEnabled.Store(enabled)
}

// IsDebugEnabled reports whether per-tick debug logs are on.
//
//	if ai.IsDebugEnabled() {
//	    slog.Debug("abilities fired", "abilities", fired)
//	}
func IsDebugEnabled() bool {
	return debugLoggingEnabled.Load()
}
