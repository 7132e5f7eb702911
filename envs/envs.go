// Package envs holds settings that can be overridden by environment variables.
package envs

import "os"

var (
	// LogLevel is one of panic/fatal/error/warn/info/debug/trace.
	LogLevel = Get("MCBOOK_LOG_LEVEL", "info")

	// Dialect is the default output dialect, legacy or strict.
	Dialect = Get("MCBOOK_DIALECT", "legacy")

	// Selector is the default target of the give command.
	Selector = Get("MCBOOK_SELECTOR", "@s")
)

// Get returns the value of the environment variable key, or def when it is
// unset or empty.
func Get(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
