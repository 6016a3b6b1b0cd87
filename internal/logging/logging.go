// Package logging holds the debug switch shared by the pipeline packages and
// both binaries. Output goes through the standard logger, which the binaries
// point at stderr.
package logging

import (
	"fmt"
	"log"
	"os"
)

// LevelEnv names the environment variable that enables debug logging when set
// to "debug".
const LevelEnv = "XSTITCH_LOG_LEVEL"

// DebugEnabled reports whether debug logging is on.
func DebugEnabled() bool {
	return os.Getenv(LevelEnv) == "debug"
}

// EnableDebug turns debug logging on for the rest of the process.
func EnableDebug() {
	os.Setenv(LevelEnv, "debug")
}

// Debugf logs like log.Printf when debug logging is on. The file:line prefix
// names the caller.
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		log.Output(2, fmt.Sprintf(format, args...))
	}
}
