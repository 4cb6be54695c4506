package common

import "time"

const (
	DefaultDurationConnectionTimeout = 10 * time.Second
)

// LogLevel is aliased to string so levels can flow through plain
// string fields like ServiceLog.Level without conversions.
type LogLevel = string

const (
	LogLevelTrace LogLevel = "trace"
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var LogLevels = []LogLevel{
	LogLevelTrace,
	LogLevelDebug,
	LogLevelInfo,
	LogLevelWarn,
	LogLevelError,
}
