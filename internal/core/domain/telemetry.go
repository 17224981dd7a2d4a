package domain

// VertexStatus is the outcome of a target build as recorded by telemetry and
// the build journal.
type VertexStatus string

const (
	// VertexStatusRunning indicates the target was started but has not finished.
	VertexStatusRunning VertexStatus = "running"
	// VertexStatusCached indicates the target was up to date and nothing ran.
	VertexStatusCached VertexStatus = "cached"
	// VertexStatusCompleted indicates every command of the target succeeded.
	VertexStatusCompleted VertexStatus = "completed"
	// VertexStatusFailed indicates at least one command of the target failed.
	VertexStatusFailed VertexStatus = "failed"
)

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
