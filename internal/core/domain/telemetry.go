package domain

// LogLevel is the severity of a line logged onto a telemetry vertex.
type LogLevel int

const (
	// LogLevelDebug marks candidates the search looked at and rejected.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo marks the candidate a search selected.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn marks install directories that could not be used at all.
	LogLevelWarn LogLevel = 4
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	default:
		return "INFO"
	}
}
