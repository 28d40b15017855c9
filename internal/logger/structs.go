package logger

// Console implements a console based logger.
type Console struct {
	Enabled          bool
	UseConsoleWriter bool // human readable output instead of JSON lines
}

// Rotation describes one rolling log file.
type Rotation struct {
	Name       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

// LogFile implements a file based logger with one rolling file per level group
// and a separate file for the http access log.
type LogFile struct {
	Enabled bool
	Path    string

	Access Rotation
	Error  Rotation
	Info   Rotation
	Trace  Rotation
	Warn   Rotation
}

// Log implements the logger config.
type Log struct {
	LogLevel string // trace, debug, info, warn, error.

	// EnableAccessLogToConsole writes the http access log to stdout.
	// Does not overrule flag Console.Enabled!
	EnableAccessLogToConsole bool
	ReportCaller             bool
	DisableCheckAlive        bool // do not log /checkalive calls

	AppName     string
	ServiceName string

	Console Console
	File    LogFile
}
