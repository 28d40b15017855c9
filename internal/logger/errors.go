package logger

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrAppNameIsEmpty is returned if Log.AppName was not defined.
	ErrAppNameIsEmpty = errors.New("config Log.AppName can not be empty")

	// ErrServiceNameIsEmpty is returned if Log.ServiceName was not defined.
	ErrServiceNameIsEmpty = errors.New("config Log.ServiceName can not be empty")

	// ErrLogLevel is returned for a level zerolog does not know.
	ErrLogLevel = errors.New("log level is not supported")
)

// writeFailed is called by zerolog when an event can not be written.
func writeFailed(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "madrasa-site: dropped log event: %v\n", err)
}
