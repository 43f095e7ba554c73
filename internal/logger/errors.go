package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrAppNameIsEmpty is returned if Log.AppName was not defined.
	ErrAppNameIsEmpty = errors.New("config Log.AppName can not be empty")

	// ErrServiceNameIsEmpty is returned if Log.ServiceName was not defined.
	ErrServiceNameIsEmpty = errors.New("config Log.ServiceName can not be empty")

	// ErrUnsupportedLevel is returned for a Log.LogLevel zerolog does not know.
	ErrUnsupportedLevel = errors.New("config Log.LogLevel is not supported")
)

// errorOutput receives events zerolog failed to write.
var errorOutput io.Writer = os.Stderr //nolint:gochecknoglobals

// ErrorHandler reports zerolog write failures, e.g. a full disk below the
// rolling files, on errorOutput.
func ErrorHandler(err error) {
	_, _ = fmt.Fprintf(errorOutput, "zerolog: could not write event: %v\n", err)
}
