package logger

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrAppNameIsEmpty is returned by Init when [Log] AppName is missing.
	ErrAppNameIsEmpty = errors.New("log app name is required")

	// ErrServiceNameIsEmpty is returned by Init when [Log] ServiceName is missing.
	ErrServiceNameIsEmpty = errors.New("log service name is required")
)

// writeFailed reports events zerolog could not write to any of its outputs.
func writeFailed(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "logger: dropped event: %v\n", err)
}
