package transport

import "errors"

// Domain errors for the transport package.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrEnumerationFailed is returned when the host's serial device listing fails.
	ErrEnumerationFailed = errors.New("transport: enumerating serial devices failed")

	// ErrOpenFailed is returned when a serial port cannot be opened.
	ErrOpenFailed = errors.New("transport: opening serial port failed")
)
