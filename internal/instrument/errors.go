package instrument

import "errors"

// Domain errors for instrument sessions.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrTimeout is returned when no complete response line arrives
	// within the session timeout.
	ErrTimeout = errors.New("instrument: response timed out")

	// ErrIO is returned when the serial channel fails mid-exchange.
	ErrIO = errors.New("instrument: channel I/O failed")

	// ErrProtocol is returned when a response does not parse as expected,
	// e.g. a non-numeric reply to a value query.
	ErrProtocol = errors.New("instrument: malformed response")

	// ErrClosed is returned when a command is issued on a closed session.
	ErrClosed = errors.New("instrument: session closed")
)
