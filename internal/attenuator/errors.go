package attenuator

import "errors"

// Domain errors for the attenuator registry.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrNoDevices is returned when initialisation is attempted with no
	// discovered addresses.
	ErrNoDevices = errors.New("attenuator: no ACM devices found, please check your devices connection")

	// ErrNotFound is returned when a logical instrument name is unknown.
	ErrNotFound = errors.New("attenuator: instrument name not found")
)
