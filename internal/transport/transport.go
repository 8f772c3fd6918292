package transport

import (
	"fmt"
	"io"
	"strings"
	"time"

	"go.bug.st/serial"
)

// Conn is one open, exclusive serial channel to a physical device.
//
// It is the minimal surface the instrument layer needs: raw byte I/O plus a
// bounded read. A serial.Port satisfies it directly; tests substitute an
// in-memory fake.
type Conn interface {
	io.ReadWriteCloser

	// SetReadTimeout bounds every subsequent Read. A timed-out Read
	// returns n == 0 with a nil error.
	SetReadTimeout(t time.Duration) error
}

// Enumerate lists the serial device paths currently present on the host.
//
// The listing is a snapshot; devices attached or removed afterwards are not
// reflected. Returns ErrEnumerationFailed (wrapped) if the underlying
// listing call fails.
func Enumerate() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEnumerationFailed, err)
	}
	return ports, nil
}

// FilterACM returns the addresses whose path contains the match token,
// preserving enumeration order. The token marks ACM-class serial devices
// (e.g. "ACM" matches /dev/ttyACM0).
func FilterACM(addresses []string, match string) []string {
	var out []string
	for _, addr := range addresses {
		if strings.Contains(addr, match) {
			out = append(out, addr)
		}
	}
	return out
}

// Open opens the serial port at address for exclusive use.
//
// The port is configured for 8N1 framing at the given baud rate. Returns
// ErrOpenFailed (wrapped) if the port cannot be opened, including when it is
// already held by another process.
func Open(address string, baudRate int) (Conn, error) {
	port, err := serial.Open(address, &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOpenFailed, address, err)
	}
	return port, nil
}
