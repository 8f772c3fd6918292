package instrument

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rfworks/attctl/internal/transport"
)

// Commands understood by the attenuator firmware. Each elicits exactly one
// response line.
const (
	cmdAllowedValues = "ATT:ATTTabGet?"
	cmdCurrentValue  = "ATT:ATTGetCurVal?"
	cmdSetValue      = "ATT:ATTSet?" // followed by " <float>"
	cmdStepUp        = "ATT:ATTSetUp?"
	cmdStepDown      = "ATT:ATTSetDown?"
)

// Session owns one open serial channel to one attenuator unit.
//
// A Session is not safe for concurrent use; the underlying channel cannot
// multiplex overlapping commands. Callers must serialise access.
type Session struct {
	address    string
	conn       transport.Conn
	timeout    time.Duration
	terminator string

	// pending holds bytes read past the last terminator, carried over to
	// the next query.
	pending []byte
}

// NewSession wraps an open channel in a protocol session.
//
// The timeout bounds each query's wait for a full response line; the
// terminator ends every command and every response line. The session takes
// ownership of conn and closes it in Close.
func NewSession(address string, conn transport.Conn, timeout time.Duration, terminator string) *Session {
	return &Session{
		address:    address,
		conn:       conn,
		timeout:    timeout,
		terminator: terminator,
	}
}

// Address returns the transport address this session is bound to.
func (s *Session) Address() string {
	return s.address
}

// Query writes command followed by the line terminator, then blocks until
// one full response line arrives or the timeout elapses.
//
// The returned line has the terminator stripped. Returns ErrTimeout if no
// complete line arrives in time, ErrIO on channel failure, ErrClosed after
// Close.
func (s *Session) Query(command string) (string, error) {
	if s.conn == nil {
		return "", ErrClosed
	}

	if _, err := s.conn.Write([]byte(command + s.terminator)); err != nil {
		return "", fmt.Errorf("%w: writing %q to %s: %w", ErrIO, command, s.address, err)
	}

	line, err := s.readLine()
	if err != nil {
		return "", err
	}
	return line, nil
}

// readLine accumulates bytes until the terminator is seen, keeping any
// excess for the next call. The deadline covers the whole line, not each
// individual read.
func (s *Session) readLine() (string, error) {
	term := []byte(s.terminator)
	deadline := time.Now().Add(s.timeout)

	buf := s.pending
	s.pending = nil

	chunk := make([]byte, 256)
	for {
		if i := bytes.Index(buf, term); i >= 0 {
			line := string(buf[:i])
			rest := buf[i+len(term):]
			if len(rest) > 0 {
				s.pending = append([]byte(nil), rest...)
			}
			return line, nil
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return "", fmt.Errorf("%w: no line from %s within %v", ErrTimeout, s.address, s.timeout)
		}
		if err := s.conn.SetReadTimeout(remaining); err != nil {
			return "", fmt.Errorf("%w: setting read timeout on %s: %w", ErrIO, s.address, err)
		}

		n, err := s.conn.Read(chunk)
		if err != nil {
			return "", fmt.Errorf("%w: reading from %s: %w", ErrIO, s.address, err)
		}
		if n == 0 {
			// Timed-out read per the transport.Conn contract.
			return "", fmt.Errorf("%w: no line from %s within %v", ErrTimeout, s.address, s.timeout)
		}
		buf = append(buf, chunk[:n]...)
	}
}

// queryFloat issues command and parses the single response line as a
// floating-point value. Returns ErrProtocol if the response is not numeric.
func (s *Session) queryFloat(command string) (float64, error) {
	line, err := s.Query(command)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s replied %q to %q", ErrProtocol, s.address, line, command)
	}
	return v, nil
}

// AllowedValues fetches the unit's supported attenuation values.
//
// Tokens are returned exactly as the firmware formats them; they are the
// membership reference for set operations and are never normalised.
func (s *Session) AllowedValues() ([]string, error) {
	line, err := s.Query(cmdAllowedValues)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(line) == "" {
		return nil, fmt.Errorf("%w: %s replied with an empty value table", ErrProtocol, s.address)
	}
	return strings.Split(line, ","), nil
}

// CurrentValue queries the present attenuation setting in dB.
func (s *Session) CurrentValue() (float64, error) {
	return s.queryFloat(cmdCurrentValue)
}

// Set requests the given attenuation and returns the value echoed by the
// unit. Validation against the allowed table is the caller's concern.
func (s *Session) Set(value float64) (float64, error) {
	return s.queryFloat(fmt.Sprintf("%s %f", cmdSetValue, value))
}

// StepUp increases attenuation by one table position and returns the echoed
// new value.
func (s *Session) StepUp() (float64, error) {
	return s.queryFloat(cmdStepUp)
}

// StepDown decreases attenuation by one table position and returns the
// echoed new value.
func (s *Session) StepDown() (float64, error) {
	return s.queryFloat(cmdStepDown)
}

// Close releases the serial channel. It is idempotent and safe to call on a
// session whose channel was never fully set up.
func (s *Session) Close() error {
	if s.conn == nil {
		return nil
	}
	conn := s.conn
	s.conn = nil
	if err := conn.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %w", ErrIO, s.address, err)
	}
	return nil
}
