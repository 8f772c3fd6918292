package attenuator

import (
	"errors"
	"fmt"
	"sync"
)

// Instrument is the per-unit protocol surface the registry depends on.
// instrument.Session satisfies it; tests substitute a stateful double.
type Instrument interface {
	Address() string
	AllowedValues() ([]string, error)
	CurrentValue() (float64, error)
	Set(value float64) (float64, error)
	StepUp() (float64, error)
	StepDown() (float64, error)
	Close() error
}

// OpenFunc opens an instrument session for one transport address.
type OpenFunc func(address string) (Instrument, error)

// Logger defines the logging interface used by the Registry.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// unit couples one open instrument with its cached value table and the
// lock that serialises commands against it.
type unit struct {
	inst    Instrument
	allowed []string
	mu      sync.Mutex
}

// Registry maps logical instrument names to open sessions.
//
// Names are assigned by discovery order ("att0", "att1", ...) during
// Initialize and stay fixed for the registry's lifetime. All public methods
// are thread-safe.
type Registry struct {
	open   OpenFunc
	logger Logger

	mu       sync.Mutex
	names    []string // discovery order
	units    map[string]*unit
	shutdown bool
}

// NewRegistry creates an empty registry. Sessions are opened through open
// when Initialize runs.
func NewRegistry(open OpenFunc) *Registry {
	return &Registry{
		open:   open,
		logger: noopLogger{},
		units:  make(map[string]*unit),
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger Logger) {
	r.logger = logger
}

// Initialize opens one session per address, in the given order, and caches
// each unit's supported value table.
//
// Initialisation is all-or-nothing: if any open or initial table query
// fails, every session opened so far is closed and the error is returned;
// no partial registry survives. Zero addresses yields ErrNoDevices.
func (r *Registry) Initialize(addresses []string) error {
	if len(addresses) == 0 {
		return ErrNoDevices
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, addr := range addresses {
		name := fmt.Sprintf("att%d", i)

		inst, err := r.open(addr)
		if err != nil {
			r.closeAllLocked()
			return fmt.Errorf("opening %s (%s): %w", name, addr, err)
		}

		allowed, err := inst.AllowedValues()
		if err != nil {
			inst.Close() //nolint:errcheck // already failing, surface the query error
			r.closeAllLocked()
			return fmt.Errorf("querying value table of %s (%s): %w", name, addr, err)
		}

		r.names = append(r.names, name)
		r.units[name] = &unit{inst: inst, allowed: allowed}
		r.logger.Info("instrument registered",
			"name", name,
			"address", addr,
			"allowed_values", len(allowed),
		)
	}

	return nil
}

// Names returns the logical instrument names in discovery order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// AllowedValues returns every instrument's cached value table, keyed by
// logical name. Tokens are the firmware's original formatting.
func (r *Registry) AllowedValues() map[string][]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string][]string, len(r.units))
	for name, u := range r.units {
		vals := make([]string, len(u.allowed))
		copy(vals, u.allowed)
		out[name] = vals
	}
	return out
}

// lookup resolves a logical name. Returns ErrNotFound for unknown names.
func (r *Registry) lookup(name string) (*unit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.units[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return u, nil
}

// Shutdown closes every session. It is idempotent: the first call closes,
// subsequent calls are no-ops. The registry is unusable afterwards.
func (r *Registry) Shutdown() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.shutdown {
		return nil
	}
	r.shutdown = true

	count := len(r.names)
	err := r.closeAllLocked()
	r.logger.Info("registry shut down", "instruments", count)
	return err
}

// closeAllLocked closes every open session and clears the registry state.
// Callers must hold r.mu.
func (r *Registry) closeAllLocked() error {
	var errs []error
	for name, u := range r.units {
		if err := u.inst.Close(); err != nil {
			r.logger.Error("closing instrument failed", "name", name, "error", err)
			errs = append(errs, err)
		}
	}
	r.units = make(map[string]*unit)
	r.names = nil
	return errors.Join(errs...)
}
