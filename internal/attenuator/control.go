package attenuator

import (
	"fmt"
	"slices"
	"strconv"
)

// Caller-facing failure messages. StepUp/StepDown reuse the
// unsupported-value message for unknown names; existing automation matches
// on these exact strings, so the wording must not change.
const (
	msgNameNotFound     = "Instrument name not found"
	msgUnsupportedValue = "Unsupported attenuation value"
)

// Result is the outcome triple of a facade operation.
//
// OK reports success; Value carries the attenuation in dB when the
// operation yields one (nil otherwise); Message describes the failure and
// is empty on success.
type Result struct {
	OK      bool
	Value   *float64
	Message string
}

// String renders the triple in the (status, value, message) form the CLI
// prints, e.g. (true, 5, "") or (false, nil, "Instrument name not found").
func (r Result) String() string {
	if r.Value == nil {
		return fmt.Sprintf("(%t, nil, %q)", r.OK, r.Message)
	}
	return fmt.Sprintf("(%t, %g, %q)", r.OK, *r.Value, r.Message)
}

func succeed(value float64) Result {
	return Result{OK: true, Value: &value}
}

func fail(message string) Result {
	return Result{Message: message}
}

// Control is the public operation surface over a Registry.
//
// No method returns a Go error: lower-layer failures are always converted
// into a Result with OK=false and a descriptive message. There are no
// retries; a single transport failure surfaces immediately.
type Control struct {
	reg *Registry
}

// NewControl wraps an initialised registry.
func NewControl(reg *Registry) *Control {
	return &Control{reg: reg}
}

// Names returns the logical instrument names in discovery order.
func (c *Control) Names() []string {
	return c.reg.Names()
}

// AllowedValues returns each instrument's supported attenuation values,
// keyed by logical name.
func (c *Control) AllowedValues() map[string][]string {
	return c.reg.AllowedValues()
}

// Value queries the current attenuation of the named instrument.
func (c *Control) Value(name string) Result {
	u, err := c.reg.lookup(name)
	if err != nil {
		return fail(msgNameNotFound)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	v, err := u.inst.CurrentValue()
	if err != nil {
		return fail(err.Error())
	}
	return succeed(v)
}

// SetValue sets the named instrument to the given attenuation token.
//
// The token must be a member of the instrument's cached value table,
// compared as the exact original string: "5.0" is rejected when the table
// holds "5". On success the value echoed by the unit is returned.
func (c *Control) SetValue(name, token string) Result {
	u, err := c.reg.lookup(name)
	if err != nil {
		return fail(msgNameNotFound)
	}

	if !slices.Contains(u.allowed, token) {
		return fail(msgUnsupportedValue)
	}

	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		// A table token that is not numeric cannot be sent on the wire.
		return fail(msgUnsupportedValue)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	echoed, err := u.inst.Set(v)
	if err != nil {
		return fail(err.Error())
	}
	return succeed(echoed)
}

// StepUp increases the named instrument's attenuation by one table position.
func (c *Control) StepUp(name string) Result {
	u, err := c.reg.lookup(name)
	if err != nil {
		return fail(msgUnsupportedValue)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	v, err := u.inst.StepUp()
	if err != nil {
		return fail(err.Error())
	}
	return succeed(v)
}

// StepDown decreases the named instrument's attenuation by one table position.
func (c *Control) StepDown(name string) Result {
	u, err := c.reg.lookup(name)
	if err != nil {
		return fail(msgUnsupportedValue)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	v, err := u.inst.StepDown()
	if err != nil {
		return fail(err.Error())
	}
	return succeed(v)
}
