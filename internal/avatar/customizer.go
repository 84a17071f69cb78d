package avatar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrInvalidValue = errors.New("invalid value")
	ErrOutOfRange   = errors.New("value out of range")
	ErrUnknownHat   = errors.New("unknown hat")
)

// Options are the dependencies a Customizer is built with.
type Options struct {
	// Origin is scheme://host[:port] of the hosting page.
	Origin  string
	Catalog *Catalog
	// OnChange is called with the new state after every change.
	OnChange func(State)
}

// Customizer is the single source of truth for one avatar being edited.
// It is not safe for concurrent use.
type Customizer struct {
	origin   string
	catalog  *Catalog
	onChange func(State)

	state State
}

// NewCustomizer returns a customizer holding a.
func NewCustomizer(opts Options, a Attributes) *Customizer {
	c := &Customizer{
		origin:   opts.Origin,
		catalog:  opts.Catalog,
		onChange: opts.OnChange,
	}
	c.state = c.derive(a)
	return c
}

// State returns the current state.
func (c *Customizer) State() State {
	return c.state
}

// Load replaces the whole state from a page query string.
func (c *Customizer) Load(rawQuery string) {
	c.commit(LoadFromQuery(rawQuery))
}

// ApplyChange sets one field from its textual widget value. Seed and URL are
// re-derived before the new state becomes visible. On error nothing changes.
func (c *Customizer) ApplyChange(field Field, value string) error {
	next, err := c.with(c.state.Attributes, field, value)
	if err != nil {
		return err
	}
	c.commit(next)
	return nil
}

func (c *Customizer) commit(a Attributes) {
	c.state = c.derive(a)
	if c.onChange != nil {
		c.onChange(c.state)
	}
}

func (c *Customizer) derive(a Attributes) State {
	return State{
		Attributes: a,
		Seed:       Encode(a),
		URL:        ShareURL(c.origin, a),
	}
}

// with returns a copy of a with field set to value.
func (c *Customizer) with(a Attributes, field Field, value string) (Attributes, error) {
	switch {
	case field.numeric():
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return a, fmt.Errorf("%s=%q: %w", field, value, ErrInvalidValue)
		}
		r, ok := c.catalog.Range(field)
		if ok && !r.Contains(n) {
			return a, fmt.Errorf("%s=%d not in [%d,%d]: %w", field, n, r.Min, r.Max, ErrOutOfRange)
		}
		setInt(&a, field, n)
	case field == FieldHat:
		if !c.catalog.HasHat(value) {
			return a, fmt.Errorf("%q: %w", value, ErrUnknownHat)
		}
		a.Hat = value
	case field == FieldFire || field == FieldWalking || field == FieldCircle:
		setBool(&a, field, checked(value))
	default:
		return a, fmt.Errorf("%q: %w", field, ErrUnknownField)
	}
	return a, nil
}

// checked interprets a checkbox value.
func checked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "on", "1":
		return true
	}
	return false
}
