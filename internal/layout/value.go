package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content/flex
	UnitFixed               // Absolute pixels
	UnitPercent             // Percentage of parent's content dimension
)

// Value represents a dimension that can be fixed, percentage, or auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that should be computed from content/flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of pixels.
func Fixed(n float64) Value {
	return Value{Amount: n, Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of the parent's
// content dimension. The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Fill returns a Value that fills the parent's content dimension.
// It is an alias for Percent(100).
func Fill() Value {
	return Percent(100)
}

// ErrMalformedValue is returned by Parse for inputs that are not a number,
// a percentage, "auto", or "fill".
var ErrMalformedValue = errors.New("malformed size value")

// Parse converts a size string into a Value.
//
// Accepted forms: "" and "auto" (auto), "fill" (100%), a decimal number
// ("12", "12.5") for fixed pixels, and a decimal percentage ("50%").
// Anything else fails with ErrMalformedValue; malformed sizes are a caller
// bug and are reported eagerly rather than silently defaulted.
func Parse(s string) (Value, error) {
	switch s {
	case "", "auto":
		return Auto(), nil
	case "fill":
		return Fill(), nil
	}

	if strings.HasSuffix(s, "%") {
		num := strings.TrimSuffix(s, "%")
		if !isDecimal(num) {
			return Value{}, fmt.Errorf("%w: %q", ErrMalformedValue, s)
		}
		p, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q", ErrMalformedValue, s)
		}
		return Percent(p), nil
	}

	if !isDecimal(s) {
		return Value{}, fmt.Errorf("%w: %q", ErrMalformedValue, s)
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q", ErrMalformedValue, s)
	}
	return Fixed(n), nil
}

// MustParse is like Parse but panics on malformed input.
// Intended for literals in tests and examples.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// isDecimal reports whether s consists of digits with at most one decimal
// point, e.g. "12" or "12.5". Signs and exponents are rejected.
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	dot := false
	for i, r := range s {
		if r == '.' {
			if dot || i == 0 || i == len(s)-1 {
				return false
			}
			dot = true
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Resolve computes the concrete pixel value given the parent dimension.
// The second return is false for auto values, which stay unresolved until
// measurement.
func (v Value) Resolve(parent float64) (float64, bool) {
	switch v.Unit {
	case UnitFixed:
		return v.Amount, true
	case UnitPercent:
		return parent * v.Amount / 100.0, true
	default:
		return 0, false
	}
}

// IsAuto returns true if this value should be computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// IsFixed returns true if this value is an absolute pixel count.
func (v Value) IsFixed() bool {
	return v.Unit == UnitFixed
}

// IsPercent returns true if this value is relative to the parent dimension.
func (v Value) IsPercent() bool {
	return v.Unit == UnitPercent
}

// String formats the value the way Parse accepts it.
func (v Value) String() string {
	switch v.Unit {
	case UnitFixed:
		return strconv.FormatFloat(v.Amount, 'f', -1, 64)
	case UnitPercent:
		return strconv.FormatFloat(v.Amount, 'f', -1, 64) + "%"
	default:
		return "auto"
	}
}
