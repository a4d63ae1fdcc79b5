package layout

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidValue is returned when a raw style value cannot be read as a dimension.
var ErrInvalidValue = errors.New("invalid dimension value")

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitUnset   Unit = iota // Not declared by the style
	UnitAuto                // Size determined by content/flex
	UnitFixed               // Absolute terminal cells
	UnitPercent             // Percentage of parent's available space
)

// Value represents a declared scalar: a dimension, a spacing, or a flex factor.
// The zero Value is unset.
type Value struct {
	Amount float64
	Unit   Unit
}

// Unset returns a Value that was never declared.
func Unset() Value {
	return Value{}
}

// Auto returns a Value that should be computed from content/flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute amount (terminal cells for
// dimensions, a plain factor for flex).
func Fixed(n float64) Value {
	return Value{Amount: n, Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the actual integer value given available space.
// For UnitUnset and UnitAuto, returns the fallback value.
func (v Value) Resolve(available, fallback int) int {
	switch v.Unit {
	case UnitFixed:
		return int(v.Amount)
	case UnitPercent:
		return int(float64(available) * v.Amount / 100.0)
	default:
		return fallback
	}
}

// IsSet returns true if the style declared this value.
func (v Value) IsSet() bool {
	return v.Unit != UnitUnset
}

// IsNonZero returns true if the value is set and is not a fixed zero.
// A declared 0 sizes nothing, so it reads as undeclared where a size is
// required; "0%" and "auto" still count.
func (v Value) IsNonZero() bool {
	return v.IsSet() && !(v.Unit == UnitFixed && v.Amount == 0)
}

// OrNonZero returns v if it is non-zero, otherwise fallback.
func (v Value) OrNonZero(fallback Value) Value {
	if v.IsNonZero() {
		return v
	}
	return fallback
}

// IsAuto returns true if this value should be computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// Or returns v if it is set, otherwise fallback.
func (v Value) Or(fallback Value) Value {
	if v.IsSet() {
		return v
	}
	return fallback
}

// String formats the value the way a style declaration would spell it.
func (v Value) String() string {
	switch v.Unit {
	case UnitAuto:
		return "auto"
	case UnitFixed:
		return strconv.FormatFloat(v.Amount, 'g', -1, 64)
	case UnitPercent:
		return strconv.FormatFloat(v.Amount, 'g', -1, 64) + "%"
	default:
		return "unset"
	}
}

// ParseValue reads a raw style value. Numbers become Fixed, "N%" becomes
// Percent, "auto" becomes Auto and nil stays Unset. Anything else returns
// ErrInvalidValue together with an unset Value.
func ParseValue(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Unset(), nil
	case Value:
		return v, nil
	case int:
		return Fixed(float64(v)), nil
	case int8:
		return Fixed(float64(v)), nil
	case int16:
		return Fixed(float64(v)), nil
	case int32:
		return Fixed(float64(v)), nil
	case int64:
		return Fixed(float64(v)), nil
	case uint:
		return Fixed(float64(v)), nil
	case uint8:
		return Fixed(float64(v)), nil
	case uint16:
		return Fixed(float64(v)), nil
	case uint32:
		return Fixed(float64(v)), nil
	case uint64:
		return Fixed(float64(v)), nil
	case float32:
		return parseFloat(float64(v))
	case float64:
		return parseFloat(v)
	case string:
		return parseString(v)
	default:
		return Unset(), fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, raw)
	}
}

func parseFloat(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Unset(), fmt.Errorf("%w: %v", ErrInvalidValue, f)
	}
	return Fixed(f), nil
}

func parseString(s string) (Value, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Unset(), fmt.Errorf("%w: empty string", ErrInvalidValue)
	case strings.EqualFold(s, "auto"):
		return Auto(), nil
	case strings.HasSuffix(s, "%"):
		p, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64)
		if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
			return Unset(), fmt.Errorf("%w: %q", ErrInvalidValue, s)
		}
		return Percent(p), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Unset(), fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	return parseFloat(f)
}
