// Package rounding holds the display-precision rounding rules shared by the
// projection service and its callers. The rules are configuration: load them
// once at startup and treat the resulting Config as read-only.
package rounding

import (
	"fmt"

	"github.com/loanwise/loan_projection_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Method selects the rounding rule used when reducing a value to display precision.
type Method string

const (
	// HalfEven breaks .5 ties towards the nearest even digit (banker's rounding).
	HalfEven Method = "half_even"
	// HalfUp breaks .5 ties away from zero.
	HalfUp Method = "half_up"
	// Down rounds towards zero.
	Down Method = "down"
	// Up rounds away from zero.
	Up Method = "up"
	// Ceiling rounds towards positive infinity.
	Ceiling Method = "ceiling"
	// Floor rounds towards negative infinity.
	Floor Method = "floor"
)

// ParseMethod validates a raw configuration string against the known methods.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case HalfEven, HalfUp, Down, Up, Ceiling, Floor:
		return Method(s), nil
	default:
		return "", fmt.Errorf("%w: unknown rounding method '%s'", apperrors.ErrValidation, s)
	}
}

// Config pairs a rounding method with the number of decimal places kept for
// display values.
type Config struct {
	Places int32
	Method Method
}

// DefaultConfig returns two decimal places with banker's rounding, the
// behaviour expected for currency output.
func DefaultConfig() Config {
	return Config{Places: 2, Method: HalfEven}
}

// Apply reduces a full-precision value to display precision under the
// configured rule. Unknown methods fall back to HalfEven rather than failing;
// Config values are validated when parsed from configuration.
func (c Config) Apply(value decimal.Decimal) decimal.Decimal {
	switch c.Method {
	case HalfUp:
		return value.Round(c.Places)
	case Down:
		return value.RoundDown(c.Places)
	case Up:
		return value.RoundUp(c.Places)
	case Ceiling:
		return value.RoundCeil(c.Places)
	case Floor:
		return value.RoundFloor(c.Places)
	default:
		return value.RoundBank(c.Places)
	}
}
