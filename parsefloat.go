package parsefloat

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/scigolib/parsefloat/internal/core"
	"github.com/scigolib/parsefloat/internal/utils"
)

// Errors returned by the parsing entry points. Stage-specific context may be
// layered on top; match with errors.Is.
var (
	ErrEmptyInput  = core.ErrEmptyInput
	ErrNoDigits    = core.ErrNoDigits
	ErrHexNoDigits = core.ErrHexNoDigits
	ErrSyntax      = core.ErrSyntax
	ErrConversion  = core.ErrConversion
	ErrRange       = core.ErrRange
)

// ParseFloat64 converts s to the correctly rounded float64. The whole input
// must form one literal; trailing bytes make the parse fail with
// ErrConversion.
func ParseFloat64(s string) (float64, error) {
	value, n, err := ParseFloat64Prefix(s)
	if err != nil {
		return 0, err
	}
	if n != len(s) {
		return 0, ErrConversion
	}
	return value, nil
}

// ParseFloat32 is ParseFloat64 for single precision. Decimal literals round
// once, directly to 24 bits; the result is never a double rounding through
// float64.
func ParseFloat32(s string) (float32, error) {
	value, n, err := ParseFloat32Prefix(s)
	if err != nil {
		return 0, err
	}
	if n != len(s) {
		return 0, ErrConversion
	}
	return value, nil
}

// ParseFloat64Prefix converts the longest valid literal prefix of s and
// additionally returns how many bytes it consumed.
func ParseFloat64Prefix(s string) (float64, int, error) {
	bits, n, err := core.Binary64.ParseBits(s)
	if err != nil {
		return 0, 0, utils.WrapError("float64 conversion failed", err)
	}
	return math.Float64frombits(bits), n, nil
}

// ParseFloat32Prefix converts the longest valid literal prefix of s and
// additionally returns how many bytes it consumed.
func ParseFloat32Prefix(s string) (float32, int, error) {
	bits, n, err := core.Binary32.ParseBits(s)
	if err != nil {
		return 0, 0, utils.WrapError("float32 conversion failed", err)
	}
	return math.Float32frombits(uint32(bits)), n, nil
}

// Parse converts s to the correctly rounded value of the requested float
// type. It is a generic front for ParseFloat32 and ParseFloat64.
func Parse[T constraints.Float](s string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case float32:
		value, err := ParseFloat32(s)
		return T(value), err
	default:
		value, err := ParseFloat64(s)
		return T(value), err
	}
}
