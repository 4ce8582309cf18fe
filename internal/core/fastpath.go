package core

import "math"

// powersOfTenFloat64 holds every power of ten that is exactly representable
// as a float64.
var powersOfTenFloat64 = [23]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11,
	1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// powersOfTenFloat32 holds every power of ten that is exactly representable
// as a float32.
var powersOfTenFloat32 = [11]float32{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
}

// powersOfTenUint64 holds the integer powers of ten that fit a uint64.
var powersOfTenUint64 = [20]uint64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

// TryFastPath attempts the exact native-arithmetic shortcut. When both the
// mantissa and the power of ten are exactly representable in the target
// format, a single IEEE multiplication or division is correctly rounded and
// no further work is needed. It returns the unsigned bit pattern and whether
// the shortcut applied.
func (f *Format) TryFastPath(num Number) (uint64, bool) {
	if num.ManyDigits ||
		num.Mantissa > f.MaxMantissaFastPath ||
		num.Exponent < f.MinExponentFastPath ||
		num.Exponent > f.MaxExponentDisguisedFastPath {
		return 0, false
	}
	mantissa := num.Mantissa
	exponent := num.Exponent
	if exponent > f.MaxExponentFastPath {
		// Disguised fast path: fold the excess power of ten into the
		// integer mantissa and retry with the largest exact exponent.
		// Only positive exponents can reach here.
		shift := exponent - f.MaxExponentFastPath
		if mantissa > f.MaxMantissaFastPath/powersOfTenUint64[shift] {
			return 0, false
		}
		mantissa *= powersOfTenUint64[shift]
		exponent = f.MaxExponentFastPath
	}
	if f.Bits == 32 {
		value := float32(mantissa)
		if exponent < 0 {
			value /= powersOfTenFloat32[-exponent]
		} else {
			value *= powersOfTenFloat32[exponent]
		}
		return uint64(math.Float32bits(value)), true
	}
	value := float64(mantissa)
	if exponent < 0 {
		value /= powersOfTenFloat64[-exponent]
	} else {
		value *= powersOfTenFloat64[exponent]
	}
	return math.Float64bits(value), true
}
