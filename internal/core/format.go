// Package core implements correctly-rounded conversion of decimal and
// hexadecimal floating-point literals into IEEE-754 bit patterns. It contains
// the three-tier pipeline: a native-arithmetic fast path for short inputs, the
// Eisel-Lemire 128-bit approximation, and an arbitrary-precision decimal
// fallback that is exact for every input the lexer accepts.
package core

// Format describes one IEEE-754 binary interchange format and carries every
// per-target constant the pipeline needs. The two supported instances are
// Binary32 and Binary64.
type Format struct {
	// MantissaExplicitBits is the number of stored significand bits,
	// excluding the hidden bit.
	MantissaExplicitBits uint

	// MinExponent is the minimum unbiased binary exponent (the bias,
	// negated).
	MinExponent int

	// InfinitePower is the biased exponent value that encodes infinity.
	InfinitePower int

	// SmallestPowerOfTen and LargestPowerOfTen bound the decimal exponents
	// for which a finite, non-zero result is possible at all.
	SmallestPowerOfTen int
	LargestPowerOfTen  int

	// MinExponentRoundToEven and MaxExponentRoundToEven delimit the decimal
	// exponents for which the scaled product can land exactly halfway
	// between two representable values.
	MinExponentRoundToEven int
	MaxExponentRoundToEven int

	// Fast-path bounds: the largest mantissa and the exponent window inside
	// which a single native multiply or divide is exact.
	MaxMantissaFastPath          uint64
	MinExponentFastPath          int
	MaxExponentFastPath          int
	MaxExponentDisguisedFastPath int

	// QuietNaN is the canonical quiet NaN bit pattern for the format.
	QuietNaN uint64

	// Bits is the total encoding width, 32 or 64.
	Bits uint
}

// Binary32 holds the constants for IEEE-754 single precision.
var Binary32 = &Format{
	MantissaExplicitBits:         23,
	MinExponent:                  -127,
	InfinitePower:                0xFF,
	SmallestPowerOfTen:           -65,
	LargestPowerOfTen:            38,
	MinExponentRoundToEven:       -17,
	MaxExponentRoundToEven:       10,
	MaxMantissaFastPath:          2 << 23,
	MinExponentFastPath:          -10,
	MaxExponentFastPath:          10,
	MaxExponentDisguisedFastPath: 10,
	QuietNaN:                     0x7FC00000,
	Bits:                         32,
}

// Binary64 holds the constants for IEEE-754 double precision.
var Binary64 = &Format{
	MantissaExplicitBits:         52,
	MinExponent:                  -1023,
	InfinitePower:                0x7FF,
	SmallestPowerOfTen:           -342,
	LargestPowerOfTen:            308,
	MinExponentRoundToEven:       -4,
	MaxExponentRoundToEven:       23,
	MaxMantissaFastPath:          2 << 52,
	MinExponentFastPath:          -22,
	MaxExponentFastPath:          22,
	MaxExponentDisguisedFastPath: 37,
	QuietNaN:                     0x7FF8000000000000,
	Bits:                         64,
}

// hiddenBit returns the implicit leading significand bit.
func (f *Format) hiddenBit() uint64 {
	return 1 << f.MantissaExplicitBits
}

// infBits returns the positive-infinity bit pattern.
func (f *Format) infBits() uint64 {
	return uint64(f.InfinitePower) << f.MantissaExplicitBits
}

// assemble combines a biased floating point value into the final IEEE-754
// encoding. The mantissa must already have its hidden bit stripped, or equal
// the hidden bit with biased exponent 1, which sets the same bit.
func (f *Format) assemble(fp biasedFp) uint64 {
	return fp.f | uint64(fp.e)<<f.MantissaExplicitBits
}
