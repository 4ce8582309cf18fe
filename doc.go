// Package parsefloat converts textual numeric literals into IEEE-754 single-
// and double-precision values with guaranteed correct rounding: the result is
// always the representable value nearest the real number the text denotes,
// ties to even, across the full dynamic range including subnormals, overflow
// to infinity and ties at half a unit in the last place.
//
// Parsing is organised as a three-tier pipeline. Short literals resolve with
// a single native floating-point operation; most of the remainder resolve
// through the Eisel-Lemire 128-bit approximation against a precomputed table
// of powers of five; the rare inputs neither tier can settle fall back to an
// exact arbitrary-precision decimal conversion. The pipeline never fails to
// produce a value for a lexically valid literal.
//
// Accepted literals are decimal ("1.25e-3"), hexadecimal with a mandatory
// binary exponent ("0x1.8p3"), and the case-insensitive special spellings
// inf, infinity and nan, all with an optional leading sign. Hexadecimal
// literals with more than 53 significant bits are rounded to float64 first,
// so their float32 and subnormal results are not guaranteed to be correctly
// rounded.
//
// The parser is a pure function of its input: it performs no I/O, allocates
// no growable state (the fallback's 768-digit buffer is a fixed stack
// array), and keeps no mutable global state, so concurrent use needs no
// synchronisation.
package parsefloat
