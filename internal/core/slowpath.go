package core

// powerOfTwoShifts[n] is the largest right-shift that cannot drive a value
// with decimal point n below the next binade, i.e. floor(log2(10^n)), capped
// by the table length; larger decimal points use maxDecimalShift directly.
var powerOfTwoShifts = [19]uint{
	0, 3, 6, 9, 13, 16, 19, 23, 26, 29, 33, 36, 39, 43, 46, 49, 53, 56, 59,
}

func decimalShift(n int) uint {
	if n < len(powerOfTwoShifts) {
		return powerOfTwoShifts[n]
	}
	return maxDecimalShift
}

// ComputeSlow converts a literal with full precision: the digits are loaded
// into a decimal buffer which is then shifted by powers of two until the
// value lies in [1/2, 1), at which point the significand can be read off with
// a single correctly-rounded integer extraction. Complete but slow; it only
// runs when the Eisel-Lemire approximation gives up.
func (f *Format) ComputeSlow(s string) biasedFp {
	d := parseDecimal(s)
	if d.nd == 0 || d.dp < -324 {
		return zeroFp()
	}
	if d.dp >= 310 {
		return infFp(f)
	}

	exp2 := 0
	// Scale the value below one.
	for d.dp > 0 {
		shift := decimalShift(d.dp)
		d.rightShift(shift)
		if d.dp < -decimalPointRange {
			return zeroFp()
		}
		exp2 += int(shift)
	}
	// Scale it back up into [1/2, 1).
	for d.dp <= 0 {
		var shift uint
		if d.dp == 0 {
			if d.nd == 0 {
				return zeroFp()
			}
			if d.d[0] >= 5 {
				break
			}
			if d.d[0] < 2 {
				shift = 2
			} else {
				shift = 1
			}
		} else {
			shift = decimalShift(-d.dp)
		}
		d.leftShift(shift)
		if d.dp > decimalPointRange {
			return infFp(f)
		}
		exp2 -= int(shift)
	}
	// The loops above normalise to [1/2, 1); binary significands live in
	// [1, 2).
	exp2--

	// Pull a subnormal value up to the minimum exponent.
	for f.MinExponent+1 > exp2 {
		n := f.MinExponent + 1 - exp2
		if n > maxDecimalShift {
			n = maxDecimalShift
		}
		d.rightShift(uint(n))
		exp2 += n
	}
	if exp2-f.MinExponent >= f.InfinitePower {
		return infFp(f)
	}

	d.leftShift(f.MantissaExplicitBits + 1)
	mantissa := d.round()
	if mantissa >= 2*f.hiddenBit() {
		// Rounding carried into an extra bit; shift back down and round
		// again.
		d.rightShift(1)
		exp2++
		mantissa = d.round()
		if exp2-f.MinExponent >= f.InfinitePower {
			return infFp(f)
		}
	}

	power2 := exp2 - f.MinExponent
	if mantissa < f.hiddenBit() {
		power2--
	}
	mantissa &^= f.hiddenBit()
	return biasedFp{f: mantissa, e: power2}
}
