package core

// minNineteenDigitInt is 10^18. While the running mantissa stays below this
// threshold another decimal digit can be accumulated without overflowing a
// uint64.
const minNineteenDigitInt = 1_000_000_000_000_000_000

// maxExponentNumber clamps the scientific-notation exponent accumulator so
// that adding one more digit can never overflow an int32.
const maxExponentNumber = (1<<31-1)/10 - 10

// Number is the lexical decomposition of a decimal floating-point literal:
// up to 19 significant digits collapsed into a 64-bit mantissa, the decimal
// exponent already adjusted for the position of the point, and a flag telling
// whether digits had to be dropped.
type Number struct {
	// Mantissa holds the significant digits as an integer. When ManyDigits
	// is false the literal's exact value is Mantissa * 10^Exponent.
	Mantissa uint64

	// Exponent is the decimal exponent applied to Mantissa.
	Exponent int

	// ManyDigits reports that the literal carried more than 19 significant
	// digits, so Mantissa is a truncation and rounding needs extra care.
	ManyDigits bool

	// End is the number of bytes consumed from the input.
	End int
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// ParseNumber lexes a decimal literal (no sign, no special tokens) from the
// start of s. It returns false when no digits are present before the optional
// exponent part.
func ParseNumber(s string) (Number, bool) {
	var num Number
	i := 0
	n := len(s)

	intStart := i
	mantissa := uint64(0)
	for i < n && isDigit(s[i]) {
		// Deliberately allowed to wrap: inputs with more than 19
		// significant digits are re-scanned below.
		mantissa = mantissa*10 + uint64(s[i]-'0')
		i++
	}
	intEnd := i
	digitCount := i - intStart

	exponent := 0
	fracStart := i
	fracEnd := i
	if i < n && s[i] == '.' {
		i++
		fracStart = i
		for i < n && isDigit(s[i]) {
			mantissa = mantissa*10 + uint64(s[i]-'0')
			i++
		}
		fracEnd = i
		exponent = -(fracEnd - fracStart)
		digitCount += fracEnd - fracStart
	}
	if digitCount == 0 {
		return Number{}, false
	}

	expNumber := 0
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		negExp := false
		if j < n && (s[j] == '+' || s[j] == '-') {
			negExp = s[j] == '-'
			j++
		}
		if j < n && isDigit(s[j]) {
			v := 0
			for j < n && isDigit(s[j]) {
				if v < maxExponentNumber {
					v = v*10 + int(s[j]-'0')
				}
				j++
			}
			if negExp {
				v = -v
			}
			expNumber = v
			i = j
		}
		// A bare exponent marker without digits is not consumed.
	}
	exponent += expNumber

	num.Mantissa = mantissa
	num.Exponent = exponent
	num.End = i

	if digitCount > 19 {
		// Count significant digits, ignoring leading zeros and the
		// point. The run of '0' and '.' bytes cannot extend past the
		// mantissa span, so bounding by the consumed length is safe.
		p := intStart
		significant := digitCount
		for p < i && (s[p] == '0' || s[p] == '.') {
			if s[p] == '0' {
				significant--
			}
			p++
		}
		if significant > 19 {
			num.ManyDigits = true
			num.Mantissa, num.Exponent = rescanNumber(s, intStart, intEnd, fracStart, fracEnd, expNumber)
		}
	}
	return num, true
}

// rescanNumber re-reads at most 19 significant digits after the first pass
// saw too many. Leading zeros accumulate harmlessly into the fresh mantissa;
// the returned exponent accounts for every digit position left unread.
func rescanNumber(s string, intStart, intEnd, fracStart, fracEnd, expNumber int) (uint64, int) {
	mantissa := uint64(0)
	p := intStart
	for mantissa < minNineteenDigitInt && p < intEnd {
		mantissa = mantissa*10 + uint64(s[p]-'0')
		p++
	}
	if mantissa >= minNineteenDigitInt {
		// Stopped inside the integer part; the unread tail scales the
		// truncated mantissa up.
		return mantissa, (intEnd - p) + expNumber
	}
	// Crossed the point; continue in the fraction span.
	p = fracStart
	for mantissa < minNineteenDigitInt && p < fracEnd {
		mantissa = mantissa*10 + uint64(s[p]-'0')
		p++
	}
	return mantissa, (fracStart - p) + expNumber
}
