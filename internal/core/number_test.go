package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParseNumber tests the lexical decomposition of decimal literals.
func TestParseNumber(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantMantissa uint64
		wantExponent int
		wantMany     bool
		wantEnd      int
	}{
		{
			name:         "plain integer",
			input:        "12345",
			wantMantissa: 12345,
			wantExponent: 0,
			wantEnd:      5,
		},
		{
			name:         "integer and fraction",
			input:        "12.34",
			wantMantissa: 1234,
			wantExponent: -2,
			wantEnd:      5,
		},
		{
			name:         "fraction with exponent",
			input:        "12.34e5",
			wantMantissa: 1234,
			wantExponent: 3,
			wantEnd:      7,
		},
		{
			name:         "bare leading dot",
			input:        ".5",
			wantMantissa: 5,
			wantExponent: -1,
			wantEnd:      2,
		},
		{
			name:         "trailing dot",
			input:        "5.",
			wantMantissa: 5,
			wantExponent: 0,
			wantEnd:      2,
		},
		{
			name:         "negative exponent",
			input:        "625e-4",
			wantMantissa: 625,
			wantExponent: -4,
			wantEnd:      6,
		},
		{
			name:         "exponent with explicit plus",
			input:        "1e+10",
			wantMantissa: 1,
			wantExponent: 10,
			wantEnd:      5,
		},
		{
			name:         "sixteen digits stay exact",
			input:        "9007199254740993",
			wantMantissa: 9007199254740993,
			wantExponent: 0,
			wantEnd:      16,
		},
		{
			name:         "exponent marker without digits is not consumed",
			input:        "1e",
			wantMantissa: 1,
			wantExponent: 0,
			wantEnd:      1,
		},
		{
			name:         "exponent sign without digits is not consumed",
			input:        "1.5e+",
			wantMantissa: 15,
			wantExponent: -1,
			wantEnd:      3,
		},
		{
			name:         "trailing garbage stops the scan",
			input:        "3.25xyz",
			wantMantissa: 325,
			wantExponent: -2,
			wantEnd:      4,
		},
		{
			name:         "thirty digits truncate to nineteen",
			input:        "123456789012345678901234567890",
			wantMantissa: 1234567890123456789,
			wantExponent: 11,
			wantMany:     true,
			wantEnd:      30,
		},
		{
			name:         "many digits crossing the point",
			input:        "0.00000000000000000000000001234567890123456789012",
			wantMantissa: 1234567890123456789,
			wantExponent: -44,
			wantMany:     true,
			wantEnd:      49,
		},
		{
			name:         "leading zeros do not count as significant",
			input:        "000000000000000000000012345678901234567890",
			wantMantissa: 1234567890123456789,
			wantExponent: 1,
			wantMany:     true,
			wantEnd:      42,
		},
		{
			name:         "twenty zeros stay exact",
			input:        "00000000000000000000",
			wantMantissa: 0,
			wantExponent: 0,
			wantEnd:      20,
		},
		{
			name:         "huge exponent is clamped not wrapped",
			input:        "1e99999999999999999999",
			wantMantissa: 1,
			wantExponent: 999999999,
			wantEnd:      22,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			num, ok := ParseNumber(tt.input)
			require.True(t, ok)
			require.Equal(t, tt.wantMantissa, num.Mantissa, "mantissa")
			require.Equal(t, tt.wantExponent, num.Exponent, "exponent")
			require.Equal(t, tt.wantMany, num.ManyDigits, "many digits")
			require.Equal(t, tt.wantEnd, num.End, "consumed bytes")
		})
	}
}

// TestParseNumberRejects tests inputs with no digits at all.
func TestParseNumberRejects(t *testing.T) {
	for _, input := range []string{"", ".", "e5", ".e5", "x", "+1"} {
		t.Run(input, func(t *testing.T) {
			_, ok := ParseNumber(input)
			require.False(t, ok)
		})
	}
}

// TestParseNumberExactInvariant verifies that when ManyDigits is unset the
// decomposition is exact: mantissa * 10^exponent reproduces the literal.
func TestParseNumberExactInvariant(t *testing.T) {
	num, ok := ParseNumber("123456.789")
	require.True(t, ok)
	require.False(t, num.ManyDigits)
	require.Equal(t, uint64(123456789), num.Mantissa)
	require.Equal(t, -3, num.Exponent)
}
