package calculator

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	// MaxDisplayLen is the longest literal shown as typed. Longer literals switch to
	// exponential notation.
	MaxDisplayLen = 12

	expPrecision = 6
)

// clampLen applies the display length policy.
func clampLen(s string) string {
	if len(s) <= MaxDisplayLen {
		return s
	}
	return toExponential(parseDisplay(s), expPrecision)
}

// parseDisplay reads the display text as a number. Anything that is not a number,
// the error token included, parses to NaN. Out of range literals keep the ±Inf that
// strconv reports for them.
func parseDisplay(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return v
}

// exactDigits is enough precision for strconv to print any float64 exactly.
const exactDigits = 767

// toExponential renders v with prec fractional mantissa digits and an unpadded
// exponent, e.g. 1.234568e+12. Ties round away from zero on the exact decimal
// value of v, not to even.
func toExponential(v float64, prec int) string {
	if isFault(v) {
		return ErrorDisplay
	}
	if v == 0 {
		return trimExponent(strconv.FormatFloat(0, 'e', prec, 64))
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	exact := strconv.FormatFloat(v, 'e', exactDigits, 64)
	i := strings.IndexByte(exact, 'e')
	exp, err := strconv.Atoi(exact[i+1:])
	if err != nil {
		return ErrorDisplay
	}
	digits := exact[:1] + exact[2:i]

	mant := []byte(digits[:prec+1])
	if digits[prec+1] >= '5' {
		j := prec
		for ; j >= 0 && mant[j] == '9'; j-- {
			mant[j] = '0'
		}
		if j < 0 {
			mant[0] = '1'
			exp++
		} else {
			mant[j]++
		}
	}

	var b strings.Builder
	b.WriteString(sign)
	b.WriteByte(mant[0])
	if prec > 0 {
		b.WriteByte('.')
		b.Write(mant[1:])
	}
	b.WriteByte('e')
	if exp >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.Itoa(exp))
	return b.String()
}

// formatNumber renders a computed value in its shortest round-trip form. Decimal
// exponents below -6 or from 21 upwards use exponential notation.
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	e := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if err == nil && exp >= -6 && exp < 21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return trimExponent(e)
}

// trimExponent strips zero padding from the exponent strconv writes ("e+05" -> "e+5").
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 > len(s) {
		return s
	}
	digits := strings.TrimLeft(s[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return s[:i+2] + digits
}
