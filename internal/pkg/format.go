package pkg

import (
	"strconv"
	"strings"
)

// FormatAmount renders 1234567.5 as 1,234,567.50.
func FormatAmount(v float64, decimals int) string {
	negative := v < 0
	if negative {
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', decimals, 64)
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String()
	if hasFrac {
		out += "." + fracPart
	}
	if negative {
		out = "-" + out
	}
	return out
}
