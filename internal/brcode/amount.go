package brcode

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount returns ok == false and a nil error for a blank string.
func ParseAmount(s string) (amount decimal.Decimal, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return decimal.Zero, false, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, s)
	}
	if n := len(FormatAmount(d)); n > maxFieldLength {
		return decimal.Zero, false, fmt.Errorf("%w: %d digits, max %d", ErrInvalidAmount, n, maxFieldLength)
	}
	return d, true, nil
}

func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
