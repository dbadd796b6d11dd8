package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Cents is a money amount in whole cents. All arithmetic on Cents is exact
// integer arithmetic; rounding happens only in MulRate.
type Cents int64

var ErrInvalidAmount = errors.New("invalid money amount")

// ParseCents parses a decimal string like "2.60" or "17.95" into cents.
// At most two fractional digits are accepted.
func ParseCents(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidAmount)
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	whole := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole = s[:i]
		frac = s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("%w: more than two fractional digits in %q", ErrInvalidAmount, s)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	c := Cents(w*100 + f)
	if neg {
		c = -c
	}
	return c, nil
}

// MustParse is ParseCents for literals in seed data and tests.
func MustParse(s string) Cents {
	c, err := ParseCents(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String formats the amount as a plain decimal with two fractional digits,
// e.g. 710 -> "7.10". No currency symbol.
func (c Cents) String() string {
	n := int64(c)
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return fmt.Sprintf("%s%d.%02d", sign, n/100, n%100)
}

// Mul multiplies the amount by an integer quantity.
func (c Cents) Mul(qty int) Cents {
	return c * Cents(qty)
}

// MulRate applies a rate expressed in basis points (875 = 8.75%) and rounds
// half up to whole cents. This is the only place rounding occurs.
func (c Cents) MulRate(bps int64) Cents {
	n := int64(c) * bps
	if n >= 0 {
		return Cents((n + 5000) / 10000)
	}
	return Cents(-((-n + 5000) / 10000))
}

// MarshalJSON emits the amount as a quoted decimal string, matching the
// order API's decimal-as-string wire format.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.String())), nil
}

func (c *Cents) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	parsed, err := ParseCents(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
