package validate

import (
	"errors"
	"strconv"
	"strings"
)

var ErrMalformedAmount = errors.New("malformed amount")

// ParseAmount turns free-form user input like "₱1,500.00" into whole currency
// units. Decimal fractions are truncated; anything that is not a positive
// number after stripping currency symbols and thousands separators is
// rejected.
func ParseAmount(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "₱")
	s = strings.TrimPrefix(s, "$")
	if up := strings.ToUpper(s); strings.HasPrefix(up, "PHP") {
		s = s[len("PHP"):]
	}
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")

	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		frac := s[dot+1:]
		for _, r := range frac {
			if r < '0' || r > '9' {
				return 0, ErrMalformedAmount
			}
		}
		s = s[:dot]
	}

	if s == "" {
		return 0, ErrMalformedAmount
	}
	amount, err := strconv.ParseInt(s, 10, 64)
	if err != nil || amount <= 0 {
		return 0, ErrMalformedAmount
	}
	return amount, nil
}
