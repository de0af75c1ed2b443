package utils

import (
	"strings"
	"time"
)

// StripCardNumber removes spaces and dashes from a typed card number.
func StripCardNumber(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r == ' ' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// DigitsOnly reports whether s is non-empty and entirely ASCII digits.
// Non-ASCII digit runes are rejected; length checks elsewhere count bytes.
func DigitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Luhn runs the standard mod-10 checksum. Callers must have verified length
// and digits first; Luhn on a wrong-length number is meaningless.
func Luhn(number string) bool {
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if d < 0 || d > 9 {
			return false
		}
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// CardBrand guesses the scheme from the leading digits, for the redacted
// saved-card summary only.
func CardBrand(number string) string {
	switch {
	case strings.HasPrefix(number, "4"):
		return "visa"
	case len(number) >= 2 && number[0] == '5' && number[1] >= '1' && number[1] <= '5':
		return "mastercard"
	case strings.HasPrefix(number, "34") || strings.HasPrefix(number, "37"):
		return "amex"
	}
	return "unknown"
}

// NormalizeExpiryYear maps a 2-digit year onto 20xx.
func NormalizeExpiryYear(year int) int {
	if year >= 0 && year < 100 {
		return 2000 + year
	}
	return year
}

// ExpiryInPast reports whether month/year is strictly before now's month.
func ExpiryInPast(month, year int, now time.Time) bool {
	year = NormalizeExpiryYear(year)
	if year < now.Year() {
		return true
	}
	if year == now.Year() && month < int(now.Month()) {
		return true
	}
	return false
}
