package domain

import (
	"strconv"
	"strings"
	"unicode"
)

// Price is either the free marker ("Gratis") or a currency-prefixed
// integer amount such as "$45".
type Price string

const PriceFree Price = "Gratis"

var freeMarkers = []string{"gratis", "free"}

// Amount normalizes the price to a whole currency amount. The free marker
// yields 0. Otherwise leading currency symbols are dropped and the leading
// digits are parsed, so "$45.50" reads as 45. ok is false when no digits
// follow the currency symbol.
func (p Price) Amount() (amount int, ok bool) {
	s := strings.TrimSpace(string(p))
	for _, marker := range freeMarkers {
		if strings.EqualFold(s, marker) {
			return 0, true
		}
	}

	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.Is(unicode.Sc, r)
	})

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsFree reports whether the price normalizes to zero.
func (p Price) IsFree() bool {
	n, ok := p.Amount()
	return ok && n == 0
}
