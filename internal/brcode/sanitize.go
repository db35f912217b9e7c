package brcode

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	MaxMerchantName = 25
	MaxMerchantCity = 15

	DefaultMerchantName = "PROFISSIONAL"
	DefaultMerchantCity = "SAO PAULO"
)

func Sanitize(s string, maxLength int) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn))), s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(unicode.ToUpper(r))
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		}
	}

	out := b.String()
	if maxLength >= 0 && len(out) > maxLength {
		out = out[:maxLength]
	}
	return out
}

type Merchant struct {
	Name string
	City string
}

// SanitizeMerchant falls back when a sanitized value is empty or only spaces.
func SanitizeMerchant(name, city, fallbackName, fallbackCity string) Merchant {
	return Merchant{
		Name: firstNonBlank(MaxMerchantName, name, fallbackName, DefaultMerchantName),
		City: firstNonBlank(MaxMerchantCity, city, fallbackCity, DefaultMerchantCity),
	}
}

func firstNonBlank(maxLength int, candidates ...string) string {
	for _, c := range candidates {
		if s := Sanitize(c, maxLength); strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}
