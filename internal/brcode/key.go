package brcode

import (
	"regexp"
	"strings"
)

type KeyKind int

const (
	KeyOther KeyKind = iota
	KeyEmail
	KeyRandom
	KeyPhone
	KeyCPF
	KeyCNPJ
)

func (k KeyKind) String() string {
	switch k {
	case KeyEmail:
		return "EMAIL"
	case KeyRandom:
		return "RANDOM"
	case KeyPhone:
		return "PHONE"
	case KeyCPF:
		return "CPF"
	case KeyCNPJ:
		return "CNPJ"
	default:
		return "OTHER"
	}
}

type PixKey struct {
	Raw   string
	Kind  KeyKind
	Value string
}

var randomKeyPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// ClassifyKey never fails. An 11-digit string that fails the CPF check is a phone.
func ClassifyKey(raw string) PixKey {
	key := strings.TrimSpace(raw)
	pk := PixKey{Raw: raw}

	switch {
	case strings.Contains(key, "@"):
		pk.Kind, pk.Value = KeyEmail, key
		return pk
	case randomKeyPattern.MatchString(key):
		pk.Kind, pk.Value = KeyRandom, key
		return pk
	}

	plus := strings.HasPrefix(key, "+")
	digits := onlyDigits(key)

	switch len(digits) {
	case 0:
		pk.Kind, pk.Value = KeyOther, key
	case 11:
		if ValidCPF(digits) {
			pk.Kind, pk.Value = KeyCPF, digits
		} else {
			pk.Kind, pk.Value = KeyPhone, phoneValue(digits, plus)
		}
	case 10:
		pk.Kind, pk.Value = KeyPhone, phoneValue(digits, plus)
	case 14:
		pk.Kind, pk.Value = KeyCNPJ, keepPlus(digits, plus)
	default:
		pk.Kind, pk.Value = KeyOther, keepPlus(digits, plus)
	}
	return pk
}

func ValidCPF(digits string) bool {
	if len(digits) != 11 || onlyDigits(digits) != digits {
		return false
	}
	return cpfCheckDigit(digits[:9]) == digits[9] && cpfCheckDigit(digits[:10]) == digits[10]
}

func cpfCheckDigit(prefix string) byte {
	sum := 0
	weight := len(prefix) + 1
	for i := 0; i < len(prefix); i++ {
		sum += int(prefix[i]-'0') * weight
		weight--
	}
	return '0' + byte(sum*10%11%10)
}

func phoneValue(digits string, plus bool) string {
	if plus {
		return "+" + digits
	}
	return "+55" + digits
}

func keepPlus(digits string, plus bool) string {
	if plus {
		return "+" + digits
	}
	return digits
}

func onlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
