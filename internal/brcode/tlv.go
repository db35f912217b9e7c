package brcode

import (
	"fmt"
	"unicode/utf16"
)

const maxFieldLength = 99

// EncodeField counts length in UTF-16 code units.
func EncodeField(tag, value string) (string, error) {
	n := CharCount(value)
	if n > maxFieldLength {
		return "", fmt.Errorf("%w: tag %s has %d", ErrFieldTooLong, tag, n)
	}
	return fmt.Sprintf("%s%02d%s", tag, n, value), nil
}

func CharCount(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return len(utf16.Encode([]rune(s)))
		}
	}
	return len(s)
}
