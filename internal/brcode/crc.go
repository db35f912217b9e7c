package brcode

import (
	"fmt"
	"unicode/utf16"
)

const (
	crcInit = 0xFFFF
	crcPoly = 0x1021
)

func CRC16(payload string) string {
	reg := uint32(crcInit)
	for _, c := range utf16.Encode([]rune(payload)) {
		reg ^= uint32(c) << 8
		for i := 0; i < 8; i++ {
			if reg&0x8000 != 0 {
				reg = (reg << 1) ^ crcPoly
			} else {
				reg <<= 1
			}
			reg &= 0xFFFF
		}
	}
	return fmt.Sprintf("%04X", reg&0xFFFF)
}
