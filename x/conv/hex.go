// Package conv holds allocation-free numeric formatting usable on MCU builds.
package conv

const hexDigits = "0123456789abcdef"

// U32Hex formats n as 8 lowercase hex digits into buf, which must hold at
// least 8 bytes, and returns the used slice.
func U32Hex(buf []byte, n uint32) []byte {
	if len(buf) < 8 {
		return buf[:0]
	}
	for i := 7; i >= 0; i-- {
		buf[i] = hexDigits[n&0xF]
		n >>= 4
	}
	return buf[:8]
}
