package protocol

import "math"

// appendUint appends the decimal form of n without using strconv or fmt,
// which keeps the firmware image small.
func appendUint(dst []byte, n uint32) []byte {
	if n == 0 {
		return append(dst, '0')
	}

	var buf [10]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}

	return append(dst, buf[pos:]...)
}

// appendInt appends the decimal form of a signed integer
func appendInt(dst []byte, n int32) []byte {
	if n < 0 {
		dst = append(dst, '-')
		// Negate in 64 bits so math.MinInt32 does not overflow
		return appendUint(dst, uint32(-int64(n)))
	}
	return appendUint(dst, uint32(n))
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// parseStrictUint parses b as an unsigned decimal number. Every byte must be
// a digit. Values beyond uint32 saturate at math.MaxUint32.
func parseStrictUint(b []byte) (uint32, bool) {
	if len(b) == 0 {
		return 0, false
	}

	var v uint64
	for _, c := range b {
		if !isDigit(c) {
			return 0, false
		}
		if v <= math.MaxUint32 {
			v = v*10 + uint64(c-'0')
		}
	}

	if v > math.MaxUint32 {
		v = math.MaxUint32
	}
	return uint32(v), true
}

// parseLeadingUint parses the leading digits of b and ignores the rest.
// No digits at all yields 0.
func parseLeadingUint(b []byte) uint32 {
	end := 0
	for end < len(b) && isDigit(b[end]) {
		end++
	}
	v, _ := parseStrictUint(b[:end])
	return v
}
