package base85

// DecodedLen returns the maximum length in bytes of the decoded data for n
// characters of input. When the input contains no whitespace this is exact.
func DecodedLen(n int) int {
	size := n / 5 * 4
	if rem := n % 5; rem > 1 {
		size += rem - 1
	}
	return size
}

// Decode returns the bytes represented by the base85 string s.
//
// Whitespace is skipped. A byte outside of the alphabet yields an
// InvalidCharacterError and a lone trailing character yields ErrUnexpectedEOF. The
// input is scanned left to right and the first error wins; no partial output is
// returned.
func Decode(s string) ([]byte, error) {
	return DecodeBytes([]byte(s))
}

// DecodeBytes is like Decode, but takes the encoded data as a byte slice.
func DecodeBytes(src []byte) ([]byte, error) {
	dst := make([]byte, 0, DecodedLen(len(src)))

	var group [5]byte
	n := 0
	for _, c := range src {
		if isSpace(c) {
			continue
		}
		v, err := Value(c)
		if err != nil {
			return nil, err
		}
		group[n] = v
		n++
		if n == 5 {
			dst = appendGroup(dst, &group, 4)
			n = 0
		}
	}

	switch n {
	case 0:
	case 1:
		return nil, ErrUnexpectedEOF
	default:
		// Missing digits are assumed to be the highest value, which rounds the
		// truncated zero padding of the encoder back up to the original bytes.
		for i := n; i < 5; i++ {
			group[i] = MaxValue
		}
		dst = appendGroup(dst, &group, n-1)
	}

	return dst, nil
}

// appendGroup appends the first count bytes of the big-endian 32 bit value of group.
// Values above 2^32-1 cannot be produced by the encoder and wrap around.
func appendGroup(dst []byte, group *[5]byte, count int) []byte {
	v := uint32(group[0])*place4 +
		uint32(group[1])*place3 +
		uint32(group[2])*place2 +
		uint32(group[3])*place1 +
		uint32(group[4])

	b := [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	return append(dst, b[:count]...)
}
