package base85

import "encoding/binary"

// Place values of the five digits of a group, most significant first.
const (
	place4 = 85 * 85 * 85 * 85
	place3 = 85 * 85 * 85
	place2 = 85 * 85
	place1 = 85
)

// partialEncodedLen maps the length of a trailing partial group to the number of
// characters written for it.
var partialEncodedLen = [4]int{0, 2, 3, 4}

// EncodedLen returns the length in characters of the encoding of n bytes.
func EncodedLen(n int) int {
	return n/4*5 + partialEncodedLen[n%4]
}

// Encode returns the base85 encoding of src.
func Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}
	dst := make([]byte, EncodedLen(len(src)))
	EncodeTo(dst, src)
	return string(dst)
}

// EncodeTo encodes src into dst and returns the number of bytes written, which is
// always EncodedLen(len(src)). dst must be at least that long.
func EncodeTo(dst, src []byte) int {
	n := 0
	for len(src) >= 4 {
		encodeGroup(dst[n:n+5], binary.BigEndian.Uint32(src))
		src = src[4:]
		n += 5
	}

	if len(src) == 0 {
		return n
	}

	// Right-pad with zero bytes. The digits covering only the padding are dropped.
	var v uint32
	switch len(src) {
	case 3:
		v |= uint32(src[2]) << 8
		fallthrough
	case 2:
		v |= uint32(src[1]) << 16
		fallthrough
	case 1:
		v |= uint32(src[0]) << 24
	}

	var group [5]byte
	encodeGroup(group[:], v)
	return n + copy(dst[n:], group[:len(src)+1])
}

// encodeGroup writes the five digits of v into dst, most significant first.
func encodeGroup(dst []byte, v uint32) {
	_ = dst[4]
	dst[0] = encodeMap[v/place4]
	v %= place4
	dst[1] = encodeMap[v/place3]
	v %= place3
	dst[2] = encodeMap[v/place2]
	v %= place2
	dst[3] = encodeMap[v/place1]
	dst[4] = encodeMap[v%place1]
}
