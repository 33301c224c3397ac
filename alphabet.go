package base85

// Alphabet lists the 85 symbols of the RFC 1924 character set, in value order.
const Alphabet = "0123456789" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"!#$%&()*+-;<=>?@^_`{|}~"

const (
	// MaxValue is the largest value a single symbol can represent.
	MaxValue = 84

	invalidValue = 0xff
)

var encodeMap = func() (m [85]byte) {
	copy(m[:], Alphabet)
	return
}()

var decodeMap = func() (m [256]byte) {
	for i := range m {
		m[i] = invalidValue
	}
	for i, c := range []byte(Alphabet) {
		m[c] = byte(i)
	}
	return
}()

// Symbol returns the alphabet symbol for the value v. Values larger than MaxValue
// are a programming error and cause a panic.
func Symbol(v byte) byte {
	return encodeMap[v]
}

// Value returns the numeric value of the alphabet symbol c. Any byte outside of
// the alphabet yields an InvalidCharacterError.
func Value(c byte) (byte, error) {
	v := decodeMap[c]
	if v == invalidValue {
		return 0, InvalidCharacterError(c)
	}
	return v, nil
}

// isSpace reports whether c is one of the whitespace bytes skipped while decoding.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
