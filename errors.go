package base85

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnexpectedEOF is returned by Decode when the input ends with a single
// character after the last complete group. One character does not carry enough
// information to recover even one byte.
var ErrUnexpectedEOF = errors.New("base85: unexpected end of input")

// InvalidCharacterError is returned by Decode when the input contains a byte which
// is neither an alphabet symbol nor whitespace. The value is the offending byte.
type InvalidCharacterError byte

func (e InvalidCharacterError) Error() string {
	return fmt.Sprintf("base85: unexpected character %q (0x%02x)", rune(e), byte(e))
}
