package enc

import (
	"github.com/bokysan/base85"
	"github.com/pkg/errors"
)

// -------------------------------------------------------

// Base85Encoder encodes 4 bytes to 5 characters using the RFC 1924 alphabet. Its output is safe to embed
// into source code, shell scripts and JSON strings without escaping.
type Base85Encoder struct {
}

func (b *Base85Encoder) Name() string {
	return "Base85"
}

func (b *Base85Encoder) String() string {
	return describe(b)
}

func (b *Base85Encoder) Code() byte {
	return 'W'
}

func (b *Base85Encoder) Encode(data []byte) string {
	return base85.Encode(data)
}

func (b *Base85Encoder) Decode(data string) ([]byte, error) {
	res, err := base85.Decode(data)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base85Encoder) Wraps() bool {
	return true
}

func (b *Base85Encoder) Ratio() float64 {
	return 5.0 / 4.0
}

func (b *Base85Encoder) TestPatterns() []string {
	return []string{
		base85.Alphabet,
		"VPRomVE",
	}
}
