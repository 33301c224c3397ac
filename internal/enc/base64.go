package enc

import (
	"encoding/base64"

	"github.com/pkg/errors"
)

const (
	cb64  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ-0123456789+"
	cb64u = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ-0123456789_"
)

var iodineBase64Encoding = base64.NewEncoding(cb64).WithPadding(base64.NoPadding)
var iodineBase64uEncoding = base64.NewEncoding(cb64u).WithPadding(base64.NoPadding)

func decode64(encoding *base64.Encoding, data string) ([]byte, error) {
	res, err := encoding.DecodeString(StripWhitespace(data))
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

// -------------------------------------------------------

// Base64Encoder encodes 3 bytes to 4 characters
type Base64Encoder struct {
}

func (b *Base64Encoder) Name() string {
	return "Base64"
}

func (b *Base64Encoder) String() string {
	return describe(b)
}

func (b *Base64Encoder) Code() byte {
	return 'S'
}

func (b *Base64Encoder) Encode(data []byte) string {
	return iodineBase64Encoding.EncodeToString(data)
}

func (b *Base64Encoder) Decode(data string) ([]byte, error) {
	return decode64(iodineBase64Encoding, data)
}

func (b *Base64Encoder) Wraps() bool {
	return true
}

func (b *Base64Encoder) Ratio() float64 {
	return 4.0 / 3.0
}

func (b *Base64Encoder) TestPatterns() []string {
	return []string{
		"aAbBcCdDeEfFgGhHiIjJkKlLmMnNoOpPqQrRsStTuUvVwWxXyYzZ+0129-",
	}
}

// -------------------------------------------------------

// Base64uEncoder encodes 3 bytes to 4 characters and uses an alternative character map.
type Base64uEncoder struct {
}

func (b *Base64uEncoder) Name() string {
	return "Base64u"
}

func (b *Base64uEncoder) String() string {
	return describe(b)
}

func (b *Base64uEncoder) Code() byte {
	return 'U'
}

func (b *Base64uEncoder) Encode(data []byte) string {
	return iodineBase64uEncoding.EncodeToString(data)
}

func (b *Base64uEncoder) Decode(data string) ([]byte, error) {
	return decode64(iodineBase64uEncoding, data)
}

func (b *Base64uEncoder) Wraps() bool {
	return true
}

func (b *Base64uEncoder) Ratio() float64 {
	return 4.0 / 3.0
}

func (b *Base64uEncoder) TestPatterns() []string {
	return []string{
		"aAbBcCdDeEfFgGhHiIjJkKlLmMnNoOpPqQrRsStTuUvVwWxXyYzZ_0129-",
	}
}
