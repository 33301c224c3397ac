package enc

import (
	"sync"

	"github.com/pkg/errors"
	"go.chromium.org/luci/common/data/base128"
)

const (

	/*
	 * Don't use '-' (restricted to middle of labels), prefer iso_8859-1
	 * accent chars since they might readily be entered in normal use,
	 * don't use 254-255 because of possible function overloading in DNS systems.
	 */
	cb128 = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" +
		"\274\275\276\277" +
		"\300\301\302\303\304\305\306\307\310\311\312\313\314\315\316\317" +
		"\320\321\322\323\324\325\326\327\330\331\332\333\334\335\336\337" +
		"\340\341\342\343\344\345\346\347\350\351\352\353\354\355\356\357" +
		"\360\361\362\363\364\365\366\367\370\371\372\373\374\375"
)

var cb128Invert map[byte]byte
var cbInitialized sync.Once

func setupCb128Invert() {
	cbInitialized.Do(func() {
		cb128Invert = make(map[byte]byte)
		for i, v := range []byte(cb128) {
			cb128Invert[v] = byte(i)
		}
	})
}

// escape128 maps the 7-bit output of base128 onto the cb128 character set
func escape128(src []byte) []byte {
	res := make([]byte, len(src))
	for i, v := range src {
		res[i] = cb128[v&0x7f]
	}
	return res
}

// unescape128 is the reverse of escape128. Characters outside of cb128 are reported as an error.
func unescape128(src []byte) ([]byte, error) {
	setupCb128Invert()
	res := make([]byte, len(src))
	for i, v := range src {
		b, ok := cb128Invert[v]
		if !ok {
			return nil, errors.Errorf("base128: invalid character 0x%02x at position %d", v, i)
		}
		res[i] = b
	}
	return res, nil
}

// -------------------------------------------------------

// Base128Encoder encodes 7 bytes to 8 characters. The output uses ISO-8859-1 accented letters and is
// therefore not plain ASCII.
type Base128Encoder struct {
}

func (b *Base128Encoder) Name() string {
	return "Base128"
}

func (b *Base128Encoder) String() string {
	return describe(b)
}

func (b *Base128Encoder) Code() byte {
	return 'V'
}

func (b *Base128Encoder) Encode(src []byte) string {
	return string(escape128([]byte(base128.EncodeToString(src))))
}

func (b *Base128Encoder) Decode(data string) ([]byte, error) {
	src, err := unescape128([]byte(StripWhitespace(data)))
	if err != nil {
		return nil, err
	}
	res, err := base128.DecodeString(string(src))
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base128Encoder) Wraps() bool {
	return true
}

func (b *Base128Encoder) Ratio() float64 {
	return 8.0 / 7.0
}

func (b *Base128Encoder) TestPatterns() []string {
	return []string{
		b.Encode([]byte("Aaahhh-Drink-mal-ein-J\344germeister-")),
		b.Encode([]byte("La-fl\373te-na\357ve-fran\347aise-est-retir\351-\340-Cr\350te")),
	}
}
