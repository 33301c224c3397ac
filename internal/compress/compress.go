package compress

import (
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

const (
	// None leaves the data as-is
	None = ""
	// S2 is the fast, snappy-compatible compression
	S2 = "s2"
	// Zstd gives better ratios at the cost of speed
	Zstd = "zstd"
)

var (
	zenc *zstd.Encoder
	zdec *zstd.Decoder
)

func init() {
	var err error
	if zenc, err = zstd.NewWriter(nil); err != nil {
		panic(errors.Wrap(err, "could not create zstd encoder"))
	}
	if zdec, err = zstd.NewReader(nil); err != nil {
		panic(errors.Wrap(err, "could not create zstd decoder"))
	}
}

// Compress compresses data with the given algorithm.
func Compress(data []byte, compression string) ([]byte, error) {
	switch compression {
	case None:
		return data, nil
	case S2:
		return s2.Encode(nil, data), nil
	case Zstd:
		return zenc.EncodeAll(data, nil), nil
	default:
		return nil, errors.Errorf("unsupported compression '%s'", compression)
	}
}

// Decompress reverses Compress. The compression must match the one used to compress the data.
func Decompress(data []byte, compression string) ([]byte, error) {
	var res []byte
	var err error

	switch compression {
	case None:
		return data, nil
	case S2:
		res, err = s2.Decode(nil, data)
	case Zstd:
		res, err = zdec.DecodeAll(data, nil)
	default:
		return nil, errors.Errorf("unsupported compression '%s'", compression)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "could not decompress %s data", compression)
	}
	return res, nil
}
