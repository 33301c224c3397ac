package enc

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// DefaultEncoder is the name of the encoder used when none is specified.
const DefaultEncoder = "base85"

var encoders = []Encoder{
	&Base85Encoder{},
	&Base91Encoder{},
	&Base128Encoder{},
	&Base64Encoder{},
	&Base64uEncoder{},
	&Base32Encoder{},
	&RawEncoder{},
}

// All returns the list of all known encoders, the default one first.
func All() []Encoder {
	res := make([]Encoder, len(encoders))
	copy(res, encoders)
	return res
}

// Find will look up an encoder either by its (case-insensitive) name or its one-letter code.
func Find(name string) (Encoder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultEncoder
	}
	for _, e := range encoders {
		if strings.EqualFold(e.Name(), name) {
			return e, nil
		}
	}
	if len(name) == 1 {
		for _, e := range encoders {
			if e.Code() == name[0] {
				return e, nil
			}
		}
	}
	return nil, errors.Errorf("unknown encoding '%s', valid encodings are: %s", name, strings.Join(Names(), ", "))
}

// Names returns the names of all known encoders.
func Names() []string {
	res := make([]string, 0, len(encoders))
	for _, e := range encoders {
		res = append(res, strings.ToLower(e.Name()))
	}
	return res
}

// StripWhitespace removes all ASCII whitespace (space, tab, CR and LF) from the encoded string.
func StripWhitespace(data string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, data)
}

func describe(e Encoder) string {
	return fmt.Sprintf("%v(%v)", e.Name(), string(e.Code()))
}
