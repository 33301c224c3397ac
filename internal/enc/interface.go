package enc

// Encoder is a binary-to-text codec which can be selected on the command line.
type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse process of encoding
	Decode(string) ([]byte, error)

	// Wraps returns true if the encoded output may be split into lines. Decode ignores whitespace
	// for such encoders.
	Wraps() bool

	// Ratio returns the expected size of the encoded output relative to the input
	Ratio() float64

	// Return a list of test patterns for the specified encoding
	TestPatterns() []string
}
