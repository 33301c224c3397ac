package encode

import (
	"io"
	"os"
	"strings"

	"github.com/bokysan/base85/internal/compress"
	"github.com/bokysan/base85/internal/enc"
	"github.com/bokysan/base85/internal/logging"
	"github.com/bokysan/base85/internal/util"
	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command encodes binary input into text.
type Command struct {
	Encoding string `short:"e" long:"encoding" env:"ENCODING" description:"Encoding name or one-letter code: base85, base91, base128, base64, base64u, base32 or raw" default:"base85"`
	Wrap     uint   `short:"w" long:"wrap"     env:"WRAP"     description:"Wrap encoded output after this many characters. Zero disables wrapping." default:"0"`
	Compress string `short:"z" long:"compress" env:"COMPRESS" description:"Compress the data before encoding" choice:"s2" choice:"zstd"`
	Output   string `short:"o" long:"output"   env:"OUTPUT"   description:"Output file. If not set, defaults to stdout." default:"-"`

	Args struct {
		Files []string `positional-arg-name:"FILE" description:"Files to encode. Reads stdin if none given or if the name is '-'."`
	} `positional-args:"yes"`

	stdin  io.Reader
	stdout io.Writer
	create func(name string, stdout io.Writer) (io.WriteCloser, error)
}

func NewCommand() *Command {
	return &Command{
		Encoding: enc.DefaultEncoder,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		create:   util.CreateOutput,
	}
}

func (c *Command) String() string {
	return "Encode binary data"
}

// Encode compresses (if requested) and encodes a single input, wrapping the result into lines.
func (c *Command) Encode(encoder enc.Encoder, data []byte) (string, error) {
	data, err := compress.Compress(data, c.Compress)
	if err != nil {
		return "", err
	}

	encoded := encoder.Encode(data)
	if encoder.Wraps() {
		encoded = Wrap(encoded, int(c.Wrap))
	}
	return encoded, nil
}

// Execute reads all inputs and encodes their concatenation as one stream. Encoding each file on its own
// would leave partial groups in the middle of the output, which decode cannot tell apart from data.
func (c *Command) Execute(args []string) (errs error) {
	logging.SetupLogging()
	log.Tracef("Encode options: %s", spew.Sdump(c))

	encoder, err := enc.Find(c.Encoding)
	if err != nil {
		return err
	}
	log.Debugf("Using %v", encoder)

	data, err := util.ReadInputs(c.Args.Files, c.stdin)
	if err != nil {
		return err
	}

	encoded, err := c.Encode(encoder, data)
	if err != nil {
		return errors.Wrap(err, "Could not encode input")
	}
	log.Debugf("Encoded %d bytes into %d characters", len(data), len(encoded))

	if encoder.Wraps() && len(encoded) > 0 {
		encoded += "\n"
	}

	out, err := c.create(c.Output, c.stdout)
	if err != nil {
		return err
	}
	defer func() {
		if err := out.Close(); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not close %v", c.Output))
		}
	}()

	if _, err := io.WriteString(out, encoded); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// Wrap splits the encoded string into lines of at most width characters. A width of zero (or less)
// returns the input unchanged. The result has no trailing line feed.
func Wrap(encoded string, width int) string {
	if width <= 0 || len(encoded) <= width {
		return encoded
	}

	var sb strings.Builder
	sb.Grow(len(encoded) + len(encoded)/width)
	for len(encoded) > width {
		sb.WriteString(encoded[:width])
		sb.WriteByte('\n')
		encoded = encoded[width:]
	}
	sb.WriteString(encoded)
	return sb.String()
}
