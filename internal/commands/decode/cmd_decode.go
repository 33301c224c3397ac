package decode

import (
	"io"
	"os"

	"github.com/bokysan/base85/internal/compress"
	"github.com/bokysan/base85/internal/enc"
	"github.com/bokysan/base85/internal/logging"
	"github.com/bokysan/base85/internal/util"
	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command decodes text back into the original binary data.
type Command struct {
	Encoding   string `short:"e" long:"encoding"   env:"ENCODING"   description:"Encoding name or one-letter code: base85, base91, base128, base64, base64u, base32 or raw" default:"base85"`
	Decompress string `short:"z" long:"decompress" env:"DECOMPRESS" description:"Decompress the data after decoding" choice:"s2" choice:"zstd"`
	Output     string `short:"o" long:"output"     env:"OUTPUT"     description:"Output file. If not set, defaults to stdout." default:"-"`

	Args struct {
		Files []string `positional-arg-name:"FILE" description:"Files to decode. Reads stdin if none given or if the name is '-'."`
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
	return "Decode text into binary data"
}

// Decode decodes a single input and decompresses it, if requested. Nothing is returned on error.
func (c *Command) Decode(encoder enc.Encoder, data string) ([]byte, error) {
	decoded, err := encoder.Decode(data)
	if err != nil {
		return nil, err
	}
	return compress.Decompress(decoded, c.Decompress)
}

// Execute reads all inputs and decodes their concatenation, so output of encode split over several files
// decodes back in one piece.
func (c *Command) Execute(args []string) (errs error) {
	logging.SetupLogging()
	log.Tracef("Decode options: %s", spew.Sdump(c))

	encoder, err := enc.Find(c.Encoding)
	if err != nil {
		return err
	}
	log.Debugf("Using %v", encoder)

	data, err := util.ReadInputs(c.Args.Files, c.stdin)
	if err != nil {
		return err
	}

	decoded, err := c.Decode(encoder, string(data))
	if err != nil {
		return errors.Wrap(err, "Could not decode input")
	}
	log.Debugf("Decoded %d characters into %d bytes", len(data), len(decoded))

	out, err := c.create(c.Output, c.stdout)
	if err != nil {
		return err
	}
	defer func() {
		if err := out.Close(); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not close %v", c.Output))
		}
	}()

	if _, err := out.Write(decoded); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
