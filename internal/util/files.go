package util

import (
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// StdStream is the name used on the command line for stdin / stdout
const StdStream = "-"

// ReadInput reads the whole input named by the argument. An empty name or "-" reads from stdin.
func ReadInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "" || name == StdStream {
		data, err := io.ReadAll(stdin)
		return data, errors.Wrap(err, "could not read from stdin")
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer TryClose(f, name)

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", name)
	}
	log.Debugf("Read %d bytes from %s", len(data), name)
	return data, nil
}

// ReadInputs reads all named inputs and returns their concatenation. No names means stdin. Every
// input is tried and all failures are returned together.
func ReadInputs(names []string, stdin io.Reader) ([]byte, error) {
	if len(names) == 0 {
		names = []string{StdStream}
	}

	var res []byte
	var errs error
	for _, name := range names {
		data, err := ReadInput(name, stdin)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not read %v", name))
			continue
		}
		res = append(res, data...)
	}
	if errs != nil {
		return nil, errs
	}
	return res, nil
}

// CreateOutput creates (or truncates) the output file. An empty name or "-" returns stdout, which
// is not closed when the returned writer is closed.
func CreateOutput(name string, stdout io.Writer) (io.WriteCloser, error) {
	if name == "" || name == StdStream {
		return nopCloser{stdout}, nil
	}

	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return f, nil
}

// TryClose closes the closer and logs the error, if any.
func TryClose(c io.Closer, name string) {
	if err := c.Close(); err != nil {
		log.Errorf("Could not close %s: %v", name, err)
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
