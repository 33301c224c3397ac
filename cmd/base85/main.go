package main

import (
	"fmt"
	"os"
	"path"

	"github.com/bokysan/base85/internal/args"
	"github.com/bokysan/base85/internal/commands/decode"
	"github.com/bokysan/base85/internal/commands/encode"
	"github.com/bokysan/base85/internal/commands/version"
	b85Flags "github.com/bokysan/base85/internal/flags"
	"github.com/bokysan/base85/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Base85 is the main executable
type Base85 struct {
	parser *flags.Parser
}

// NewBase85 will create a new instance of Base85 and initialize the parser
func NewBase85() *Base85 {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	b := &Base85{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	b.setupGeneral()
	b.setupVersion()
	b.setupEncode()
	b.setupDecode()

	return b
}

// setupGeneral will configure general options
func (b *Base85) setupGeneral() {
	if _, err := b.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (b *Base85) setupVersion() {
	cmd := &version.Command{}
	_, err := b.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (b *Base85) setupEncode() {
	cmd := encode.NewCommand()
	_, err := b.parser.AddCommand(
		"encode",
		"Encode binary data",
		"Encode files (or stdin) into RFC 1924 base85 text, or one of the other supported encodings",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (b *Base85) setupDecode() {
	cmd := decode.NewCommand()
	_, err := b.parser.AddCommand(
		"decode",
		"Decode text into binary data",
		"Decode files (or stdin) encoded with the encode command. Whitespace in the input is ignored.",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// main parses the command line, reads the configuration file and runs the selected command
func main() {

	b := NewBase85()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := b85Flags.NewYamlParser(b.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	_, err := b.parser.Parse()
	util.MustErrorNilOrExit(err)

}
