package version

import (
	"fmt"
	"io"
	"os"

	"github.com/bokysan/base85/internal/version"
	"github.com/k0kubun/go-ansi"
)

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	BackgroundBlue = "\x1b[44m"
)

// Command prints the build information and exits.
type Command struct {
	out io.Writer
}

func (i *Command) String() string {
	return "Version details"
}

//goland:noinspection GoUnhandledErrorResult
func (i *Command) Execute(args []string) error {
	i.Print()
	os.Exit(0)
	return nil
}

// Print writes the version banner followed by the details known at build time.
//
//goland:noinspection GoUnhandledErrorResult
func (i *Command) Print() {
	out := i.out
	if out == nil {
		out = ansi.NewAnsiStdout()
	}

	PrintVersion(out)
	fmt.Fprintf(out, DarkGray+" Author      "+White+"%+v"+Reset+"\n", "Bojan Cekrlic <github.com/bokysan>")
	if version.GitTag != "" {
		fmt.Fprintf(out, DarkGray+" Git tag     "+White+"%+v"+Reset+"\n", version.GitTag)
	}
	if version.GitBranch != "" {
		fmt.Fprintf(out, DarkGray+" Git branch  "+White+"%+v"+Reset+"\n", version.GitBranch)
	}
	if version.GitState != "" {
		fmt.Fprintf(out, DarkGray+" Git state   "+White+"%+v"+Reset+"\n", version.GitState)
	}
	if version.GoVersion != "" {
		fmt.Fprintf(out, DarkGray+" Go version  "+White+"%+v"+Reset+"\n", version.GoVersion)
	}
}

//goland:noinspection GoUnhandledErrorResult
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, Bold+BackgroundBlue+
		LightGray+" BASE85 - RFC 1924 encoder "+White+"%s"+LightGray+" "+Reset+"\n"+
		DarkGray+" Built on    "+White+"%+v\n"+
		DarkGray+" Git version "+White+"%+v"+Reset+"\n",
		version.AppVersion(), version.BuildDate, version.GitCommit)
}
