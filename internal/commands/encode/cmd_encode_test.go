package encode

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bokysan/base85"
	"github.com/bokysan/base85/internal/compress"
	"github.com/bokysan/base85/internal/enc"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newTestCommand(input string) (*Command, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := NewCommand()
	cmd.stdin = strings.NewReader(input)
	cmd.stdout = out
	return cmd, out
}

func Test_EncodeStdin(t *testing.T) {
	cmd, out := newTestCommand("aaaaa")
	require.NoError(t, cmd.Execute(nil))
	require.Equal(t, "VPRomVE\n", out.String())
}

func Test_EncodeEmpty(t *testing.T) {
	cmd, out := newTestCommand("")
	require.NoError(t, cmd.Execute(nil))
	require.Equal(t, "", out.String())
}

func Test_EncodeWrapped(t *testing.T) {
	cmd, out := newTestCommand("aaaaaaaaaa")
	cmd.Wrap = 5
	require.NoError(t, cmd.Execute(nil))
	require.Equal(t, "VPRom\nVPRom\nVPO\n", out.String())

	decoded, err := base85.Decode(out.String())
	require.NoError(t, err)
	require.Equal(t, []byte("aaaaaaaaaa"), decoded)
}

func Test_EncodeRawIsNotWrapped(t *testing.T) {
	cmd, out := newTestCommand("aaaaaaaaaa")
	cmd.Encoding = "raw"
	cmd.Wrap = 2
	require.NoError(t, cmd.Execute(nil))
	require.Equal(t, "aaaaaaaaaa", out.String())
}

func Test_EncodeCompressed(t *testing.T) {
	input := strings.Repeat("aaaaa", 100)
	cmd, out := newTestCommand(input)
	cmd.Compress = "s2"
	require.NoError(t, cmd.Execute(nil))
	require.Less(t, out.Len(), base85.EncodedLen(len(input)))
}

func Test_EncodeUnknownEncoding(t *testing.T) {
	cmd, _ := newTestCommand("aaaaa")
	cmd.Encoding = "ascii85"
	require.Error(t, cmd.Execute(nil))
}

func Test_EncodeFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.bin")
	second := filepath.Join(dir, "second.bin")
	output := filepath.Join(dir, "output.txt")
	require.NoError(t, os.WriteFile(first, []byte("a"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("aaaa"), 0644))

	cmd, _ := newTestCommand("")
	cmd.Output = output
	cmd.Args.Files = []string{first, second}
	require.NoError(t, cmd.Execute(nil))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "VPRomVE\n", string(data))

	decoded, err := base85.Decode(string(data))
	require.NoError(t, err)
	require.Equal(t, []byte("aaaaa"), decoded)
}

func Test_EncodeFilesCompressedOnce(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.bin")
	second := filepath.Join(dir, "second.bin")
	require.NoError(t, os.WriteFile(first, []byte(strings.Repeat("a", 333)), 0644))
	require.NoError(t, os.WriteFile(second, []byte(strings.Repeat("b", 333)), 0644))

	cmd, out := newTestCommand("")
	cmd.Compress = compress.Zstd
	cmd.Args.Files = []string{first, second}
	require.NoError(t, cmd.Execute(nil))

	decoded, err := base85.Decode(out.String())
	require.NoError(t, err)
	decompressed, err := compress.Decompress(decoded, compress.Zstd)
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("a", 333)+strings.Repeat("b", 333), string(decompressed))
}

func Test_EncodeMissingFile(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.bin")
	output := filepath.Join(dir, "output.txt")
	require.NoError(t, os.WriteFile(first, []byte("a"), 0644))

	cmd, _ := newTestCommand("")
	cmd.Output = output
	cmd.Args.Files = []string{first, filepath.Join(dir, "missing.bin")}

	err := cmd.Execute(nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing.bin")

	_, err = os.Stat(output)
	require.True(t, os.IsNotExist(err), "No output expected when an input cannot be read")
}

type failingCloser struct {
	bytes.Buffer
}

func (f *failingCloser) Close() error {
	return errors.New("disk full")
}

func Test_EncodeOutputCloseError(t *testing.T) {
	cmd, _ := newTestCommand("aaaaa")
	out := &failingCloser{}
	cmd.create = func(string, io.Writer) (io.WriteCloser, error) {
		return out, nil
	}

	err := cmd.Execute(nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")
	require.Equal(t, "VPRomVE\n", out.String())
}

func Test_EncodeAllEncoders(t *testing.T) {
	input := []byte("\000\377\125\252Hello, world!")
	for _, encoder := range enc.All() {
		cmd, _ := newTestCommand("")
		cmd.Wrap = 4
		encoded, err := cmd.Encode(encoder, input)
		require.NoError(t, err)

		decoded, err := encoder.Decode(encoded)
		require.NoErrorf(t, err, "%v could not decode wrapped output", encoder)
		require.Equal(t, input, decoded)
	}
}

func Test_Wrap(t *testing.T) {
	require.Equal(t, "VPRomVE", Wrap("VPRomVE", 0))
	require.Equal(t, "VPRomVE", Wrap("VPRomVE", 7))
	require.Equal(t, "VPRom\nVE", Wrap("VPRomVE", 5))
	require.Equal(t, "VP\nRo\nmV\nE", Wrap("VPRomVE", 2))
	require.Equal(t, "", Wrap("", 3))
}
