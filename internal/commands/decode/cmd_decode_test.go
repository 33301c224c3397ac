package decode

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

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

func Test_DecodeStdin(t *testing.T) {
	cmd, out := newTestCommand("VPRom\nVE\n")
	require.NoError(t, cmd.Execute(nil))
	require.Equal(t, "aaaaa", out.String())
}

func Test_DecodeInvalidCharacter(t *testing.T) {
	cmd, out := newTestCommand("VE,")
	err := cmd.Execute(nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected character ','")
	require.Equal(t, 0, out.Len(), "No partial output expected")
}

func Test_DecodeUnexpectedEOF(t *testing.T) {
	cmd, out := newTestCommand("VPRom V\n")
	err := cmd.Execute(nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected end of input")
	require.Equal(t, 0, out.Len())
}

func Test_DecodeDecompress(t *testing.T) {
	input := bytes.Repeat([]byte("aaaaa"), 100)
	for _, compression := range []string{compress.S2, compress.Zstd} {
		compressed, err := compress.Compress(input, compression)
		require.NoError(t, err)

		cmd, out := newTestCommand((&enc.Base85Encoder{}).Encode(compressed))
		cmd.Decompress = compression
		require.NoError(t, cmd.Execute(nil))
		require.Equal(t, input, out.Bytes())
	}
}

func Test_DecodeOtherEncoding(t *testing.T) {
	encoder := &enc.Base91Encoder{}
	cmd, out := newTestCommand(encoder.Encode([]byte("aaaaa")) + "\n")
	cmd.Encoding = "X"
	require.NoError(t, cmd.Execute(nil))
	require.Equal(t, "aaaaa", out.String())
}

func Test_DecodeFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	output := filepath.Join(dir, "output.bin")
	require.NoError(t, os.WriteFile(first, []byte("VPRo\n"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("mVE\n"), 0644))

	cmd, _ := newTestCommand("")
	cmd.Output = output
	cmd.Args.Files = []string{first, second}
	require.NoError(t, cmd.Execute(nil))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "aaaaa", string(data))
}

func Test_DecodeMissingFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte("VPRom\n"), 0644))

	cmd, out := newTestCommand("")
	cmd.Args.Files = []string{good, filepath.Join(dir, "missing.txt")}

	err := cmd.Execute(nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing.txt")
	require.NotContains(t, err.Error(), "good.txt")
	require.Equal(t, 0, out.Len())
}

type failingCloser struct {
	bytes.Buffer
}

func (f *failingCloser) Close() error {
	return errors.New("disk full")
}

func Test_DecodeOutputCloseError(t *testing.T) {
	cmd, _ := newTestCommand("VPRomVE")
	out := &failingCloser{}
	cmd.create = func(string, io.Writer) (io.WriteCloser, error) {
		return out, nil
	}

	err := cmd.Execute(nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")
	require.Equal(t, "aaaaa", out.String())
}
