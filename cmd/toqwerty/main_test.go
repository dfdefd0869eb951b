package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	layout "github.com/esrille/keyboard-layout-comparison"
)

func writeInput(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestMissingArgumentsPrintUsage(t *testing.T) {
	tests := [][]string{
		{},
		{filepath.Join("..", "..", "testdata", "jis.json")},
	}
	for _, args := range tests {
		var out strings.Builder
		require.NoError(t, run(args, &out), "%v", args)
		require.Contains(t, out.String(), "Usage:")
		require.Contains(t, out.String(), "toqwerty [--nfc]")
	}
}

func TestConvertFile(t *testing.T) {
	in := writeInput(t, "がっこ、ぱ\n")
	var out strings.Builder
	require.NoError(t, run([]string{filepath.Join("..", "..", "testdata", "jis.json"), in}, &out))
	require.Equal(t, "t[ ob gf [", out.String())
}

func TestExtraArgumentsAreIgnored(t *testing.T) {
	in := writeInput(t, "がっこう")
	var out strings.Builder
	require.NoError(t, run([]string{filepath.Join("..", "..", "testdata", "jis.json"), in, "extra", "more"}, &out))
	require.Equal(t, "t[ ob", out.String())
}

func TestNFCOption(t *testing.T) {
	in := writeInput(t, "が")
	jis := filepath.Join("..", "..", "testdata", "jis.json")

	var out strings.Builder
	require.NoError(t, run([]string{jis, in}, &out))
	require.Equal(t, "t", out.String())

	out.Reset()
	require.NoError(t, run([]string{"--nfc", jis, in}, &out))
	require.Equal(t, "t[", out.String())
}

func TestLoadErrors(t *testing.T) {
	in := writeInput(t, "か")
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"normal": "あ", "daku": "", "handaku": "", "kogaki": ""}`), 0o644))

	err := run([]string{bad, in}, &strings.Builder{})
	require.Error(t, err)
	require.True(t, errors.Is(err, layout.ErrInvalidLayout))

	err = run([]string{filepath.Join("..", "..", "testdata", "jis.json"), filepath.Join(t.TempDir(), "none.txt")}, &strings.Builder{})
	require.Error(t, err)
}
