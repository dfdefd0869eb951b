package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func expected(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", "keytime.txt"))
	require.NoError(t, err)
	return string(data)
}

func TestExtractDefaultPath(t *testing.T) {
	want := expected(t)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(filepath.Join("..", "..", "testdata")))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	var out strings.Builder
	require.NoError(t, run([]string{}, &out))
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractGivenPath(t *testing.T) {
	var out strings.Builder
	require.NoError(t, run([]string{filepath.Join("..", "..", "testdata", "keytime.html")}, &out))
	require.Equal(t, expected(t), out.String())
}

func TestExtractMissingFile(t *testing.T) {
	err := run([]string{filepath.Join(t.TempDir(), "keytime.html")}, &strings.Builder{})
	require.Error(t, err)
}
