package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.expect.digital/recency/internal/config"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRun_Stdin(t *testing.T) {
	stdout, stderr, err := execute(t, "put a 1\nput b 2\nput c 3\nget a\nput d 4\nget b\n", "--log-format=json")
	require.NoError(t, err)

	assert.Equal(t, "get a -> 1\nget b -> miss\nlen=3 evictions=1 hits=1 misses=1 deleted=0 absent=0\n", stdout)
	assert.Contains(t, stderr, `"key":"b"`)
	assert.Contains(t, stderr, `"message":"evicted"`)
}

func TestRun_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.txt")
	require.NoError(t, os.WriteFile(path, []byte("put a 1\nput b 2\nget a\n"), 0o600))

	stdout, _, err := execute(t, "", "--capacity=1", "--log-level=warn", path)
	require.NoError(t, err)

	assert.Equal(t, "get a -> miss\nlen=1 evictions=1 hits=0 misses=1 deleted=0 absent=0\n", stdout)
}

func TestRun_Errors(t *testing.T) {
	_, _, err := execute(t, "", "--capacity=0")
	assert.ErrorIs(t, err, config.ErrInvalidCapacity)

	_, _, err = execute(t, "put a\n")
	assert.ErrorContains(t, err, "parse script: line 1")

	_, _, err = execute(t, "", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, "open script")
}
