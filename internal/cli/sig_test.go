package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixturePath() string {
	return filepath.Join("testdata", "types.yaml")
}

func TestSigDeclaredType(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewSigCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{fixturePath(), "Sample.StringIterable"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "pinterface({faa585ea-6214-4217-afda-7f46de5869b3};string)\n", buf.String())
}

func TestSigBuiltin(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewSigCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{fixturePath(), "int32"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "i4\n", buf.String())
}

func TestSigJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewSigCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{fixturePath(), "Sample.Point"})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Sample.Point", data["name"])
	assert.Equal(t, "struct(Sample.Point;i4;i4)", data["signature"])
}

func TestSigUnknownType(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewSigCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{fixturePath(), "Sample.Nope"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), ErrCodeUnknownType)
}

func TestSigMissingFile(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewSigCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{filepath.Join("testdata", "nope.yaml"), "int32"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), ErrCodeLoadFailed)
}
