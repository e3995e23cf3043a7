package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	data := map[string]string{"result": "success"}
	err := formatter.Success(data)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Error("LOAD_FAILED", "loading CUE files", nil)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "LOAD_FAILED", resp.Error.Code)
	assert.Equal(t, "loading CUE files", resp.Error.Message)
}

func TestOutputFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	err := formatter.Error("NOT_FOUND", "spec directory not found", nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Error [NOT_FOUND]: spec directory not found")
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	formatter := &OutputFormatter{
		Format:    "json",
		Writer:    out,
		ErrWriter: errOut,
		Verbose:   true,
	}

	formatter.VerboseLog("loaded %d file(s)", 3)

	// Verbose output goes to stderr, keeping stdout valid JSON.
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "loaded 3 file(s)")
}

func TestOutputFormatter_VerboseLogDisabled(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf, Verbose: false}

	formatter.VerboseLog("should not appear")
	assert.Empty(t, buf.String())
}

func TestExitError(t *testing.T) {
	err := NewExitError(ExitCommandError, "scenarios directory not found")
	assert.Equal(t, "scenarios directory not found", err.Error())
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	wrapped := WrapExitError(ExitFailure, "validation failed", errors.New("3 issues"))
	assert.Equal(t, "validation failed: 3 issues", wrapped.Error())
	assert.Equal(t, ExitFailure, GetExitCode(wrapped))
	assert.Equal(t, "3 issues", wrapped.Unwrap().Error())

	// Wrapping with fmt preserves the exit code via errors.As.
	outer := fmt.Errorf("context: %w", wrapped)
	assert.Equal(t, ExitFailure, GetExitCode(outer))

	// Unknown errors default to ExitFailure.
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
}
