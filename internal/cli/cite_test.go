package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCite runs the cite command with the given args and returns stdout.
func executeCite(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"cite"}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func TestCiteMediumCitation(t *testing.T) {
	out, err := executeCite(t,
		"--speed", "50", "--limit", "35", "--location", "Main St",
		"--name", "Ray", "--birth-date", "1990-06-01",
		"--date", "2024-03-15", "--issuer", "Officer Lila")
	require.NoError(t, err)

	assert.Equal(t, "Officer Lila issued Medium citation to Ray on 2024-03-15.\n", out)
}

func TestCiteBirthdayAllowance(t *testing.T) {
	out, err := executeCite(t,
		"--speed", "50", "--limit", "35",
		"--name", "Ray", "--birth-date", "1990-03-15",
		"--date", "2024-03-15", "--issuer", "Officer Lila")
	require.NoError(t, err)

	assert.Contains(t, out, "Small citation")
}

func TestCiteNoViolation(t *testing.T) {
	out, err := executeCite(t,
		"--speed", "65", "--limit", "65",
		"--name", "Ray", "--birth-date", "1990-06-01",
		"--date", "2024-03-15")
	require.NoError(t, err)

	assert.Equal(t, "No citations issued.\n", out)
}

func TestCiteJSONOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "json", "cite",
		"--speed", "61", "--limit", "35",
		"--name", "Ray", "--birth-date", "1990-06-01",
		"--date", "2024-03-15"})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	payload, err := json.Marshal(resp.Data)
	require.NoError(t, err)

	var result CiteResult
	require.NoError(t, json.Unmarshal(payload, &result))
	assert.Equal(t, 1, result.Count)
	require.Len(t, result.Citations, 1)
	assert.Equal(t, "Large", result.Citations[0].Severity.String())
}

func TestCiteWithSpecsOverride(t *testing.T) {
	// The invalid spec directory fails fast as a command error.
	_, err := executeCite(t,
		"--speed", "50", "--limit", "35",
		"--name", "Ray", "--birth-date", "1990-06-01",
		"--date", "2024-03-15",
		"--specs", filepath.Join("testdata", "specs", "invalid"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	// The valid spec directory carries the default parameters.
	out, err := executeCite(t,
		"--speed", "50", "--limit", "35",
		"--name", "Ray", "--birth-date", "1990-06-01",
		"--date", "2024-03-15",
		"--specs", filepath.Join("testdata", "specs", "valid"))
	require.NoError(t, err)
	assert.Contains(t, out, "Medium citation")
}

func TestCiteRejectsBadDates(t *testing.T) {
	_, err := executeCite(t,
		"--speed", "50", "--limit", "35",
		"--name", "Ray", "--birth-date", "not-a-date")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = executeCite(t,
		"--speed", "50", "--limit", "35",
		"--name", "Ray", "--birth-date", "1990-06-01",
		"--date", "someday")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCiteRequiresFlags(t *testing.T) {
	_, err := executeCite(t, "--speed", "50")
	assert.Error(t, err)
}
