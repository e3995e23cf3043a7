package lawspec

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gavel/internal/law"
)

func TestLoadDirValid(t *testing.T) {
	result, errs := LoadDir(filepath.Join("testdata", "valid"), LoadModeFailFast)
	require.Empty(t, errs)
	require.NotNil(t, result)

	assert.Equal(t, 1, result.FileCount)
	require.NotNil(t, result.Speeding)
	assert.Equal(t, law.DefaultSpeedingParams(), *result.Speeding)
}

func TestLoadDirStrictJurisdiction(t *testing.T) {
	result, errs := LoadDir(filepath.Join("testdata", "strict"), LoadModeFailFast)
	require.Empty(t, errs)
	require.NotNil(t, result.Speeding)

	assert.Equal(t, 0, result.Speeding.Allowance)
	assert.Equal(t, 5, result.Speeding.Medium)
	assert.Equal(t, 15, result.Speeding.Large)
}

func TestLoadDirInvalidThresholds(t *testing.T) {
	_, errs := LoadDir(filepath.Join("testdata", "invalid"), LoadModeFailFast)
	require.NotEmpty(t, errs)

	var specErr *SpecError
	require.ErrorAs(t, errs[0], &specErr)
	assert.Equal(t, ErrCodeCompileFailed, specErr.Code)
}

func TestLoadDirUnknownLaw(t *testing.T) {
	_, errs := LoadDir(filepath.Join("testdata", "unknown"), LoadModeCollectAll)
	require.NotEmpty(t, errs)

	var specErr *SpecError
	require.ErrorAs(t, errs[0], &specErr)
	assert.Equal(t, ErrCodeCompileFailed, specErr.Code)
	assert.Contains(t, specErr.Message, "jaywalking")
}

func TestLoadDirNoLawBlock(t *testing.T) {
	result, errs := LoadDir(filepath.Join("testdata", "nolaw"), LoadModeFailFast)
	require.Empty(t, errs)
	require.NotNil(t, result)
	assert.Nil(t, result.Speeding)
}

func TestLoadDirMissingDirectory(t *testing.T) {
	result, errs := LoadDir(filepath.Join("testdata", "does-not-exist"), LoadModeFailFast)
	assert.Nil(t, result)
	require.Len(t, errs, 1)

	var specErr *SpecError
	require.ErrorAs(t, errs[0], &specErr)
	assert.Equal(t, ErrCodeNotFound, specErr.Code)
}

func TestLoadDirNoCUEFiles(t *testing.T) {
	result, errs := LoadDir(filepath.Join("testdata", "nofiles"), LoadModeFailFast)
	assert.Nil(t, result)
	require.Len(t, errs, 1)

	var specErr *SpecError
	require.ErrorAs(t, errs[0], &specErr)
	assert.Equal(t, ErrCodeNoFiles, specErr.Code)
}

func TestFindCUEFilesSorted(t *testing.T) {
	files, err := FindCUEFiles(filepath.Join("testdata", "valid"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "laws.cue", filepath.Base(files[0]))
}
