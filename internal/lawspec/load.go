package lawspec

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"

	"github.com/roach88/gavel/internal/law"
)

// LoadMode controls how errors are handled during spec loading.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// SpecError represents an error that occurred during spec loading.
type SpecError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *SpecError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Spec error codes.
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeNoFiles       = "NO_FILES"
	ErrCodeScanError     = "SCAN_ERROR"
	ErrCodeLoadFailed    = "LOAD_FAILED"
	ErrCodeBuildFailed   = "BUILD_FAILED"
	ErrCodeCompileFailed = "COMPILE_FAILED"
)

// LoadResult contains the results of loading law specs from a directory.
type LoadResult struct {
	// Speeding holds the compiled speeding-law parameters, or nil when
	// the specs declare no speeding law.
	Speeding *law.SpeedingParams

	// CUEValue is the raw CUE value for additional processing.
	CUEValue cue.Value

	// FileCount is the number of CUE files found.
	FileCount int
}

// LoadDir loads and compiles CUE law specs from a directory.
// If mode is LoadModeFailFast, returns on the first error.
// If mode is LoadModeCollectAll, collects all errors.
func LoadDir(dir string, mode LoadMode) (*LoadResult, []error) {
	var errs []error

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, []error{&SpecError{Code: ErrCodeNotFound, Message: fmt.Sprintf("spec directory not found: %s", dir)}}
	}
	if err != nil {
		return nil, []error{&SpecError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing spec directory: %v", err)}}
	}
	if !info.IsDir() {
		return nil, []error{&SpecError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}}
	}

	cueFiles, err := FindCUEFiles(dir)
	if err != nil {
		return nil, []error{&SpecError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}}
	}
	if len(cueFiles) == 0 {
		return nil, []error{&SpecError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}}
	}

	slog.Debug("loading law specs", "dir", dir, "files", len(cueFiles))

	ctx := cuecontext.New()
	cfg := &load.Config{Dir: dir}
	instances := load.Instances([]string{"."}, cfg)
	if len(instances) == 0 {
		return nil, []error{&SpecError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}}
	}

	inst := instances[0]
	if inst.Err != nil {
		return nil, []error{&SpecError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, []error{&SpecError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err)}}
	}

	result := &LoadResult{
		CUEValue:  value,
		FileCount: len(cueFiles),
	}

	lawsVal := value.LookupPath(cue.ParsePath("law"))
	if !lawsVal.Exists() {
		// A spec dir with no law block yields an empty result; callers
		// fall back to defaults.
		return result, errs
	}

	iter, iterErr := lawsVal.Fields()
	if iterErr != nil {
		errs = append(errs, &SpecError{Code: ErrCodeCompileFailed, Message: fmt.Sprintf("iterating laws: %v", iterErr)})
		return result, errs
	}

	for iter.Next() {
		name := iter.Label()
		switch name {
		case "speeding":
			params, compileErr := CompileSpeeding(iter.Value())
			if compileErr != nil {
				errs = append(errs, convertCompileError(compileErr, "law."+name))
				if mode == LoadModeFailFast {
					return result, errs
				}
				continue
			}
			result.Speeding = &params
		default:
			errs = append(errs, &SpecError{
				Code:    ErrCodeCompileFailed,
				Message: fmt.Sprintf("unknown law %q (known: speeding)", name),
				Pos:     iter.Value().Pos(),
			})
			if mode == LoadModeFailFast {
				return result, errs
			}
		}
	}

	return result, errs
}

// FindCUEFiles returns the .cue files directly under dir, sorted by
// name for deterministic load order.
func FindCUEFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".cue") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// convertCompileError wraps a CompileError as a SpecError with context.
func convertCompileError(err error, path string) error {
	if ce, ok := err.(*CompileError); ok {
		return &SpecError{
			Code:    ErrCodeCompileFailed,
			Message: fmt.Sprintf("%s: %s: %s", path, ce.Field, ce.Message),
			Pos:     ce.Pos,
		}
	}
	return &SpecError{Code: ErrCodeCompileFailed, Message: fmt.Sprintf("%s: %v", path, err)}
}
