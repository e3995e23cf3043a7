package lawspec

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/token"

	"github.com/roach88/gavel/internal/law"
)

// CompileError represents a failure turning a CUE value into law
// parameters. It carries the offending field and source position.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CompileSpeeding parses a CUE value into speeding-law parameters.
// Uses the CUE SDK's Go API directly (not a CLI subprocess).
//
// The CUE value should be the speeding struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`law: speeding: {allowance: 5}`)
//	params, err := lawspec.CompileSpeeding(v.LookupPath(cue.ParsePath("law.speeding")))
//
// Omitted fields take the defaults from law.DefaultSpeedingParams. The
// compiled parameters are validated; inconsistent thresholds fail here
// rather than at law construction so the error carries a position.
func CompileSpeeding(v cue.Value) (law.SpeedingParams, error) {
	params := law.DefaultSpeedingParams()

	if err := v.Err(); err != nil {
		return params, &CompileError{Field: "speeding", Message: err.Error(), Pos: v.Pos()}
	}

	if err := lookupInt(v, "allowance", &params.Allowance); err != nil {
		return params, err
	}

	thresholds := v.LookupPath(cue.ParsePath("thresholds"))
	if thresholds.Exists() {
		if err := lookupInt(thresholds, "small", &params.Small); err != nil {
			return params, err
		}
		if err := lookupInt(thresholds, "medium", &params.Medium); err != nil {
			return params, err
		}
		if err := lookupInt(thresholds, "large", &params.Large); err != nil {
			return params, err
		}
	}

	if err := params.Validate(); err != nil {
		return params, &CompileError{Field: "thresholds", Message: err.Error(), Pos: v.Pos()}
	}

	return params, nil
}

// lookupInt reads an optional integer field into dst, leaving dst
// untouched when the field is absent.
func lookupInt(v cue.Value, field string, dst *int) error {
	fieldVal := v.LookupPath(cue.ParsePath(field))
	if !fieldVal.Exists() {
		return nil
	}
	n, err := fieldVal.Int64()
	if err != nil {
		return &CompileError{Field: field, Message: fmt.Sprintf("must be an integer: %v", err), Pos: fieldVal.Pos()}
	}
	*dst = int(n)
	return nil
}

// BuildLaws constructs the law set a spec result describes.
//
// When the result is nil or declares no laws, the default speeding law
// is used. The clock and number generator are threaded into every
// constructed law.
func BuildLaws(result *LoadResult, clock law.Clock, numbers law.NumberGenerator) ([]law.Law, error) {
	params := law.DefaultSpeedingParams()
	if result != nil && result.Speeding != nil {
		params = *result.Speeding
	}

	speeding, err := law.NewSpeedingLaw(clock, numbers, params)
	if err != nil {
		return nil, err
	}
	return []law.Law{speeding}, nil
}
