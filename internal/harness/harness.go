package harness

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/roach88/gavel/internal/cite"
	"github.com/roach88/gavel/internal/issuer"
	"github.com/roach88/gavel/internal/lawspec"
	"github.com/roach88/gavel/internal/testutil"
)

// TraceEvent is one entry in a scenario's execution trace.
// Incidents and the citations they produced interleave in evaluation
// order, so the trace reads like a transcript of the run.
type TraceEvent struct {
	// Type is "incident" or "citation".
	Type string `json:"type"`

	// Incident fields (Type == "incident").
	Speed    int    `json:"speed,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Location string `json:"location,omitempty"`

	// Citation fields (Type == "citation").
	Number   string `json:"number,omitempty"`
	Severity string `json:"severity,omitempty"`
	Line     string `json:"line,omitempty"`
}

// Result holds the outcome of a scenario run.
type Result struct {
	// Pass is true when every assertion held.
	Pass bool

	// Errors lists assertion failures (empty when Pass).
	Errors []string

	// Trace is the full transcript of the run.
	Trace []TraceEvent

	// Citations are all issued citations in evaluation order.
	Citations []cite.Citation

	// Lines are the rendered citation lines in evaluation order.
	Lines []string
}

// Run executes a scenario and returns the result.
//
// Each run builds a fresh issuer with a clock pinned to the scenario
// date and sequential citation numbers, so repeated runs of the same
// scenario produce byte-identical traces.
//
// baseDir resolves the scenario's relative specs path; pass the
// directory the scenario file was loaded from.
func Run(scenario *Scenario, baseDir string) (*Result, error) {
	date, err := time.Parse(cite.DateLayout, scenario.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid scenario date %q: %w", scenario.Date, err)
	}
	birthDate, err := time.Parse(cite.DateLayout, scenario.Entity.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("invalid birth_date %q: %w", scenario.Entity.BirthDate, err)
	}

	clock := testutil.NewFixedClock(date)
	numbers := testutil.NewSeqNumberGenerator()

	var specResult *lawspec.LoadResult
	if scenario.Specs != "" {
		specsDir := scenario.Specs
		if !filepath.IsAbs(specsDir) {
			specsDir = filepath.Join(baseDir, specsDir)
		}
		result, loadErrs := lawspec.LoadDir(specsDir, lawspec.LoadModeFailFast)
		if len(loadErrs) > 0 {
			return nil, fmt.Errorf("loading specs for scenario %s: %w", scenario.Name, loadErrs[0])
		}
		specResult = result
	}

	laws, err := lawspec.BuildLaws(specResult, clock, numbers)
	if err != nil {
		return nil, fmt.Errorf("building laws for scenario %s: %w", scenario.Name, err)
	}

	iss, err := issuer.New(scenario.Issuer, laws)
	if err != nil {
		return nil, fmt.Errorf("building issuer for scenario %s: %w", scenario.Name, err)
	}

	entity := cite.NewEntity(scenario.Entity.Name, birthDate)

	result := &Result{}
	for _, def := range scenario.Incidents {
		incident := cite.NewIncident(def.Speed, def.Limit, def.Location)
		result.Trace = append(result.Trace, TraceEvent{
			Type:     "incident",
			Speed:    incident.IncidentSpeed,
			Limit:    incident.SpeedLimit,
			Location: incident.Location,
		})

		citations, err := iss.IssueCitations(incident, entity)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}

		for _, c := range citations {
			line := cite.RenderLine(c)
			result.Citations = append(result.Citations, c)
			result.Lines = append(result.Lines, line)
			result.Trace = append(result.Trace, TraceEvent{
				Type:     "citation",
				Number:   c.Number,
				Severity: c.Severity.String(),
				Line:     line,
			})
		}
	}

	slog.Debug("scenario executed",
		"scenario", scenario.Name,
		"incidents", len(scenario.Incidents),
		"citations", len(result.Citations))

	// Evaluate assertions
	result.Pass = true
	for _, assertion := range scenario.Assertions {
		if err := evaluateAssertion(result, assertion); err != nil {
			result.Pass = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result, nil
}
