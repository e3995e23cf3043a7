package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/gavel/internal/cite"
)

// TraceSnapshot captures the complete trace for a scenario execution.
// All fields use canonical JSON serialization for deterministic comparison.
type TraceSnapshot struct {
	ScenarioName string
	Trace        []TraceEvent
}

// toCanonicalMap converts a TraceSnapshot to a map[string]any for
// canonical JSON serialization, omitting zero-valued fields so the
// snapshot carries only what the event type uses.
func (s *TraceSnapshot) toCanonicalMap() map[string]any {
	traceList := make([]any, len(s.Trace))
	for i, event := range s.Trace {
		eventMap := map[string]any{
			"type": event.Type,
		}
		if event.Type == "incident" {
			eventMap["speed"] = event.Speed
			eventMap["limit"] = event.Limit
			if event.Location != "" {
				eventMap["location"] = event.Location
			}
		}
		if event.Type == "citation" {
			eventMap["number"] = event.Number
			eventMap["severity"] = event.Severity
			eventMap["line"] = event.Line
		}
		traceList[i] = eventMap
	}

	return map[string]any{
		"scenario_name": s.ScenarioName,
		"trace":         traceList,
	}
}

// SnapshotJSON renders a run's trace as canonical JSON under the given
// scenario name. Both the in-test golden comparison and the CLI's
// golden handling serialize through here so the two never drift.
func SnapshotJSON(scenarioName string, result *Result) ([]byte, error) {
	snapshot := TraceSnapshot{
		ScenarioName: scenarioName,
		Trace:        result.Trace,
	}
	return cite.MarshalCanonical(snapshot.toCanonicalMap())
}

// RunWithGolden executes a scenario and compares the trace against a
// golden file stored in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Golden files are the source of truth for expected trace output;
// assertion checks inside the scenario still apply and fail the run
// before the golden comparison happens.
func RunWithGolden(t *testing.T, scenario *Scenario, baseDir string) error {
	t.Helper()

	result, err := Run(scenario, baseDir)
	if err != nil {
		return err
	}

	traceJSON, err := SnapshotJSON(scenario.Name, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, traceJSON)

	return nil
}
