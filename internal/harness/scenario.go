package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario.
// Scenarios pin the evaluation date and run one entity's incidents
// through an issuer, asserting on the resulting citations.
type Scenario struct {
	// Name uniquely identifies this scenario. Also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Specs is an optional path to a CUE law-spec directory, relative
	// to the scenario file location. Empty means the default law set.
	Specs string `yaml:"specs,omitempty"`

	// Issuer is the issuing officer's name.
	Issuer string `yaml:"issuer"`

	// Date is the evaluation date (YYYY-MM-DD). The injected clock is
	// pinned to this date for the whole run.
	Date string `yaml:"date"`

	// Entity is the citee for every incident in the scenario.
	Entity EntityDef `yaml:"entity"`

	// Incidents are evaluated in order against the same entity.
	Incidents []IncidentDef `yaml:"incidents"`

	// Assertions validate the resulting citations.
	// Supported types: citation_count, severity_order, line_contains.
	Assertions []Assertion `yaml:"assertions"`
}

// EntityDef describes the citee.
type EntityDef struct {
	Name string `yaml:"name"`

	// BirthDate is YYYY-MM-DD; only month and day matter to the
	// birthday allowance.
	BirthDate string `yaml:"birth_date"`
}

// IncidentDef describes one recorded incident.
type IncidentDef struct {
	Speed    int    `yaml:"speed"`
	Limit    int    `yaml:"limit"`
	Location string `yaml:"location"`
}

// Assertion validates the citations produced by a scenario run.
type Assertion struct {
	// Type specifies the assertion type:
	// - "citation_count": exactly Count citations across the whole run
	// - "severity_order": citation severities equal Severities, in order
	// - "line_contains": some rendered citation line contains Line
	Type string `yaml:"type"`

	// Count is the expected citation count (citation_count).
	Count int `yaml:"count"`

	// Severities is the expected severity sequence (severity_order).
	Severities []string `yaml:"severities,omitempty"`

	// Line is the expected substring (line_contains).
	Line string `yaml:"line,omitempty"`
}

// Assertion type constants.
const (
	AssertCitationCount = "citation_count"
	AssertSeverityOrder = "severity_order"
	AssertLineContains  = "line_contains"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks required fields and assertion shapes.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Issuer == "" {
		return fmt.Errorf("issuer is required")
	}
	if s.Date == "" {
		return fmt.Errorf("date is required")
	}
	if s.Entity.Name == "" {
		return fmt.Errorf("entity.name is required")
	}
	if s.Entity.BirthDate == "" {
		return fmt.Errorf("entity.birth_date is required")
	}
	if len(s.Incidents) == 0 {
		return fmt.Errorf("at least one incident is required")
	}

	for i, a := range s.Assertions {
		switch a.Type {
		case AssertCitationCount:
			// count: 0 is meaningful, nothing further to check
		case AssertSeverityOrder:
			if a.Severities == nil {
				return fmt.Errorf("assertions[%d]: severity_order requires severities", i)
			}
		case AssertLineContains:
			if a.Line == "" {
				return fmt.Errorf("assertions[%d]: line_contains requires line", i)
			}
		default:
			return fmt.Errorf("assertions[%d]: unknown type %q", i, a.Type)
		}
	}

	return nil
}
