package law

import (
	"fmt"

	"github.com/roach88/gavel/internal/cite"
)

// SpeedingParams are the tunable parameters of the speeding law.
//
// The thresholds are exclusive lower bounds on the adjusted diff
// (incident speed minus limit, minus the birthday allowance when it
// applies). diff > Large is a Large citation, diff > Medium is Medium,
// diff > Small is Small, anything else is None. Boundary values fall
// into the lower bucket; the comparisons are strict.
type SpeedingParams struct {
	// Allowance is subtracted from the diff on the citee's birthday
	// (month and day match; the year is ignored).
	Allowance int `json:"allowance"`

	// Small, Medium, and Large are the exclusive lower bounds for the
	// corresponding severities. Must be strictly increasing.
	Small  int `json:"small"`
	Medium int `json:"medium"`
	Large  int `json:"large"`
}

// DefaultSpeedingParams returns the standard parameters: a 5-unit
// birthday allowance and thresholds at 0, 10, and 25 over the limit.
func DefaultSpeedingParams() SpeedingParams {
	return SpeedingParams{Allowance: 5, Small: 0, Medium: 10, Large: 25}
}

// Validate checks that thresholds are strictly increasing and the
// allowance is non-negative.
func (p SpeedingParams) Validate() error {
	if !(p.Small < p.Medium && p.Medium < p.Large) {
		return NewConfigError(ErrCodeInvalidThresholds,
			fmt.Sprintf("thresholds must be strictly increasing: small=%d medium=%d large=%d",
				p.Small, p.Medium, p.Large))
	}
	if p.Allowance < 0 {
		return NewConfigError(ErrCodeInvalidAllowance,
			fmt.Sprintf("allowance must be non-negative: %d", p.Allowance))
	}
	return nil
}

// SpeedingLaw cites incidents whose speed exceeds the posted limit.
//
// SpeedingLaw is immutable after construction and safe for concurrent
// use: evaluation reads only the incident, the entity, and the clock.
type SpeedingLaw struct {
	clock   Clock
	numbers NumberGenerator
	params  SpeedingParams
}

// NewSpeedingLaw constructs a speeding law bound to a date source.
//
// Returns a ConfigError with code MISSING_CLOCK when clock is nil and
// with INVALID_THRESHOLDS / INVALID_ALLOWANCE when params are
// inconsistent. A nil numbers generator defaults to UUIDv7Generator.
func NewSpeedingLaw(clock Clock, numbers NumberGenerator, params SpeedingParams) (*SpeedingLaw, error) {
	if clock == nil {
		return nil, NewConfigError(ErrCodeMissingClock, "speeding law requires a date source")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if numbers == nil {
		numbers = UUIDv7Generator{}
	}
	return &SpeedingLaw{clock: clock, numbers: numbers, params: params}, nil
}

// Name implements Law.
func (l *SpeedingLaw) Name() string { return "speeding" }

// ShouldCite reports whether the incident's adjusted diff classifies
// above None.
func (l *SpeedingLaw) ShouldCite(incident cite.Incident, entity cite.Entity) bool {
	return l.calculateSeverity(incident, entity) != cite.None
}

// Cite issues the citation for a firing incident.
//
// Returns a StateError with code NO_VIOLATION when the severity is
// None; the caller must gate on ShouldCite first.
func (l *SpeedingLaw) Cite(incident cite.Incident, entity cite.Entity, issuerName string) (cite.Citation, error) {
	severity := l.calculateSeverity(incident, entity)
	if severity == cite.None {
		return cite.Citation{}, NewNoViolationError(l.Name())
	}
	return cite.Citation{
		Number:     l.numbers.Generate(),
		Date:       l.clock.Today(),
		IssuerName: issuerName,
		Citee:      &entity,
		Severity:   severity,
	}, nil
}

// calculateSeverity classifies the incident.
//
// diff = incident_speed - speed_limit, minus the allowance on the
// citee's birthday. Thresholds are strict: exactly Small/Medium/Large
// over the limit lands in the lower bucket.
func (l *SpeedingLaw) calculateSeverity(incident cite.Incident, entity cite.Entity) cite.Severity {
	diff := incident.IncidentSpeed - incident.SpeedLimit

	today := l.clock.Today()
	if entity.BirthDate.Month() == today.Month() && entity.BirthDate.Day() == today.Day() {
		diff -= l.params.Allowance
	}

	switch {
	case diff > l.params.Large:
		return cite.Large
	case diff > l.params.Medium:
		return cite.Medium
	case diff > l.params.Small:
		return cite.Small
	default:
		return cite.None
	}
}
