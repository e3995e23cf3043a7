package law

import "github.com/roach88/gavel/internal/cite"

// Law is a pluggable traffic rule.
//
// Both operations are pure functions of (incident, entity, today), where
// today comes from the clock the law was constructed with. Cite is valid
// to call only when ShouldCite returns true for the same inputs; calling
// it otherwise returns a StateError with code NO_VIOLATION.
//
// Implementations must be immutable after construction so a single law
// can be shared by concurrent issuers.
type Law interface {
	// Name identifies the law in errors and diagnostics.
	Name() string

	// ShouldCite reports whether this law fires for the incident.
	ShouldCite(incident cite.Incident, entity cite.Entity) bool

	// Cite produces the citation for a firing law. issuerName is
	// stamped onto the citation; the date comes from the law's clock.
	Cite(incident cite.Incident, entity cite.Entity, issuerName string) (cite.Citation, error)
}

// NumberGenerator produces citation numbers.
// Implemented by UUIDv7Generator (production) and
// testutil.FixedNumberGenerator (tests).
type NumberGenerator interface {
	Generate() string
}
