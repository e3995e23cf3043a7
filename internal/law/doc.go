// Package law implements gavel's traffic laws.
//
// A Law is a stateless rule that evaluates one incident against one
// entity and decides whether to cite and at what severity. Laws are
// parameterized at construction (date source, citation-number generator,
// rule thresholds) and are immutable afterwards, so a constructed law is
// safe for concurrent use.
//
// ARCHITECTURE:
//
// Two-operation contract:
// Every law answers ShouldCite and, when that is true, produces a
// citation with Cite. Cite refuses to construct a citation when the
// computed severity is None; that invariant is what keeps "no citation"
// and "citation" from blurring at the issuer boundary.
//
// CRITICAL PATTERNS:
//
// Injected clock:
// Severity computation never reads system time directly. The current
// date comes from the Clock a law was constructed with, which makes
// birthday handling deterministic and testable.
//
// Deterministic evaluation:
// A law's decision is a pure function of (incident, entity, today,
// parameters). No randomness, no I/O, no shared mutable state.
package law
