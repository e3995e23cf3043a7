// Package harness provides a conformance testing framework for gavel.
//
// Scenarios are YAML files that pin an evaluation date, an issuer, one
// entity, and a list of incidents, then assert on the citations that
// come out. Because the clock and citation numbers are injected, a
// scenario run is fully deterministic: the same file produces a
// byte-identical trace every time, which is what golden-file comparison
// relies on.
//
// A scenario looks like:
//
//	name: birthday-allowance
//	description: birthday drops a Medium to a Small
//	issuer: Officer Lila
//	date: 2024-03-15
//	entity:
//	  name: Ray
//	  birth_date: 1990-03-15
//	incidents:
//	  - speed: 50
//	    limit: 35
//	    location: Main St
//	assertions:
//	  - type: citation_count
//	    count: 1
//	  - type: severity_order
//	    severities: [Small]
//
// Assertion types: citation_count, severity_order, line_contains.
// Golden comparison (RunWithGolden) snapshots the full trace as
// canonical JSON under testdata/golden/{name}.golden.
package harness
