// Package cite provides the value types for gavel: entities, incidents,
// severities, and citations.
//
// This package contains type definitions and rendering only. All other
// internal packages import cite; cite imports nothing internal. This ensures
// the value layer remains foundational with no circular dependencies.
//
// Key design constraints:
//   - All values are immutable after construction
//   - Citation severity is never None (enforced at the law boundary)
//   - All JSON tags use snake_case
//   - Dates are calendar dates; time-of-day is never consulted
package cite
