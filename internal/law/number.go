package law

import "github.com/google/uuid"

// UUIDv7Generator generates time-sortable UUIDv7 citation numbers.
//
// UUIDv7 embeds a timestamp in the most significant bits, making
// citation numbers sortable by issuance time. This is helpful when
// eyeballing output from repeated runs.
//
// Uses github.com/google/uuid for RFC 4122 compliant UUIDs.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
//
// Format: "550e8400-e29b-41d4-a716-446655440000" (36 characters)
//
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
