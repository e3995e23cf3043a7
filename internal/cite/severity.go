package cite

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity is the ordinal citation class.
//
// Values are ordered None < Small < Medium < Large, and the integer
// ordering is part of the contract: callers may compare severities with
// < and >.
type Severity int

const (
	// None means the incident does not warrant a citation.
	// A Citation never carries None; it signals "do not issue".
	None Severity = iota

	// Small covers violations of at most 10 over the adjusted limit.
	Small

	// Medium covers violations of more than 10 and at most 25 over.
	Medium

	// Large covers violations of more than 25 over.
	Large
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	switch s {
	case None:
		return "None"
	case Small:
		return "Small"
	case Medium:
		return "Medium"
	case Large:
		return "Large"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// ParseSeverity converts a severity name to its value.
// Matching is case-insensitive. Returns an error for unknown names.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(name) {
	case "none":
		return None, nil
	case "small":
		return Small, nil
	case "medium":
		return Medium, nil
	case "large":
		return Large, nil
	default:
		return None, fmt.Errorf("unknown severity %q", name)
	}
}

// MarshalJSON encodes the severity as its name, not its ordinal.
// Ordinals are an internal ordering detail; names are stable on the wire.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a severity from its name.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
