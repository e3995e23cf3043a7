package cite

import "time"

// Entity is a named legal person subject to potential citation.
//
// Entities are created by the caller and referenced (not owned) by
// citations. Treat as immutable after construction.
type Entity struct {
	Name string `json:"name"`

	// BirthDate is a calendar date. Only its month and day participate
	// in the birthday allowance; the year is ignored.
	BirthDate time.Time `json:"birth_date"`
}

// NewEntity constructs an entity from a name and birth date.
func NewEntity(name string, birthDate time.Time) Entity {
	return Entity{Name: name, BirthDate: birthDate}
}

// Incident is an immutable record of a recorded speeding incident.
//
// Speeds are unit-less integers in a single consistent unit (mph, kph).
// A zero or negative SpeedLimit is accepted and simply produces a
// correspondingly nonsensical diff; the rule layer does not validate it.
type Incident struct {
	IncidentSpeed int    `json:"incident_speed"`
	SpeedLimit    int    `json:"speed_limit"`
	Location      string `json:"location"`
}

// NewIncident constructs an incident record.
func NewIncident(incidentSpeed, speedLimit int, location string) Incident {
	return Incident{
		IncidentSpeed: incidentSpeed,
		SpeedLimit:    speedLimit,
		Location:      location,
	}
}

// Citation is an immutable record of a law's decision to cite.
//
// Citations are created only by a law at the moment of issuance and are
// never mutated afterwards. They exist only as returned values; nothing
// in gavel persists them.
//
// INVARIANT: Severity is never None. A None result means "do not issue",
// and the law layer refuses to construct a citation for it.
type Citation struct {
	// Number is a time-sortable unique identifier assigned at issuance.
	Number string `json:"number"`

	// Date is the calendar date the citation was issued.
	Date time.Time `json:"date"`

	IssuerName string `json:"issuer_name"`

	// Citee references the cited entity; the citation does not own it.
	Citee *Entity `json:"citee"`

	Severity Severity `json:"severity"`
}
