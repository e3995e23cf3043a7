// Package issuer runs an ordered set of laws against single incidents.
//
// The issuer owns no state beyond its name and law list, both fixed at
// construction. Evaluation is deterministic: laws run in construction
// order, each independently, and the citation order in the result
// matches the law order. A constructed issuer is safe for concurrent
// use because there is nothing to mutate.
package issuer

import (
	"fmt"

	"github.com/roach88/gavel/internal/cite"
	"github.com/roach88/gavel/internal/law"
)

// Issuer evaluates all of its laws against one incident and entity and
// collects the resulting citations.
//
// INVARIANTS:
//   - laws slice order NEVER changes after construction
//   - IssueCitations returns an empty (never nil) slice when no law fires
//   - one law's decision does not affect another's inputs
type Issuer struct {
	name string
	laws []law.Law
}

// New constructs an issuer from a name and an ordered law list.
//
// Returns a ConfigError with code MISSING_NAME when name is empty and
// MISSING_LAWS when laws is nil. An empty (non-nil) law list is valid
// and yields zero citations for every incident.
func New(name string, laws []law.Law) (*Issuer, error) {
	if name == "" {
		return nil, law.NewConfigError(law.ErrCodeMissingName, "issuer requires a name")
	}
	if laws == nil {
		return nil, law.NewConfigError(law.ErrCodeMissingLaws, "issuer requires a law list (empty is valid, nil is not)")
	}
	return &Issuer{name: name, laws: laws}, nil
}

// Name returns the issuer's name as stamped onto citations.
func (o *Issuer) Name() string { return o.name }

// IssueCitations evaluates every law in construction order and returns
// the citations from those that fire.
//
// The returned error is non-nil only when a law violates its own
// contract (ShouldCite true but Cite refuses); with well-behaved laws
// the error is always nil.
func (o *Issuer) IssueCitations(incident cite.Incident, entity cite.Entity) ([]cite.Citation, error) {
	citations := make([]cite.Citation, 0, len(o.laws))
	for _, l := range o.laws {
		if !l.ShouldCite(incident, entity) {
			continue
		}
		c, err := l.Cite(incident, entity, o.name)
		if err != nil {
			return nil, fmt.Errorf("law %s reneged after ShouldCite: %w", l.Name(), err)
		}
		citations = append(citations, c)
	}
	return citations, nil
}
