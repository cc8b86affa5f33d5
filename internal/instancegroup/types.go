package instancegroup

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/imamik/csgroup/internal/platform/cloudstack"
	"github.com/imamik/csgroup/internal/util/ptr"
)

// State is the desired state of an instance group.
type State string

const (
	// StatePresent makes sure the group exists.
	StatePresent State = "present"
	// StateAbsent makes sure the group does not exist.
	StateAbsent State = "absent"
)

// ParseState parses a state name. The empty string means present.
func ParseState(s string) (State, error) {
	switch State(strings.ToLower(strings.TrimSpace(s))) {
	case "", StatePresent:
		return StatePresent, nil
	case StateAbsent:
		return StateAbsent, nil
	}
	return "", fmt.Errorf("value of state must be one of: present, absent, got: %s", s)
}

// Scope narrows lookups and creation. A nil field is not specified.
type Scope struct {
	Account *string
	Domain  *string
	Project *string
}

// Descriptor is a snapshot of an instance group as observed remotely.
type Descriptor struct {
	ID      string
	Name    string
	Created string
	Domain  *string
	Account *string
	Project *string
}

func descriptorFrom(g *cloudstack.InstanceGroup) *Descriptor {
	if g == nil {
		return nil
	}
	return &Descriptor{
		ID:      g.ID,
		Name:    g.Name,
		Created: g.Created,
		Domain:  ptr.NonEmpty(g.Domain),
		Account: ptr.NonEmpty(g.Account),
		Project: ptr.NonEmpty(g.Project),
	}
}

// Desired is the requested state for one named group.
type Desired struct {
	Name  string
	State State
	Scope Scope
}

// Result is the outcome of a reconciliation.
type Result struct {
	Changed bool
	// Fields holds the projected descriptor fields.
	Fields map[string]string
}

// MarshalJSON renders the result as one flat object: "changed" plus the
// projected fields.
func (r Result) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Fields)+1)
	for k, v := range r.Fields {
		out[k] = v
	}
	out["changed"] = r.Changed
	return json.Marshal(out)
}
