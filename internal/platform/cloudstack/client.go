package cloudstack

import "context"

// Filter narrows list and create calls to an account, domain and project.
// Nil fields are omitted from the request.
type Filter struct {
	// Account is the account name; CloudStack scopes accounts by name within a domain.
	Account   *string
	DomainID  *string
	ProjectID *string
}

// CreateInstanceGroupOpts holds the parameters for createInstanceGroup.
type CreateInstanceGroupOpts struct {
	Name   string
	Filter Filter
}

// Result is the outcome of a mutating call that reached the API and got an
// answer. Exactly one of Resource and Failure is meaningful: Failure is set when
// CloudStack rejected the command with an error text.
type Result[T any] struct {
	Resource T
	Failure  *APIError
}

// Failed reports whether CloudStack rejected the command.
func (r Result[T]) Failed() bool {
	return r.Failure != nil
}

// InstanceGroupManager defines the interface for managing instance groups.
type InstanceGroupManager interface {
	// ListInstanceGroups returns every instance group visible under the filter.
	ListInstanceGroups(ctx context.Context, filter Filter) ([]InstanceGroup, error)
	// CreateInstanceGroup issues a single createInstanceGroup call.
	CreateInstanceGroup(ctx context.Context, opts CreateInstanceGroupOpts) (Result[*InstanceGroup], error)
	// DeleteInstanceGroup issues a single deleteInstanceGroup call for id.
	DeleteInstanceGroup(ctx context.Context, id string) (Result[bool], error)
}

// ScopeDirectory defines the lookups needed to resolve account, domain and
// project names to identifiers.
type ScopeDirectory interface {
	ListDomains(ctx context.Context) ([]Domain, error)
	ListAccounts(ctx context.Context, name, domainID string) ([]Account, error)
	ListProjects(ctx context.Context, account, domainID *string) ([]Project, error)
}

// API combines all interfaces implemented by RealClient.
type API interface {
	InstanceGroupManager
	ScopeDirectory
}
