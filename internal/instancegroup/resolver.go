package instancegroup

import (
	"context"
	"fmt"
	"strings"

	"github.com/imamik/csgroup/internal/platform/cloudstack"
)

// Resolver turns account, domain and project names into the identifiers
// CloudStack filters on. Unresolvable names are errors, never silently
// dropped from the filter.
type Resolver struct {
	dir cloudstack.ScopeDirectory
}

// NewResolver creates a Resolver backed by dir.
func NewResolver(dir cloudstack.ScopeDirectory) *Resolver {
	return &Resolver{dir: dir}
}

// Resolve maps scope to a client filter. Empty names count as unset.
func (r *Resolver) Resolve(ctx context.Context, scope Scope) (cloudstack.Filter, error) {
	var filter cloudstack.Filter

	domain, err := r.domain(ctx, scope.Domain)
	if err != nil {
		return cloudstack.Filter{}, err
	}
	if domain != nil {
		filter.DomainID = &domain.ID
	}

	account, err := r.account(ctx, scope.Account, domain)
	if err != nil {
		return cloudstack.Filter{}, err
	}
	if account != nil {
		filter.Account = &account.Name
	}

	project, err := r.project(ctx, scope.Project, filter)
	if err != nil {
		return cloudstack.Filter{}, err
	}
	if project != nil {
		filter.ProjectID = &project.ID
	}

	return filter, nil
}

func (r *Resolver) domain(ctx context.Context, name *string) (*cloudstack.Domain, error) {
	if name == nil || *name == "" {
		return nil, nil
	}
	domains, err := r.dir.ListDomains(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}
	want := strings.ToLower(*name)
	candidates := []string{want, "root/" + want, "root" + want}
	for i := range domains {
		d := &domains[i]
		if d.ID == *name {
			return d, nil
		}
		path := strings.ToLower(d.Path)
		for _, c := range candidates {
			if path == c {
				return d, nil
			}
		}
	}
	return nil, scopeErrorf("domain", "Domain '%s' not found", *name)
}

func (r *Resolver) account(ctx context.Context, name *string, domain *cloudstack.Domain) (*cloudstack.Account, error) {
	if name == nil || *name == "" {
		return nil, nil
	}
	if domain == nil {
		return nil, scopeErrorf("account", "Account must be specified with Domain")
	}
	accounts, err := r.dir.ListAccounts(ctx, *name, domain.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if len(accounts) == 0 {
		return nil, scopeErrorf("account", "Account '%s' not found", *name)
	}
	return &accounts[0], nil
}

func (r *Resolver) project(ctx context.Context, name *string, filter cloudstack.Filter) (*cloudstack.Project, error) {
	if name == nil || *name == "" {
		return nil, nil
	}
	projects, err := r.dir.ListProjects(ctx, filter.Account, filter.DomainID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	for i := range projects {
		p := &projects[i]
		if strings.EqualFold(p.Name, *name) || p.ID == *name {
			return p, nil
		}
	}
	return nil, scopeErrorf("project", "project '%s' not found", *name)
}
