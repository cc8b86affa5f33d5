package cloudstack

import (
	"context"
	"net/url"
)

const (
	cmdListDomains  = "listDomains"
	cmdListAccounts = "listAccounts"
	cmdListProjects = "listProjects"
)

// ListDomains returns every domain visible to the caller.
func (c *RealClient) ListDomains(ctx context.Context) ([]Domain, error) {
	args := url.Values{}
	args.Set("listall", "true")
	return listAll[Domain](ctx, c, cmdListDomains, "domain", args)
}

// ListAccounts returns the accounts called name within the domain.
func (c *RealClient) ListAccounts(ctx context.Context, name, domainID string) ([]Account, error) {
	args := url.Values{}
	args.Set("listall", "true")
	args.Set("name", name)
	if domainID != "" {
		args.Set("domainid", domainID)
	}
	return listAll[Account](ctx, c, cmdListAccounts, "account", args)
}

// ListProjects returns the projects visible under the optional account and domain.
func (c *RealClient) ListProjects(ctx context.Context, account, domainID *string) ([]Project, error) {
	args := url.Values{}
	args.Set("listall", "true")
	Filter{Account: account, DomainID: domainID}.apply(args)
	return listAll[Project](ctx, c, cmdListProjects, "project", args)
}
