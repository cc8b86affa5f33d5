package cloudstack

import "context"

// MockClient is a mock implementation of API. Unset functions fall back to
// empty, successful answers.
type MockClient struct {
	ListInstanceGroupsFunc  func(ctx context.Context, filter Filter) ([]InstanceGroup, error)
	CreateInstanceGroupFunc func(ctx context.Context, opts CreateInstanceGroupOpts) (Result[*InstanceGroup], error)
	DeleteInstanceGroupFunc func(ctx context.Context, id string) (Result[bool], error)

	ListDomainsFunc  func(ctx context.Context) ([]Domain, error)
	ListAccountsFunc func(ctx context.Context, name, domainID string) ([]Account, error)
	ListProjectsFunc func(ctx context.Context, account, domainID *string) ([]Project, error)
}

// ListInstanceGroups implements InstanceGroupManager.
func (m *MockClient) ListInstanceGroups(ctx context.Context, filter Filter) ([]InstanceGroup, error) {
	if m.ListInstanceGroupsFunc != nil {
		return m.ListInstanceGroupsFunc(ctx, filter)
	}
	return nil, nil
}

// CreateInstanceGroup implements InstanceGroupManager.
func (m *MockClient) CreateInstanceGroup(ctx context.Context, opts CreateInstanceGroupOpts) (Result[*InstanceGroup], error) {
	if m.CreateInstanceGroupFunc != nil {
		return m.CreateInstanceGroupFunc(ctx, opts)
	}
	return Result[*InstanceGroup]{Resource: &InstanceGroup{ID: "mock-id", Name: opts.Name}}, nil
}

// DeleteInstanceGroup implements InstanceGroupManager.
func (m *MockClient) DeleteInstanceGroup(ctx context.Context, id string) (Result[bool], error) {
	if m.DeleteInstanceGroupFunc != nil {
		return m.DeleteInstanceGroupFunc(ctx, id)
	}
	return Result[bool]{Resource: true}, nil
}

// ListDomains implements ScopeDirectory.
func (m *MockClient) ListDomains(ctx context.Context) ([]Domain, error) {
	if m.ListDomainsFunc != nil {
		return m.ListDomainsFunc(ctx)
	}
	return nil, nil
}

// ListAccounts implements ScopeDirectory.
func (m *MockClient) ListAccounts(ctx context.Context, name, domainID string) ([]Account, error) {
	if m.ListAccountsFunc != nil {
		return m.ListAccountsFunc(ctx, name, domainID)
	}
	return nil, nil
}

// ListProjects implements ScopeDirectory.
func (m *MockClient) ListProjects(ctx context.Context, account, domainID *string) ([]Project, error) {
	if m.ListProjectsFunc != nil {
		return m.ListProjectsFunc(ctx, account, domainID)
	}
	return nil, nil
}
