package cloudstack

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
)

const (
	cmdListInstanceGroups  = "listInstanceGroups"
	cmdCreateInstanceGroup = "createInstanceGroup"
	cmdDeleteInstanceGroup = "deleteInstanceGroup"
)

// apply adds the non-nil filter fields to args.
func (f Filter) apply(args url.Values) {
	if f.Account != nil {
		args.Set("account", *f.Account)
	}
	if f.DomainID != nil {
		args.Set("domainid", *f.DomainID)
	}
	if f.ProjectID != nil {
		args.Set("projectid", *f.ProjectID)
	}
}

// ListInstanceGroups returns all instance groups visible under filter.
func (c *RealClient) ListInstanceGroups(ctx context.Context, filter Filter) ([]InstanceGroup, error) {
	args := url.Values{}
	args.Set("listall", "true")
	filter.apply(args)
	return listAll[InstanceGroup](ctx, c, cmdListInstanceGroups, "instancegroup", args)
}

// CreateInstanceGroup creates an instance group. A rejection by CloudStack is
// reported through Result.Failure; the error return is reserved for transport failures.
func (c *RealClient) CreateInstanceGroup(ctx context.Context, opts CreateInstanceGroupOpts) (Result[*InstanceGroup], error) {
	args := url.Values{}
	args.Set("name", opts.Name)
	opts.Filter.apply(args)

	var resp struct {
		InstanceGroup *InstanceGroup `json:"instancegroup"`
	}
	if err := c.do(ctx, cmdCreateInstanceGroup, args, &resp); err != nil {
		return mutationResult[*InstanceGroup](err)
	}
	if resp.InstanceGroup == nil {
		return Result[*InstanceGroup]{}, &TransportError{Command: cmdCreateInstanceGroup, Err: errors.New("response carries no instance group")}
	}
	return Result[*InstanceGroup]{Resource: resp.InstanceGroup}, nil
}

// DeleteInstanceGroup deletes the instance group with the given id.
// An unacknowledged delete is reported as a failure carrying the display text.
func (c *RealClient) DeleteInstanceGroup(ctx context.Context, id string) (Result[bool], error) {
	args := url.Values{}
	args.Set("id", id)

	var resp struct {
		Success     json.RawMessage `json:"success"`
		DisplayText string          `json:"displaytext"`
	}
	if err := c.do(ctx, cmdDeleteInstanceGroup, args, &resp); err != nil {
		return mutationResult[bool](err)
	}

	// Older releases encode success as a string.
	if strings.Trim(string(resp.Success), `"`) != "true" {
		text := resp.DisplayText
		if text == "" {
			text = "delete was not acknowledged"
		}
		return Result[bool]{Failure: &APIError{Command: cmdDeleteInstanceGroup, ErrorText: text}}, nil
	}
	return Result[bool]{Resource: true}, nil
}

// mutationResult moves an APIError into Result.Failure and passes any other error through.
func mutationResult[T any](err error) (Result[T], error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return Result[T]{Failure: apiErr}, nil
	}
	return Result[T]{}, err
}
