package instancegroup

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/csgroup/internal/platform/cloudstack"
)

// Reconciler converges instance groups to a desired state.
type Reconciler struct {
	client   cloudstack.InstanceGroupManager
	resolver *Resolver
	dryRun   bool
	log      logr.Logger
	observer Observer
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithDryRun reports changes without issuing create or delete calls.
func WithDryRun(dryRun bool) Option {
	return func(r *Reconciler) {
		r.dryRun = dryRun
	}
}

// WithLogger sets the logger.
func WithLogger(l logr.Logger) Option {
	return func(r *Reconciler) {
		r.log = l
	}
}

// WithObserver sets the event observer.
func WithObserver(o Observer) Option {
	return func(r *Reconciler) {
		r.observer = o
	}
}

// NewReconciler creates a Reconciler that talks to CloudStack through client.
func NewReconciler(client cloudstack.API, opts ...Option) *Reconciler {
	r := &Reconciler{
		client:   client,
		resolver: NewResolver(client),
		log:      logr.Discard(),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// pass holds the state of one invocation. The resolved filter and the lookup
// result are computed at most once per pass.
type pass struct {
	r     *Reconciler
	scope Scope
	name  string

	filter   *cloudstack.Filter
	lookedUp bool
	found    *Descriptor
}

func (r *Reconciler) newPass(scope Scope, name string) *pass {
	return &pass{r: r, scope: scope, name: name}
}

func (p *pass) resolve(ctx context.Context) (cloudstack.Filter, error) {
	if p.filter != nil {
		return *p.filter, nil
	}
	filter, err := p.r.resolver.Resolve(ctx, p.scope)
	if err != nil {
		return cloudstack.Filter{}, err
	}
	p.filter = &filter
	return filter, nil
}

// lookup returns the first group whose name or id equals the requested name.
func (p *pass) lookup(ctx context.Context) (*Descriptor, error) {
	if p.lookedUp {
		return p.found, nil
	}
	filter, err := p.resolve(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := p.r.client.ListInstanceGroups(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list instance groups: %w", err)
	}
	for i := range groups {
		if groups[i].Name == p.name || groups[i].ID == p.name {
			p.found = descriptorFrom(&groups[i])
			break
		}
	}
	p.lookedUp = true
	p.r.log.V(1).Info("looked up instance group", "group", p.name, "found", p.found != nil)
	return p.found, nil
}

// Lookup returns the group matching name by name or id, or nil when none
// exists under scope.
func (r *Reconciler) Lookup(ctx context.Context, scope Scope, name string) (*Descriptor, error) {
	return r.newPass(scope, name).lookup(ctx)
}

// EnsurePresent makes sure the group exists. It returns the existing or
// created group and whether a change was (or in dry-run would be) made. In
// dry-run mode a missing group yields a nil descriptor.
func (r *Reconciler) EnsurePresent(ctx context.Context, scope Scope, name string) (*Descriptor, bool, error) {
	return r.ensurePresent(ctx, r.newPass(scope, name))
}

func (r *Reconciler) ensurePresent(ctx context.Context, p *pass) (*Descriptor, bool, error) {
	found, err := p.lookup(ctx)
	if err != nil {
		return nil, false, err
	}
	if found != nil {
		r.observer.Event(Event{Type: EventResourceExists, Resource: p.name, Message: "instance group exists", Fields: map[string]string{"id": found.ID}})
		return found, false, nil
	}
	if r.dryRun {
		r.log.Info("would create instance group", "group", p.name)
		return nil, true, nil
	}

	filter, err := p.resolve(ctx)
	if err != nil {
		return nil, false, err
	}
	r.observer.Event(Event{Type: EventResourceCreating, Resource: p.name, Message: "creating instance group"})
	res, err := r.client.CreateInstanceGroup(ctx, cloudstack.CreateInstanceGroupOpts{Name: p.name, Filter: filter})
	if err != nil {
		return nil, false, fmt.Errorf("failed to create instance group %s: %w", p.name, err)
	}
	if res.Failed() {
		r.observer.Event(Event{Type: EventResourceFailed, Resource: p.name, Message: res.Failure.ErrorText, Fields: map[string]string{"operation": string(OpCreate)}})
		return nil, false, &MutationError{Op: OpCreate, Name: p.name, Text: res.Failure.ErrorText, Err: res.Failure}
	}

	created := descriptorFrom(res.Resource)
	if created == nil {
		return nil, false, fmt.Errorf("failed to create instance group %s: no group returned", p.name)
	}
	r.observer.Event(Event{Type: EventResourceCreated, Resource: p.name, Message: "instance group created", Fields: map[string]string{"id": created.ID}})
	return created, true, nil
}

// EnsureAbsent makes sure the group does not exist. It returns the group as
// it was before deletion, or nil when there was nothing to delete.
func (r *Reconciler) EnsureAbsent(ctx context.Context, scope Scope, name string) (*Descriptor, bool, error) {
	return r.ensureAbsent(ctx, r.newPass(scope, name))
}

func (r *Reconciler) ensureAbsent(ctx context.Context, p *pass) (*Descriptor, bool, error) {
	found, err := p.lookup(ctx)
	if err != nil {
		return nil, false, err
	}
	if found == nil {
		r.observer.Event(Event{Type: EventResourceAbsent, Resource: p.name, Message: "instance group absent"})
		return nil, false, nil
	}
	if r.dryRun {
		r.log.Info("would delete instance group", "group", p.name, "id", found.ID)
		return found, true, nil
	}

	r.observer.Event(Event{Type: EventResourceDeleting, Resource: p.name, Message: "deleting instance group", Fields: map[string]string{"id": found.ID}})
	res, err := r.client.DeleteInstanceGroup(ctx, found.ID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to delete instance group %s: %w", p.name, err)
	}
	if res.Failed() {
		r.observer.Event(Event{Type: EventResourceFailed, Resource: p.name, Message: res.Failure.ErrorText, Fields: map[string]string{"operation": string(OpDelete)}})
		return nil, false, &MutationError{Op: OpDelete, Name: p.name, Text: res.Failure.ErrorText, Err: res.Failure}
	}

	r.observer.Event(Event{Type: EventResourceDeleted, Resource: p.name, Message: "instance group deleted", Fields: map[string]string{"id": found.ID}})
	return found, true, nil
}

// Reconcile converges desired and returns the result record.
func (r *Reconciler) Reconcile(ctx context.Context, desired Desired) (*Result, error) {
	start := time.Now()
	state := desired.State
	if state == "" {
		state = StatePresent
	}
	p := r.newPass(desired.Scope, desired.Name)

	var (
		d       *Descriptor
		changed bool
		err     error
	)
	if state == StateAbsent {
		d, changed, err = r.ensureAbsent(ctx, p)
	} else {
		d, changed, err = r.ensurePresent(ctx, p)
	}
	recordReconcile(state, changed, err, time.Since(start))
	if err != nil {
		return nil, err
	}

	r.log.V(1).Info("reconciled instance group", "group", desired.Name, "state", string(state), "changed", changed, "dryRun", r.dryRun)
	return &Result{Changed: changed, Fields: Project(d)}, nil
}

// List returns every group visible under scope.
func (r *Reconciler) List(ctx context.Context, scope Scope) ([]*Descriptor, error) {
	filter, err := r.resolver.Resolve(ctx, scope)
	if err != nil {
		return nil, err
	}
	groups, err := r.client.ListInstanceGroups(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list instance groups: %w", err)
	}
	out := make([]*Descriptor, 0, len(groups))
	for i := range groups {
		out = append(out, descriptorFrom(&groups[i]))
	}
	return out, nil
}

// Project returns the present fields of d keyed by their result names.
func Project(d *Descriptor) map[string]string {
	fields := make(map[string]string)
	if d == nil {
		return fields
	}
	set := func(key, value string) {
		if value != "" {
			fields[key] = value
		}
	}
	set("id", d.ID)
	set("name", d.Name)
	set("created", d.Created)
	if d.Domain != nil {
		fields["domain"] = *d.Domain
	}
	if d.Account != nil {
		fields["account"] = *d.Account
	}
	if d.Project != nil {
		fields["project"] = *d.Project
	}
	return fields
}
