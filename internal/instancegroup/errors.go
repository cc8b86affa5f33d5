package instancegroup

import (
	"errors"
	"fmt"

	"github.com/imamik/csgroup/internal/platform/cloudstack"
)

var (
	// ErrScopeUnresolved indicates an account, domain or project name could not be resolved.
	ErrScopeUnresolved = errors.New("scope unresolved")
	// ErrCreateFailed indicates CloudStack rejected createInstanceGroup.
	ErrCreateFailed = errors.New("create failed")
	// ErrDeleteFailed indicates CloudStack rejected deleteInstanceGroup.
	ErrDeleteFailed = errors.New("delete failed")
)

// ScopeError reports an unresolvable scope component.
type ScopeError struct {
	Kind    string // domain, account or project
	Message string
}

func (e *ScopeError) Error() string {
	return e.Message
}

func (e *ScopeError) Is(target error) bool {
	return target == ErrScopeUnresolved
}

func scopeErrorf(kind, format string, args ...any) *ScopeError {
	return &ScopeError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Operation names a mutating call.
type Operation string

const (
	OpCreate Operation = "create"
	OpDelete Operation = "delete"
)

// MutationError carries the error text CloudStack returned for a rejected
// create or delete.
type MutationError struct {
	Op   Operation
	Name string
	Text string
	Err  *cloudstack.APIError
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("Failed: '%s'", e.Text)
}

func (e *MutationError) Is(target error) bool {
	switch target {
	case ErrCreateFailed:
		return e.Op == OpCreate
	case ErrDeleteFailed:
		return e.Op == OpDelete
	}
	return false
}

func (e *MutationError) Unwrap() error {
	if e.Err == nil {
		return nil
	}
	return e.Err
}
