// Package instancegroup converges a named CloudStack instance group to a
// desired state.
//
// # Architecture
//
// A Reconciler drives one invocation through a small state machine:
//
//	START -> LOOKED_UP -> UNCHANGED
//	                   -> MUTATING -> SUCCEEDED | FAILED
//
// Every public operation opens a pass. The pass resolves the scope (account,
// domain and project names to identifiers) and lists the groups visible under
// it at most once, so a single invocation never repeats a lookup. Nothing is
// cached between invocations.
//
// In dry-run mode the MUTATING step is skipped and the reconciler reports the
// change it would have made.
//
// # Errors
//
// Scope resolution failures are *ScopeError values matching ErrScopeUnresolved.
// Rejected create and delete calls are *MutationError values matching
// ErrCreateFailed or ErrDeleteFailed. Transport failures from the client pass
// through unchanged. All of them end the invocation.
package instancegroup
