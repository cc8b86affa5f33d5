// Package retry provides exponential backoff retry logic for transient failures.
//
// [WithExponentialBackoff] retries an operation with configurable max attempts,
// initial delay, maximum delay and an optional classifier. The CloudStack client
// uses it for read-only API calls; mutating calls are issued exactly once.
package retry
