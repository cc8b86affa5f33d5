// Package cloudstack provides a client for the Apache CloudStack query API with
// the reliability features the instance group reconciler relies on.
//
// # Architecture
//
// The package is organized into domain-specific modules:
//
//   - client.go: Interfaces consumed by the reconciler and the tagged Result type
//   - real_client.go: Client construction and configuration options
//   - request.go: Request signing, transport and response envelope decoding
//   - instance_group.go: Instance group list, create and delete
//   - scope.go: Domain, account and project listing for scope resolution
//   - errors.go: Structured API errors vs transport errors, retry classification
//   - metrics.go: Request counters and latency histograms
//   - mock_client.go: Function-field mock for tests in other packages
//
// # Request signing
//
// Every request carries the API key, the command name and response=json. The
// parameters are sorted, URL-encoded with spaces as %20, lowercased and signed
// with HMAC-SHA1 using the secret key. The base64 signature is appended as the
// signature parameter. GET sends the parameters in the query string, POST sends
// them as a form body.
//
// # Errors
//
// CloudStack answers failed commands with an envelope carrying errortext. Such
// responses become [*APIError] values. Mutating calls surface them through
// [Result.Failure] so callers discriminate the outcome explicitly; read-only calls
// return them as errors. Anything else (connection failures, timeouts,
// undecodable bodies) is a [*TransportError].
//
// # Retries
//
// Read-only calls are retried with exponential backoff when the transport error
// is retryable (network failures, 429 and 5xx without an error envelope).
// Structured API errors are never retried and mutating calls are issued exactly
// once.
package cloudstack
