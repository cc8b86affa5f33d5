// Package ptr provides helper functions for optional values modelled as pointers.
package ptr

// Bool returns a pointer to the given bool value.
func Bool(b bool) *bool { return &b }

// String returns a pointer to the given string value.
func String(s string) *string { return &s }

// NonEmpty returns a pointer to s, or nil when s is empty.
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the value behind p, or the zero value when p is nil.
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
