// Package utils holds small generic helpers for optional fields, which
// partial-update payloads model as pointers.
package utils

// Value dereferences v, returning the zero value when v is nil.
func Value[T any](v *T) T {
	if v == nil {
		return *new(T)
	}
	return *v
}

// Ptr returns a pointer to v, for building patch payloads from literals.
func Ptr[T any](v T) *T {
	return &v
}
