// Package ptr provides small helpers for taking pointers to literal values.
package ptr

// To creates a pointer to the given value.
func To[T any](v T) *T {
	return &v
}
