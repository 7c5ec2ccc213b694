package schema

// Ptr returns a pointer to v. Generated constructors use it to prefill
// optional fields declared as pointers.
func Ptr[T any](v T) *T {
	return &v
}
