package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsMultiple returns true if the slice has more than one element.
func IsMultiple[S ~[]E, E any](s S) bool {
	return len(s) > 1
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// ZipWith pairs a[i] with b[i] through fn. The result is as long as the
// shorter input; surplus elements of the longer one are dropped.
func ZipWith[A, B, R any](a []A, b []B, fn func(A, B) R) []R {
	n := min(len(a), len(b))
	out := make([]R, n)

	for i := range n {
		out[i] = fn(a[i], b[i])
	}

	return out
}
