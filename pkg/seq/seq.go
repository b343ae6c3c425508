// Package seq provides destructive-looking edits over ordered sequences
// that never mutate their input: every operation returns a fresh slice.
package seq

import "fmt"

// Pair couples one element from each of two zipped sequences.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pairs elements positionally, stopping at the shorter sequence.
func Zip[A, B any](as []A, bs []B) []Pair[A, B] {
	n := len(as)
	if len(bs) < n {
		n = len(bs)
	}
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: as[i], Second: bs[i]}
	}
	return out
}

// RemoveAt returns xs without the element at index i.
func RemoveAt[T any](xs []T, i int) ([]T, error) {
	if i < 0 || i >= len(xs) {
		return nil, fmt.Errorf("seq: index %d out of range for %d elements", i, len(xs))
	}
	out := make([]T, 0, len(xs)-1)
	out = append(out, xs[:i]...)
	return append(out, xs[i+1:]...), nil
}

// RemoveFirst returns xs without the first occurrence of v. When v is
// absent the result is an unchanged copy.
func RemoveFirst[T comparable](xs []T, v T) []T {
	for i, x := range xs {
		if x == v {
			out, _ := RemoveAt(xs, i)
			return out
		}
	}
	out := make([]T, len(xs))
	copy(out, xs)
	return out
}

// Pop returns the last element and the sequence without it.
func Pop[T any](xs []T) (T, []T, error) {
	var zero T
	if len(xs) == 0 {
		return zero, nil, fmt.Errorf("seq: pop from empty sequence")
	}
	rest := make([]T, len(xs)-1)
	copy(rest, xs[:len(xs)-1])
	return xs[len(xs)-1], rest, nil
}

// Where returns the elements for which keep reports true.
func Where[T any](xs []T, keep func(T) bool) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if keep(x) {
			out = append(out, x)
		}
	}
	return out
}

// FilterOut returns xs without any occurrence of v. Filtering twice for
// the same value is the same as filtering once.
func FilterOut[T comparable](xs []T, v T) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
