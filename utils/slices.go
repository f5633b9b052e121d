package utils

import (
	"golang.org/x/exp/constraints"
)

// Max returns the largest of its arguments.
func Max[T constraints.Ordered](a T, b ...T) (r T) {
	r = a
	for _, bi := range b {
		if bi > r {
			r = bi
		}
	}
	return
}

// Min returns the smallest of its arguments.
func Min[T constraints.Ordered](a T, b ...T) (r T) {
	r = a
	for _, bi := range b {
		if bi < r {
			r = bi
		}
	}
	return
}

// IsSortedStrict returns true if s is strictly increasing.
func IsSortedStrict[T constraints.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if !(s[i-1] < s[i]) {
			return false
		}
	}
	return true
}

// Fill sets every element of s to v.
func Fill[V any](s []V, v V) {
	for i := range s {
		s[i] = v
	}
}
