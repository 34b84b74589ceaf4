// Package collection provides generic, functional-style helpers for slices —
// Map, Filter, Find, GroupBy, SortBy, Contains.
//
// Usage:
//
//	mains := collection.Filter(menu, func(m models.MenuItem) bool { return m.Category == models.CategoryMain })
//	byCat := collection.GroupBy(menu, func(m models.MenuItem) string { return string(m.Category) })
package collection

import "sort"

// Map transforms each element of slice s using fn.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Filter keeps the elements of s for which fn returns true.
func Filter[T any](s []T, fn func(T) bool) []T {
	var out []T
	for _, v := range s {
		if fn(v) {
			out = append(out, v)
		}
	}
	return out
}

// Find returns the first element matching fn and whether one was found.
func Find[T any](s []T, fn func(T) bool) (T, bool) {
	for _, v := range s {
		if fn(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// GroupBy buckets elements of s by the key fn returns.
func GroupBy[T any, K comparable](s []T, fn func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, v := range s {
		k := fn(v)
		out[k] = append(out[k], v)
	}
	return out
}

// SortBy returns a stably sorted copy of s ordered by less.
func SortBy[T any](s []T, less func(a, b T) bool) []T {
	out := make([]T, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Contains reports whether s has an element matching fn.
func Contains[T any](s []T, fn func(T) bool) bool {
	_, ok := Find(s, fn)
	return ok
}
