package store

import "sort"

// Local query helpers for view code: search, sort, and paginate operate on
// snapshots and never mutate their input.

// Filter returns the items for which match reports true, preserving order.
func Filter[T any](items []T, match func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if match(it) {
			out = append(out, it)
		}
	}
	return out
}

// SortBy returns a copy of items sorted by less. The sort is stable so equal
// items keep their relative order.
func SortBy[T any](items []T, less func(a, b T) bool) []T {
	cp := make([]T, len(items))
	copy(cp, items)
	sort.SliceStable(cp, func(i, j int) bool { return less(cp[i], cp[j]) })
	return cp
}

// Paginate returns a copy of the items on the given 1-based page. A page
// beyond the end, a page below 1, or a non-positive pageSize yields an empty
// slice. The last page may be short.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	cp := make([]T, end-start)
	copy(cp, items[start:end])
	return cp
}

// PageCount returns the number of pages needed to show n items at pageSize
// per page. Zero items is zero pages.
func PageCount(n, pageSize int) int {
	if n <= 0 || pageSize < 1 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}
