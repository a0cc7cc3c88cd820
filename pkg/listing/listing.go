// Package listing is the shared list-view pipeline: filter an in-memory
// dataset, sort it, then cut a fixed-size page out of it. Every table and
// grid screen goes through this one implementation.
package listing

import (
	"sort"
	"strings"
)

// Per-screen page sizes.
const (
	PageSizeAdminTable  = 5
	PageSizeShopGrid    = 9
	PageSizeReviews     = 4
	PageSizeBestSellers = 3
)

type Predicate[T any] func(T) bool

// Filter keeps the items matching every predicate. Nil predicates are
// ignored so callers can pass optional filters unconditionally.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		ok := true
		for _, p := range preds {
			if p != nil && !p(it) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, it)
		}
	}
	return out
}

// SortBy returns a sorted copy; the input is left untouched so the full
// dataset can be re-filtered later.
func SortBy[T any](items []T, less func(a, b T) bool) []T {
	if less == nil {
		return items
	}
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Desc flips a comparator.
func Desc[T any](less func(a, b T) bool) func(a, b T) bool {
	return func(a, b T) bool { return less(b, a) }
}

// LessString compares case-insensitively so "banh mi" and "Banh Mi" sort
// together.
func LessString(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

// MatchSubstring reports whether s contains needle, case-insensitively.
// An empty needle matches everything.
func MatchSubstring(s, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(needle))
}

// Meta describes the cut page so screens can render "From–To of Total".
type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
	From       int `json:"from"`
	To         int `json:"to"`
}

// Paginate cuts one page out of items. The page is clamped into range, so a
// stale page number can never produce an empty slice while items is
// non-empty. An empty dataset yields From=To=0 ("0–0 of 0").
func Paginate[T any](items []T, page, pageSize int) ([]T, Meta) {
	if pageSize < 1 {
		pageSize = 1
	}
	total := len(items)
	if total == 0 {
		return []T{}, Meta{Page: 1, PageSize: pageSize, Total: 0, TotalPages: 0, From: 0, To: 0}
	}

	totalPages := (total + pageSize - 1) / pageSize
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	from := (page - 1) * pageSize
	to := from + pageSize
	if to > total {
		to = total
	}

	return items[from:to], Meta{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		From:       from + 1,
		To:         to,
	}
}
