// Package filter narrows in-memory collections for list views. Every filter
// is a conjunction of predicates; results keep the source order and never
// alias the input slice.
package filter

import (
	"errors"
	"strings"
)

var (
	ErrInvalidSpeedTier  = errors.New("invalid speed tier")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidPriceRange = errors.New("invalid price range")
)

// All is the pass-through value of every enumerated filter setting.
const All = "all"

type Predicate[T any] func(T) bool

// Apply returns the items satisfying every predicate, in source order.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAll(item, preds) {
			out = append(out, item)
		}
	}
	return out
}

func matchesAll[T any](item T, preds []Predicate[T]) bool {
	for _, pred := range preds {
		if !pred(item) {
			return false
		}
	}
	return true
}

// containsFold reports whether any field contains term, ignoring case.
// An empty term matches everything.
func containsFold(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
