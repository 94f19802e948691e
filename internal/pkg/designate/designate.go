// Package designate holds the single-designated-member-of-a-group rule shared
// by batch seeding and default mappings: partition a group by a predicate,
// then validate that the designated side has the expected shape.
package designate

import "errors"

var ErrMultipleDesignated = errors.New("more than one member is designated")

// Partition splits items into matching and non-matching members. Order is kept.
func Partition[T any](items []T, match func(T) bool) (in, out []T) {
	for _, it := range items {
		if match(it) {
			in = append(in, it)
		} else {
			out = append(out, it)
		}
	}
	return in, out
}

// Single returns the designated member of items. ok is false when no member
// is designated; ErrMultipleDesignated is returned when more than one is.
func Single[T any](items []T, designated func(T) bool) (member T, ok bool, err error) {
	in, _ := Partition(items, designated)
	switch len(in) {
	case 0:
		return member, false, nil
	case 1:
		return in[0], true, nil
	default:
		return in[0], true, ErrMultipleDesignated
	}
}

// Stray returns the first member whose key differs from the designated key.
func Stray[T any, K comparable](items []T, key func(T) K, designated K) (member T, found bool) {
	_, out := Partition(items, func(it T) bool { return key(it) == designated })
	if len(out) == 0 {
		return member, false
	}
	return out[0], true
}
