package mapping

import (
	"cmp"
	"errors"
	"slices"

	"olive-mill/internal/domain/catalog"
	"olive-mill/internal/pkg/designate"
	"olive-mill/internal/pkg/errs"
)

var (
	ErrMappingNotFound  = errs.Mark(errors.New("no mapping for input and output product"), errs.ErrNotFound)
	ErrMultipleDefaults = errs.Mark(errors.New("input product has more than one default mapping"), errs.ErrConflict)
)

// DefaultMapping associates an input product with an output product. At most
// one mapping per input product is the default.
type DefaultMapping struct {
	InputProduct  catalog.ProductID
	OutputProduct catalog.ProductID
	IsDefault     bool
}

// Resolve returns the output product for input. The default mapping wins;
// without one, the mapping with the lowest output product id is used so the
// answer does not depend on the order mappings were loaded in. ok is false
// when no mapping exists for input.
func Resolve(input catalog.ProductID, mappings []DefaultMapping) (output catalog.ProductID, ok bool) {
	group := groupOf(input, mappings)
	if len(group) == 0 {
		return 0, false
	}

	if def, found, _ := designate.Single(group, isDefault); found {
		return def.OutputProduct, true
	}
	return group[0].OutputProduct, true
}

// SetDefault returns a copy of mappings in which (input, output) is the only
// default of its input group. The argument slice is never modified, so no
// caller can observe a state with two defaults.
func SetDefault(input, output catalog.ProductID, mappings []DefaultMapping) ([]DefaultMapping, error) {
	if !slices.ContainsFunc(mappings, func(m DefaultMapping) bool {
		return m.InputProduct == input && m.OutputProduct == output
	}) {
		return nil, ErrMappingNotFound
	}

	next := make([]DefaultMapping, len(mappings))
	for i, m := range mappings {
		if m.InputProduct == input {
			m.IsDefault = m.OutputProduct == output
		}
		next[i] = m
	}
	return next, nil
}

// Validate reports ErrMultipleDefaults if any input group has two defaults.
func Validate(mappings []DefaultMapping) error {
	seen := make(map[catalog.ProductID]struct{})
	for _, m := range mappings {
		if _, done := seen[m.InputProduct]; done {
			continue
		}
		seen[m.InputProduct] = struct{}{}
		if _, _, err := designate.Single(groupOf(m.InputProduct, mappings), isDefault); err != nil {
			return ErrMultipleDefaults
		}
	}
	return nil
}

// groupOf returns the mappings for input ordered by output product id.
func groupOf(input catalog.ProductID, mappings []DefaultMapping) []DefaultMapping {
	group, _ := designate.Partition(mappings, func(m DefaultMapping) bool { return m.InputProduct == input })
	slices.SortStableFunc(group, func(a, b DefaultMapping) int {
		return cmp.Compare(a.OutputProduct, b.OutputProduct)
	})
	return group
}

func isDefault(m DefaultMapping) bool {
	return m.IsDefault
}
