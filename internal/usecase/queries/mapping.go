package queries

import (
	"context"
	"errors"

	"olive-mill/internal/domain/catalog"
	"olive-mill/internal/domain/mapping"
	"olive-mill/internal/pkg/errs"
)

var ErrMappingUnresolved = errs.Mark(errors.New("no output product mapped for input product"), errs.ErrNotFound)

type ResolvedMapping struct {
	InputProduct  catalog.ProductID
	OutputProduct catalog.ProductID
	// IsDefault is false when the output was picked by the lowest-id fallback.
	IsDefault  bool
	Candidates []mapping.DefaultMapping
}

type MappingReadStore interface {
	FindByInput(ctx context.Context, input catalog.ProductID) ([]mapping.DefaultMapping, error)
}

type MappingQueries interface {
	Resolve(ctx context.Context, input catalog.ProductID) (*ResolvedMapping, error)
}

type mappingQueriesImpl struct {
	store MappingReadStore
}

func NewMappingQueries(store MappingReadStore) MappingQueries {
	return &mappingQueriesImpl{store: store}
}

func (q *mappingQueriesImpl) Resolve(ctx context.Context, input catalog.ProductID) (*ResolvedMapping, error) {
	group, err := q.store.FindByInput(ctx, input)
	if err != nil {
		return nil, err
	}

	output, ok := mapping.Resolve(input, group)
	if !ok {
		return nil, ErrMappingUnresolved
	}

	resolved := &ResolvedMapping{InputProduct: input, OutputProduct: output, Candidates: group}
	for _, m := range group {
		if m.OutputProduct == output && m.IsDefault {
			resolved.IsDefault = true
		}
	}
	return resolved, nil
}
