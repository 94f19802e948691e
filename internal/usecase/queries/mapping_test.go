//go:build unit

package queries_test

import (
	"context"
	"testing"

	"olive-mill/internal/domain/catalog"
	"olive-mill/internal/domain/mapping"
	"olive-mill/internal/usecase/queries"
	queriesmock "olive-mill/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMappingQueries_Resolve(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name        string
		group       []mapping.DefaultMapping
		wantOutput  catalog.ProductID
		wantDefault bool
		errIs       error
	}{
		{
			name: "default wins",
			group: []mapping.DefaultMapping{
				{InputProduct: 7, OutputProduct: 70},
				{InputProduct: 7, OutputProduct: 71, IsDefault: true},
			},
			wantOutput:  71,
			wantDefault: true,
		},
		{
			name: "lowest output without a default",
			group: []mapping.DefaultMapping{
				{InputProduct: 7, OutputProduct: 72},
				{InputProduct: 7, OutputProduct: 70},
			},
			wantOutput: 70,
		},
		{
			name:  "nothing mapped",
			errIs: queries.ErrMappingUnresolved,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockMappingReadStore(ctrl)
			store.EXPECT().FindByInput(ctx, catalog.ProductID(7)).Return(tc.group, nil)

			got, err := queries.NewMappingQueries(store).Resolve(ctx, 7)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantOutput, got.OutputProduct)
			assert.Equal(t, tc.wantDefault, got.IsDefault)
			assert.Len(t, got.Candidates, len(tc.group))
		})
	}
}
