//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"olive-mill/internal/domain/actor"
	"olive-mill/internal/infra"
	"olive-mill/internal/usecase/queries"
	"olive-mill/tests/common/builder"
	queriesmock "olive-mill/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	view := builder.NewBookingBuilder().WithRequester(owner).BuildViewQuery()

	cases := []struct {
		name  string
		act   actor.Actor
		errIs error
	}{
		{name: "owner sees own booking", act: actor.Actor{ID: owner, Role: actor.RoleClient}},
		{name: "operator sees any booking", act: actor.Actor{ID: uuid.New(), Role: actor.RoleOperator}},
		{name: "other client is refused", act: actor.Actor{ID: uuid.New(), Role: actor.RoleClient}, errIs: queries.ErrBookingAccess},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)
			store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

			got, err := queries.NewBookingQueries(store).GetByID(ctx, view.ID, tc.act)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}

	t.Run("missing booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindByID(ctx, view.ID).Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := queries.NewBookingQueries(store).GetByID(ctx, view.ID, actor.Actor{ID: owner, Role: actor.RoleClient})
		require.ErrorIs(t, err, queries.ErrBookingNotFound)
	})
}

func TestBookingQueries_ListByLine(t *testing.T) {
	ctx := context.Background()
	lineID := uuid.New()
	operator := actor.Actor{ID: uuid.New(), Role: actor.RoleOperator}
	items := make([]*queries.BookingListItem, 3)
	for i := range items {
		items[i] = builder.NewBookingBuilder().WithLine(lineID).WithStart(builder.Morning.Add(time.Duration(i) * time.Hour)).BuildListItem()
	}

	t.Run("first page fetches one extra row to detect more", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindByLineFirstPage(ctx, lineID, queries.TimeWindow{}, int32(3)).Return(items, nil)

		got, next, err := queries.NewBookingQueries(store).ListByLine(ctx, lineID, queries.TimeWindow{}, nil, 2, operator)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		require.NotNil(t, next)

		lastStart, lastID, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.True(t, items[1].Start.Equal(lastStart))
		assert.Equal(t, items[1].ID, lastID)
	})

	t.Run("following page uses the keyset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(items[1].Start, items[1].ID)}
		store.EXPECT().
			FindByLineKeyset(ctx, lineID, queries.TimeWindow{}, gomock.Any(), items[1].ID, int32(3)).
			Return(items[2:], nil)

		got, next, err := queries.NewBookingQueries(store).ListByLine(ctx, lineID, queries.TimeWindow{}, cursor, 2, operator)
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("rejects garbage cursors and inverted windows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		q := queries.NewBookingQueries(store)

		_, _, err := q.ListByLine(ctx, lineID, queries.TimeWindow{}, &queries.Cursor{After: "bogus"}, 10, operator)
		require.ErrorIs(t, err, queries.ErrInvalidCursor)

		inverted := queries.TimeWindow{From: builder.Morning, To: builder.Morning.Add(-time.Hour)}
		_, _, err = q.ListByLine(ctx, lineID, inverted, nil, 10, operator)
		require.ErrorIs(t, err, queries.ErrInvalidWindow)
	})

	t.Run("clients only see their own requester", func(t *testing.T) {
		client := actor.Actor{ID: uuid.New(), Role: actor.RoleClient}
		own := builder.NewBookingBuilder().WithLine(lineID).WithRequester(client.ID).BuildListItem()
		others := builder.NewBookingBuilder().WithLine(lineID).WithStart(builder.Morning.Add(time.Hour)).BuildListItem()
		othersRequester := *others.RequesterID

		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindByLineFirstPage(ctx, lineID, queries.TimeWindow{}, int32(11)).
			Return([]*queries.BookingListItem{own, others}, nil)

		got, _, err := queries.NewBookingQueries(store).ListByLine(ctx, lineID, queries.TimeWindow{}, nil, 10, client)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.NotNil(t, got[0].RequesterID)
		assert.Equal(t, client.ID, *got[0].RequesterID)
		assert.Nil(t, got[1].RequesterID)
		assert.Equal(t, others.ID, got[1].ID)
		assert.True(t, others.End.Equal(got[1].End))

		require.NotNil(t, others.RequesterID, "store rows are not modified")
		assert.Equal(t, othersRequester, *others.RequesterID)
	})
}
