//go:build unit

package designate_test

import (
	"testing"

	"olive-mill/internal/pkg/designate"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type member struct {
	group int
	flag  bool
}

func TestPartition(t *testing.T) {
	items := []member{{1, true}, {2, false}, {3, true}, {4, false}}

	in, out := designate.Partition(items, func(m member) bool { return m.flag })

	if diff := cmp.Diff([]member{{1, true}, {3, true}}, in, cmp.AllowUnexported(member{})); diff != "" {
		t.Errorf("matching members mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]member{{2, false}, {4, false}}, out, cmp.AllowUnexported(member{})); diff != "" {
		t.Errorf("non-matching members mismatch (-want +got):\n%s", diff)
	}
}

func TestSingle(t *testing.T) {
	isFlagged := func(m member) bool { return m.flag }

	t.Run("none designated", func(t *testing.T) {
		_, ok, err := designate.Single([]member{{1, false}}, isFlagged)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty group", func(t *testing.T) {
		_, ok, err := designate.Single([]member(nil), isFlagged)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("exactly one designated", func(t *testing.T) {
		got, ok, err := designate.Single([]member{{1, false}, {2, true}}, isFlagged)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 2, got.group)
	})

	t.Run("two designated", func(t *testing.T) {
		_, _, err := designate.Single([]member{{1, true}, {2, true}}, isFlagged)
		require.ErrorIs(t, err, designate.ErrMultipleDesignated)
	})
}

func TestStray(t *testing.T) {
	key := func(m member) int { return m.group }

	_, found := designate.Stray([]member{{7, false}, {7, true}}, key, 7)
	assert.False(t, found)

	got, found := designate.Stray([]member{{7, false}, {9, false}, {8, false}}, key, 7)
	assert.True(t, found)
	assert.Equal(t, 9, got.group)
}
