package sorter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZacxDev/itemsort/item"
)

func TestSchedule_ReadyQueueIsFIFO(t *testing.T) {
	g, err := Register([]item.Item[string]{
		item.Named("c", "c"),
		item.Named("a", "a"),
		item.Named("b", "b"),
	})
	require.NoError(t, err)

	sorted, err := Schedule(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, payloads(sorted))
}

func TestSchedule_DependentsNotifiedLIFO(t *testing.T) {
	g, err := Register([]item.Item[string]{
		item.Named("root", "root"),
		item.Named("x", "x", "root"),
		item.Named("y", "y", "root"),
		item.Named("z", "z", "root"),
	})
	require.NoError(t, err)

	sorted, err := Schedule(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"root", "z", "y", "x"}, payloads(sorted))
}

func TestSchedule_GraphIsReusable(t *testing.T) {
	g, err := Register(fixtures()[0].items)
	require.NoError(t, err)

	first, err := Schedule(g)
	require.NoError(t, err)
	second, err := Schedule(g)
	require.NoError(t, err)

	assert.Equal(t, payloads(first), payloads(second))
}

func TestSchedule_CycleLeavesGraphUntouched(t *testing.T) {
	g, err := Register([]item.Item[string]{
		item.Named("a", "a", "b"),
		item.Named("b", "b", "a"),
		item.Named("c", "c"),
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := Schedule(g)
		var target *CyclicDependencyError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, 1, target.Sorted)
		assert.Equal(t, 3, target.Total)
	}
}
