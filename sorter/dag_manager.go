// sorter/dag_manager.go

package sorter

import "github.com/ZacxDev/itemsort/item"

type DAGManager[T any] interface {
	AddItem(it item.Item[T])
	TopologicalSort() ([]item.Item[T], error)
}

type dagManager[T any] struct {
	items []item.Item[T]
}

func NewDAGManager[T any]() DAGManager[T] {
	return &dagManager[T]{
		items: make([]item.Item[T], 0),
	}
}

func (dm *dagManager[T]) AddItem(it item.Item[T]) {
	dm.items = append(dm.items, it)
}

// TopologicalSort builds a fresh graph from the items added so far, so it can
// be called again after more items are added.
func (dm *dagManager[T]) TopologicalSort() ([]item.Item[T], error) {
	return Sort(dm.items)
}
