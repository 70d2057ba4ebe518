package sorter

import "github.com/ZacxDev/itemsort/item"

// Graph is the dependency graph built by Register. Nodes are addressed by
// their declaration index, so every declaration (duplicates and anonymous
// items included) owns exactly one node. A Graph is never mutated after
// Register returns and may be scheduled any number of times.
type Graph[T any] struct {
	items []item.Item[T]
	nodes []node
	// index maps a name to its canonical (first registered) declaration.
	index map[string]int
	// ready lists the nodes without dependencies in discovery order.
	ready []int
}

type node struct {
	// dependents are the nodes waiting on this one, in edge insertion order.
	dependents []int
	// outgoing counts the distinct dependencies of this node.
	outgoing int
}

// Len returns the number of declarations in the graph.
func (g *Graph[T]) Len() int {
	return len(g.items)
}

// Canonical returns the declaration that stands for name when other items
// depend on it.
func (g *Graph[T]) Canonical(name string) (item.Item[T], bool) {
	idx, ok := g.index[name]
	if !ok {
		var zero item.Item[T]
		return zero, false
	}
	return g.items[idx], true
}
