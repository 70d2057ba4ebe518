package sorter

import "github.com/ZacxDev/itemsort/item"

// Schedule drains the graph with Kahn's algorithm. Ready nodes leave the
// queue in FIFO order; the dependents of an emitted node are notified last
// in, first out. The result holds every declaration exactly once, or a
// *CyclicDependencyError when some declarations never became ready.
func Schedule[T any](g *Graph[T]) ([]item.Item[T], error) {
	remaining := make([]int, len(g.nodes))
	for i, n := range g.nodes {
		remaining[i] = n.outgoing
	}

	queue := make([]int, len(g.ready), len(g.nodes))
	copy(queue, g.ready)
	sorted := make([]item.Item[T], 0, len(g.items))

	for head := 0; head < len(queue); head++ {
		current := queue[head]
		sorted = append(sorted, g.items[current])

		dependents := g.nodes[current].dependents
		for j := len(dependents) - 1; j >= 0; j-- {
			next := dependents[j]
			remaining[next]--
			if remaining[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(sorted) != len(g.items) {
		return nil, &CyclicDependencyError{Sorted: len(sorted), Total: len(g.items)}
	}
	return sorted, nil
}
