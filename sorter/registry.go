package sorter

import "github.com/ZacxDev/itemsort/item"

// Register indexes the items by name and links every declaration to the
// canonical declarations it depends on.
//
// A name declared more than once keeps its first declaration as canonical;
// later declarations must be equivalent to it or registration fails with a
// *ConflictingDuplicateError. Duplicates still get their own node and their
// own outgoing edges. A dependency on an unregistered name fails with an
// *UnknownDependencyError.
func Register[T any](items []item.Item[T]) (*Graph[T], error) {
	g := &Graph[T]{
		items: make([]item.Item[T], len(items)),
		nodes: make([]node, len(items)),
		index: make(map[string]int),
	}
	copy(g.items, items)

	for i, it := range g.items {
		if it.IsAnonymous() {
			continue
		}
		canonical, exists := g.index[it.Name()]
		if !exists {
			g.index[it.Name()] = i
			continue
		}
		if !g.items[canonical].Equivalent(it) {
			return nil, &ConflictingDuplicateError{Name: it.Name()}
		}
	}

	for i, it := range g.items {
		if err := g.link(i, it); err != nil {
			return nil, err
		}
		if g.nodes[i].outgoing == 0 {
			g.ready = append(g.ready, i)
		}
	}

	return g, nil
}

// link adds one edge per distinct dependency name of the declaration at i.
func (g *Graph[T]) link(i int, it item.Item[T]) error {
	seen := make(map[string]bool)
	for _, name := range it.Dependencies() {
		if seen[name] {
			continue
		}
		seen[name] = true

		dep, ok := g.index[name]
		if !ok {
			return &UnknownDependencyError{Dependent: it.Name(), Position: i, Missing: name}
		}
		g.nodes[dep].dependents = append(g.nodes[dep].dependents, i)
		g.nodes[i].outgoing++
	}
	return nil
}
