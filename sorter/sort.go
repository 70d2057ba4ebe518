package sorter

import "github.com/ZacxDev/itemsort/item"

// Sort orders items so that every item follows all the items it depends on.
// No partial order is returned on error.
func Sort[T any](items []item.Item[T]) ([]item.Item[T], error) {
	g, err := Register(items)
	if err != nil {
		return nil, err
	}
	return Schedule(g)
}

// Validate checks that every dependency of every item appears at an earlier
// position. It returns an *OrderError for the first violation.
func Validate[T any](ordered []item.Item[T]) error {
	seen := make(map[string]bool)
	for pos, it := range ordered {
		for _, dep := range it.Dependencies() {
			if !seen[dep] {
				return &OrderError{Position: pos, Name: it.Name(), Missing: dep}
			}
		}
		if !it.IsAnonymous() {
			seen[it.Name()] = true
		}
	}
	return nil
}
