package sorter

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrConflictingDuplicate = errors.New("duplicate item with conflicting dependencies")
	ErrUnknownDependency    = errors.New("dependency on a non-existent item")
	ErrCyclicDependency     = errors.New("cyclic references detected in list of items")
	ErrOutOfOrder           = errors.New("item placed before its dependency")
)

// ConflictingDuplicateError is returned when two declarations share a name
// but not a dependency set.
type ConflictingDuplicateError struct {
	Name string
}

func (e *ConflictingDuplicateError) Error() string {
	return fmt.Sprintf("%v: %q", ErrConflictingDuplicate, e.Name)
}

func (e *ConflictingDuplicateError) Unwrap() error { return ErrConflictingDuplicate }

// UnknownDependencyError is returned when a declared dependency names no
// registered item. Dependent is empty for anonymous items, in which case
// Position identifies the declaration.
type UnknownDependencyError struct {
	Dependent string
	Position  int
	Missing   string
}

func (e *UnknownDependencyError) Error() string {
	return fmt.Sprintf("%v: %s depends on %q", ErrUnknownDependency, describe(e.Dependent, e.Position), e.Missing)
}

func (e *UnknownDependencyError) Unwrap() error { return ErrUnknownDependency }

// CyclicDependencyError is returned when the drain stops before every
// declaration was emitted.
type CyclicDependencyError struct {
	Sorted int
	Total  int
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("%v: %d of %d items never became ready", ErrCyclicDependency, e.Total-e.Sorted, e.Total)
}

func (e *CyclicDependencyError) Unwrap() error { return ErrCyclicDependency }

// OrderError is returned by Validate for the first item that appears before
// one of its dependencies.
type OrderError struct {
	Position int
	Name     string
	Missing  string
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("%v: %s at position %d needs %q", ErrOutOfOrder, describe(e.Name, e.Position), e.Position, e.Missing)
}

func (e *OrderError) Unwrap() error { return ErrOutOfOrder }

func describe(name string, position int) string {
	if name == "" {
		return fmt.Sprintf("<anonymous #%d>", position)
	}
	return fmt.Sprintf("%q", name)
}
