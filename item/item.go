package item

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Item is a caller-supplied value with an optional name and an optional list
// of names it depends on. The payload is carried through untouched.
type Item[T any] struct {
	name    string
	payload T
	deps    []string // nil means no dependency list was given
}

// New creates an item. An empty name makes the item anonymous; a nil deps
// slice means the item declares no dependency list at all.
func New[T any](name string, payload T, deps []string) Item[T] {
	var copied []string
	if deps != nil {
		copied = make([]string, len(deps))
		copy(copied, deps)
	}
	return Item[T]{name: name, payload: payload, deps: copied}
}

// Named creates a named item that depends on the given names.
func Named[T any](name string, payload T, deps ...string) Item[T] {
	return New(name, payload, deps)
}

// Anonymous creates an item that can never be depended upon.
func Anonymous[T any](payload T, deps ...string) Item[T] {
	return New("", payload, deps)
}

// FromList creates an item from a comma separated dependency list such as
// "s50,s60". An empty list means the item has no dependency list.
func FromList[T any](name string, payload T, list string) Item[T] {
	return New(name, payload, ParseList(list))
}

// ParseList splits a comma separated dependency list. Entries are trimmed and
// empty entries dropped; an input without entries yields nil.
func ParseList(list string) []string {
	var deps []string
	for _, part := range strings.Split(list, ",") {
		if part = strings.TrimSpace(part); part != "" {
			deps = append(deps, part)
		}
	}
	return deps
}

func (i Item[T]) Name() string {
	return i.name
}

func (i Item[T]) Payload() T {
	return i.payload
}

// Dependencies returns the declared dependency names in their original order,
// repeats included. The result is nil when no list was declared.
func (i Item[T]) Dependencies() []string {
	if i.deps == nil {
		return nil
	}
	deps := make([]string, len(i.deps))
	copy(deps, i.deps)
	return deps
}

// HasDependencyList reports whether a dependency list was declared, even an
// empty one.
func (i Item[T]) HasDependencyList() bool {
	return i.deps != nil
}

func (i Item[T]) IsAnonymous() bool {
	return i.name == ""
}

// DependencySet returns the declared dependencies sorted with repeats removed.
func (i Item[T]) DependencySet() []string {
	set := i.Dependencies()
	slices.Sort(set)
	return slices.Compact(set)
}

// Equivalent reports whether two declarations may share a name: the names
// match and their dependency sets are identical. Payloads are not compared.
// A missing list and an empty list both count as no dependencies.
func (i Item[T]) Equivalent(other Item[T]) bool {
	if i.name != other.name {
		return false
	}
	return slices.Equal(i.DependencySet(), other.DependencySet())
}
