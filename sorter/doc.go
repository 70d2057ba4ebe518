// Package sorter orders items so that each one follows everything it depends
// on. Register builds an index-based graph, Schedule drains it with Kahn's
// algorithm, and Sort composes the two. Validate checks an ordering after
// the fact.
package sorter
