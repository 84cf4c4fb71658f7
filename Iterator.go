package wordseq

import (
	"io"
)

// Iterator define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
// https://en.wikipedia.org/wiki/Iterator_pattern
type Iterator[V any] interface {
	// Closer is required to make it able to cancel iterators where resources are being used behind the scene
	// for all other cases where the underling io is handled on a higher level, it should simply return nil
	io.Closer
	// Err return the error cause.
	Err() error
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	// After the first false, every further Next call must keep returning false without side effects.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
}

// Iterable is the traversal producer capability.
// Each Iterate call must begin a fresh traversal:
// the returned Iterator owns its own position state,
// independent from every other Iterator that was made for the same Iterable.
type Iterable[V any] interface {
	Iterate() Iterator[V]
}

// IterableFunc is a wrapper to convert standalone functions into a valid Iterable.
type IterableFunc[V any] func() Iterator[V]

// Iterate implements the Iterable interface.
func (fn IterableFunc[V]) Iterate() Iterator[V] {
	return fn()
}
