package iterators

import (
	"github.com/adamluzsi/wordseq"
)

// Filter hides the values from the source iterator that the selector does not match.
// Err and Close are proxied to the source iterator.
func Filter[T any](i wordseq.Iterator[T], selector func(T) bool) *FilterIter[T] {
	return &FilterIter[T]{Iterator: i, Selector: selector}
}

type FilterIter[T any] struct {
	Iterator wordseq.Iterator[T]
	Selector func(T) bool

	value T
}

func (i *FilterIter[T]) Close() error {
	return i.Iterator.Close()
}

func (i *FilterIter[T]) Err() error {
	return i.Iterator.Err()
}

func (i *FilterIter[T]) Next() bool {
	for i.Iterator.Next() {
		v := i.Iterator.Value()
		if i.Selector(v) {
			i.value = v
			return true
		}
	}
	return false
}

func (i *FilterIter[T]) Value() T {
	return i.value
}
