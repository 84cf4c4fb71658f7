package iterators

// Empty returns an iterator that is exhausted from the start.
// It stands in wherever a traversal is expected but there is nothing to traverse,
// so callers never have to branch on a nil iterator.
func Empty[T any]() *EmptyIter[T] {
	return &EmptyIter[T]{}
}

type EmptyIter[T any] struct{}

func (i *EmptyIter[T]) Next() bool {
	return false
}

func (i *EmptyIter[T]) Err() error {
	return nil
}

func (i *EmptyIter[T]) Close() error {
	return nil
}

func (i *EmptyIter[T]) Value() T {
	var zero T
	return zero
}
