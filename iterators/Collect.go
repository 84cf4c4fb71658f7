package iterators

import (
	"github.com/adamluzsi/wordseq"
)

// Collect gathers the remaining values of the iterator into a slice, in traversal order,
// and closes the iterator.
func Collect[T any](i wordseq.Iterator[T]) (vs []T, err error) {
	defer func() {
		cErr := i.Close()

		if err == nil {
			err = cErr
		}
	}()

	vs = make([]T, 0)
	for i.Next() {
		vs = append(vs, i.Value())
	}

	return vs, i.Err()
}
