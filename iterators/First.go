package iterators

import (
	"github.com/adamluzsi/wordseq"
)

// First returns the first next value of the iterator and closes the iterator.
// When the iterator was empty, found is false.
func First[T any](i wordseq.Iterator[T]) (value T, found bool, err error) {
	defer func() {
		cErr := i.Close()

		if err == nil {
			err = cErr
		}
	}()

	if !i.Next() {
		return value, false, i.Err()
	}

	return i.Value(), true, i.Err()
}
