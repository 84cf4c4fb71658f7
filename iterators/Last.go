package iterators

import (
	"github.com/adamluzsi/wordseq"
)

// Last consumes the iterator, returns its last value and closes the iterator.
// When the iterator was empty, found is false.
func Last[T any](i wordseq.Iterator[T]) (value T, found bool, err error) {
	defer func() {
		cErr := i.Close()

		if err == nil {
			err = cErr
		}
	}()

	iterated := false

	for i.Next() {
		iterated = true
		value = i.Value()
	}

	if err := i.Err(); err != nil {
		return value, false, err
	}

	return value, iterated, nil
}
