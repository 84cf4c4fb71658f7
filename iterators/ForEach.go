package iterators

import (
	"github.com/adamluzsi/wordseq"
)

// ForEach executes the block for every value of the iterator, then closes the iterator.
// Returning Break from the block stops the iteration early without an error.
func ForEach[T any](i wordseq.Iterator[T], blk func(T) error) (rErr error) {
	defer func() {
		cErr := i.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()

	for i.Next() {
		if err := blk(i.Value()); err != nil {
			if err == Break {
				break
			}
			return err
		}
	}

	return i.Err()
}
