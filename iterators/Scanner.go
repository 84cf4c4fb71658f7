package iterators

import (
	"bufio"
	"io"
)

// NewScanner returns an iterator over the splits of the reader's content.
// The reader is consumed as the traversal advances, one split per Next,
// so the whole input never has to fit in memory.
// It splits on lines until Split installs another boundary rule.
func NewScanner[T string | []byte](r io.Reader) *Scanner[T] {
	return &Scanner[T]{scanner: bufio.NewScanner(r), reader: r}
}

type Scanner[T string | []byte] struct {
	scanner *bufio.Scanner
	reader  io.Reader

	value T
}

// Split installs the bufio.SplitFunc that decides where one value ends and the next begins.
// It must be called before the first Next.
func (i *Scanner[T]) Split(split bufio.SplitFunc) {
	i.scanner.Split(split)
}

func (i *Scanner[T]) Next() bool {
	if i.scanner.Err() != nil {
		return false
	}
	if !i.scanner.Scan() {
		return false
	}
	var zero T
	switch any(zero).(type) {
	case string:
		i.value = T(i.scanner.Text())
	case []byte:
		i.value = T(i.scanner.Bytes())
	}
	return true
}

func (i *Scanner[T]) Err() error {
	return i.scanner.Err()
}

// Close releases the input when the traversal owns a closable one.
func (i *Scanner[T]) Close() error {
	rc, ok := i.reader.(io.ReadCloser)
	if !ok {
		return nil
	}
	return rc.Close()
}

func (i *Scanner[T]) Value() T {
	return i.value
}
