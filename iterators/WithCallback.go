package iterators

import (
	"io"

	"github.com/adamluzsi/wordseq"
)

// WithCallback hooks into the iterator life-cycle events.
// Currently only closing is supported, which is the common place for resource release logic.
func WithCallback[T any](i wordseq.Iterator[T], c Callback) *CallbackIterator[T] {
	return &CallbackIterator[T]{Iterator: i, Callback: c}
}

type Callback struct {
	OnClose func(io.Closer) error
}

type CallbackIterator[T any] struct {
	wordseq.Iterator[T]
	Callback
}

func (i *CallbackIterator[T]) Close() error {
	if i.Callback.OnClose != nil {
		return i.Callback.OnClose(i.Iterator)
	}
	return i.Iterator.Close()
}
