package iterators

import (
	"github.com/adamluzsi/wordseq"
)

// NewMock returns a test double around the given iterator.
// Until a Stub* field is replaced, every call falls through to the wrapped iterator,
// so a test can break exactly one behavior (a failing Close, a stuck Next)
// while the rest of the traversal stays real.
func NewMock[T any](i wordseq.Iterator[T]) *Mock[T] {
	return &Mock[T]{
		Iterator:  i,
		StubValue: i.Value,
		StubClose: i.Close,
		StubNext:  i.Next,
		StubErr:   i.Err,
	}
}

type Mock[T any] struct {
	Iterator  wordseq.Iterator[T]
	StubValue func() T
	StubClose func() error
	StubNext  func() bool
	StubErr   func() error
}

func (m *Mock[T]) Close() error {
	return m.StubClose()
}

func (m *Mock[T]) Next() bool {
	return m.StubNext()
}

func (m *Mock[T]) Err() error {
	return m.StubErr()
}

func (m *Mock[T]) Value() T {
	return m.StubValue()
}

// ResetClose puts back the wrapped iterator's Close behavior.
func (m *Mock[T]) ResetClose() {
	m.StubClose = m.Iterator.Close
}

// ResetNext puts back the wrapped iterator's Next behavior.
func (m *Mock[T]) ResetNext() {
	m.StubNext = m.Iterator.Next
}

// ResetErr puts back the wrapped iterator's Err behavior.
func (m *Mock[T]) ResetErr() {
	m.StubErr = m.Iterator.Err
}

// ResetValue puts back the wrapped iterator's Value behavior.
func (m *Mock[T]) ResetValue() {
	m.StubValue = m.Iterator.Value
}
