package iterators

import (
	"github.com/adamluzsi/wordseq"
)

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
// Like when you read words from an input stream,
// and then you map the word to a certain data structure,
// in order to not expose what steps needed in order to interpret the input stream.
func Map[To any, From any](i wordseq.Iterator[From], transform func(From) (To, error)) *MapIter[To, From] {
	return &MapIter[To, From]{Iterator: i, Transform: transform}
}

type MapIter[To any, From any] struct {
	Iterator  wordseq.Iterator[From]
	Transform func(From) (To, error)

	err   error
	value To
}

func (i *MapIter[To, From]) Close() error {
	return i.Iterator.Close()
}

func (i *MapIter[To, From]) Next() bool {
	if i.err != nil {
		return false
	}
	if !i.Iterator.Next() {
		return false
	}
	v, err := i.Transform(i.Iterator.Value())
	if err != nil {
		i.err = err
		return false
	}
	i.value = v
	return true
}

func (i *MapIter[To, From]) Err() error {
	if i.err != nil {
		return i.err
	}
	return i.Iterator.Err()
}

func (i *MapIter[To, From]) Value() To {
	return i.value
}
