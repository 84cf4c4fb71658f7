package contracts

import (
	"testing"

	"github.com/adamluzsi/testcase"
	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/wordseq"
)

// Iterable is the contract for values that can be traversed any number of times.
//
// Subject must return the sequence under test,
// together with the values every traversal is expected to yield, in order.
type Iterable[V any] struct {
	Subject func(tb testing.TB) (wordseq.Iterable[V], []V)
}

func (spec Iterable[V]) Test(t *testing.T) {
	t.Run(`cursors made by Iterate honor the Iterator contract`, func(t *testing.T) {
		Iterator[V]{Subject: func(tb testing.TB) (wordseq.Iterator[V], []V) {
			iterable, expected := spec.Subject(tb)
			return iterable.Iterate(), expected
		}}.Test(t)
	})

	s := testcase.NewSpec(t)
	s.Parallel()

	s.Describe(`Iterate`, func(s *testcase.Spec) {
		s.Then(`every traversal yields the same values from the start`, func(t *testcase.T) {
			iterable, expected := spec.Subject(t.T)

			for i := 0; i < 3; i++ {
				assertTraversal(t, iterable.Iterate(), expected)
			}
		})

		s.Then(`cursors of the same sequence do not disturb each other`, func(t *testcase.T) {
			iterable, expected := spec.Subject(t.T)

			one := iterable.Iterate()
			defer one.Close()

			if one.Next() {
				require.Equal(t, expected[0], one.Value())
			}

			// a cursor begun later still sees the whole sequence from the start
			assertTraversal(t, iterable.Iterate(), expected)

			// while the first cursor continues from where it stood
			rest := make([]V, 0)
			for one.Next() {
				rest = append(rest, one.Value())
			}
			require.Nil(t, one.Err())

			if len(expected) == 0 {
				require.Len(t, rest, 0)
				return
			}
			require.Equal(t, len(expected)-1, len(rest))
			for i := range rest {
				require.Equal(t, expected[i+1], rest[i])
			}
		})
	})
}

func (spec Iterable[V]) Benchmark(b *testing.B) {
	b.Run(`Iterable`, func(b *testing.B) {
		iterable, _ := spec.Subject(b)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			iter := iterable.Iterate()
			for iter.Next() {
				_ = iter.Value()
			}
			require.Nil(b, iter.Err())
			require.Nil(b, iter.Close())
		}
	})
}
