package contracts

import (
	"testing"

	"github.com/adamluzsi/testcase"
	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/wordseq"
)

// Iterator is the contract every cursor implementation must honor.
//
// Subject must return a fresh, unconsumed cursor on every call,
// together with the values a complete traversal is expected to yield, in order.
// A cursor is single use, so each expectation works on its own subject.
type Iterator[V any] struct {
	Subject func(tb testing.TB) (wordseq.Iterator[V], []V)
}

func (spec Iterator[V]) Test(t *testing.T) {
	s := testcase.NewSpec(t)
	s.Parallel()

	s.Describe(`Next and Value`, func(s *testcase.Spec) {
		s.Then(`the traversal yields the expected values in order`, func(t *testcase.T) {
			iter, expected := spec.Subject(t.T)

			assertTraversal(t, iter, expected)
		})

		s.Then(`the end of the sequence is a terminal state`, func(t *testcase.T) {
			iter, _ := spec.Subject(t.T)
			defer iter.Close()

			for iter.Next() {
			}

			for i := 0; i < 42; i++ {
				require.False(t, iter.Next())
			}
		})
	})

	s.Describe(`Err`, func(s *testcase.Spec) {
		s.Then(`a finished healthy traversal reports no error, no matter how many times asked`, func(t *testcase.T) {
			iter, _ := spec.Subject(t.T)
			defer iter.Close()

			for iter.Next() {
			}

			require.Nil(t, iter.Err())
			require.Nil(t, iter.Err())
		})
	})

	s.Describe(`Close`, func(s *testcase.Spec) {
		s.Then(`closing after the traversal finished reports no error`, func(t *testcase.T) {
			iter, _ := spec.Subject(t.T)

			for iter.Next() {
			}

			require.Nil(t, iter.Err())
			require.Nil(t, iter.Close())
		})

		s.Then(`closing mid traversal still ends the sequence`, func(t *testcase.T) {
			iter, expected := spec.Subject(t.T)

			if len(expected) > 0 {
				require.True(t, iter.Next())
			}
			require.Nil(t, iter.Close())

			// a value can be in flight at the moment of closing,
			// but the traversal must never outgrow the sequence itself
			for n := 1; iter.Next(); n++ {
				require.True(t, n < len(expected))
			}
			require.Nil(t, iter.Err())
		})
	})
}

func (spec Iterator[V]) Benchmark(b *testing.B) {
	b.Run(`Iterator`, func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			iter, _ := spec.Subject(b)
			for iter.Next() {
				_ = iter.Value()
			}
			require.Nil(b, iter.Err())
			require.Nil(b, iter.Close())
		}
	})
}

func assertTraversal[V any](tb require.TestingT, iter wordseq.Iterator[V], expected []V) {
	vs := make([]V, 0, len(expected))
	for iter.Next() {
		vs = append(vs, iter.Value())
	}

	require.Nil(tb, iter.Err())
	require.Nil(tb, iter.Close())
	require.Equal(tb, len(expected), len(vs))
	for i := range expected {
		require.Equal(tb, expected[i], vs[i])
	}
}
