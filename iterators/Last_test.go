package iterators_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/wordseq/iterators"
)

func TestLast_NextValueGiven_TheLastNextValueReturned(t *testing.T) {
	t.Parallel()

	var expected = 42

	i := iterators.NewMock[int](iterators.Slice([]int{4, 2, expected}))

	actually, found, err := iterators.Last[int](i)
	require.Nil(t, err)
	require.True(t, found)
	require.Equal(t, expected, actually)
}

func TestLast_AfterLastValueTaken_IteratorIsClosed(t *testing.T) {
	t.Parallel()

	i := iterators.NewMock[Entity](iterators.Slice([]Entity{{Text: "hy!"}}))

	closed := false
	i.StubClose = func() error {
		closed = true
		return nil
	}

	_, _, err := iterators.Last[Entity](i)
	require.Nil(t, err)
	require.True(t, closed)
}

func TestLast_errors(t *testing.T) {
	FirstAndLastSharedErrorTestCases(t, iterators.Last[Entity])
}

func TestLast_WhenNextSayThereIsNoValueToBeTaken_NotFoundReturnedWithoutError(t *testing.T) {
	t.Parallel()

	_, found, err := iterators.Last[Entity](iterators.Empty[Entity]())
	require.Nil(t, err)
	require.False(t, found)
}
