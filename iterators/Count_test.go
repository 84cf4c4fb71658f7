package iterators_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/wordseq/iterators"
)

func TestCount_IteratorGiven_AllTheRecordsCounted(t *testing.T) {
	t.Parallel()

	i := iterators.NewScanner[string](strings.NewReader("Hello\nWorld"))
	total, err := iterators.Count[string](i)

	require.Nil(t, err)
	require.Equal(t, 2, total)
}

func TestCount_EmptyIteratorGiven_ZeroReturned(t *testing.T) {
	t.Parallel()

	total, err := iterators.Count[any](iterators.Empty[any]())

	require.Nil(t, err)
	require.Equal(t, 0, total)
}

func TestCount_AfterCounting_IteratorIsClosed(t *testing.T) {
	t.Parallel()

	i := iterators.NewMock[int](iterators.Slice([]int{1, 2, 3}))

	closed := false
	i.StubClose = func() error {
		closed = true
		return nil
	}

	_, err := iterators.Count[int](i)
	require.Nil(t, err)
	require.True(t, closed)
}
