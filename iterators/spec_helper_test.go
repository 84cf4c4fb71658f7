package iterators_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/wordseq"
	"github.com/adamluzsi/wordseq/fixtures"
	"github.com/adamluzsi/wordseq/iterators"
)

type Entity struct {
	Text string
}

type ReadCloser struct {
	IsClosed bool
	io       io.Reader
}

func NewReadCloser(r io.Reader) *ReadCloser {
	return &ReadCloser{io: r, IsClosed: false}
}

func (this *ReadCloser) Read(p []byte) (n int, err error) {
	return this.io.Read(p)
}

func (this *ReadCloser) Close() error {
	if this.IsClosed {
		return errors.New("already closed")
	}

	this.IsClosed = true
	return nil
}

type BrokenReader struct{}

func (b *BrokenReader) Read(p []byte) (n int, err error) { return 0, io.ErrUnexpectedEOF }

func FirstAndLastSharedErrorTestCases(t *testing.T, subject func(wordseq.Iterator[Entity]) (Entity, bool, error)) {
	t.Run("error test-cases", func(t *testing.T) {
		expectedErr := errors.New(fixtures.RandomString(4))

		t.Run("Closing", func(t *testing.T) {
			t.Parallel()

			i := iterators.NewMock[Entity](iterators.SingleValue(Entity{Text: "close"}))

			i.StubClose = func() error { return expectedErr }

			_, _, err := subject(i)
			require.Equal(t, expectedErr, err)
		})

		t.Run("Err", func(t *testing.T) {
			t.Parallel()

			i := iterators.NewMock[Entity](iterators.SingleValue(Entity{Text: "err"}))

			i.StubErr = func() error { return expectedErr }

			_, _, err := subject(i)
			require.Equal(t, expectedErr, err)
		})

		t.Run("Err+Close Err", func(t *testing.T) {
			t.Parallel()

			i := iterators.NewMock[Entity](iterators.SingleValue(Entity{Text: "err"}))

			i.StubErr = func() error { return expectedErr }
			i.StubClose = func() error { return errors.New("unexpected to see this err because it hides the iterator err") }

			_, _, err := subject(i)
			require.Equal(t, expectedErr, err)
		})

		t.Run(`empty iterator with .Err()`, func(t *testing.T) {
			t.Parallel()

			i := iterators.NewError[Entity](expectedErr)

			_, found, err := subject(i)
			require.Equal(t, false, found)
			require.Equal(t, expectedErr, err)
		})
	})
}
