package contracts_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/wordseq/contracts"
)

var _ = []contracts.Interface{
	contracts.Iterator[string]{},
	contracts.Iterable[string]{},
}

func TestRun(t *testing.T) {
	t.Run(`when TB is *testing.T`, func(t *testing.T) {
		c := &dispatchContract{}
		contracts.Run(&testing.T{}, c)
		require.True(t, c.TestWasCalled)
		require.False(t, c.BenchmarkWasCalled)
	})

	t.Run(`when TB is *testing.B`, func(t *testing.T) {
		c := &dispatchContract{}
		contracts.Run(&testing.B{}, c)
		require.False(t, c.TestWasCalled)
		require.True(t, c.BenchmarkWasCalled)
	})

	t.Run(`when TB is a custom testing implementation`, func(t *testing.T) {
		c := &dispatchContract{}
		tb := &customTB{}
		contracts.Run(tb, c)
		require.False(t, c.TestWasCalled)
		require.False(t, c.BenchmarkWasCalled)
		require.True(t, tb.fatalfWasCalled)
	})
}

type customTB struct {
	testing.TB
	fatalfWasCalled bool
}

func (tb *customTB) Fatalf(format string, args ...interface{}) {
	tb.fatalfWasCalled = true
}

type dispatchContract struct {
	TestWasCalled      bool
	BenchmarkWasCalled bool
}

func (c *dispatchContract) Test(t *testing.T) {
	c.TestWasCalled = true
}

func (c *dispatchContract) Benchmark(b *testing.B) {
	c.BenchmarkWasCalled = true
}
