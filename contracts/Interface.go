package contracts

import "testing"

// Interface represent a behavior specification, also known as "contract".
//
// A contract ties the supplier and the consumer side of an abstraction together
// without naming any concrete implementation.
// The expectations a consumer has towards a sequence or a cursor
// are expressed purely through observable behavior,
// so any supplier, in repo or third party, can run the contract
// against its own implementation and prove it traverses like the rest.
//
type Interface interface {
	Test(t *testing.T)
	Benchmark(b *testing.B)
}

// Run executes the received contracts with the given testing runner.
func Run(tb testing.TB, contracts ...Interface) {
	for _, c := range contracts {
		c := c
		switch tb := tb.(type) {
		case *testing.T:
			c.Test(tb)
		case *testing.B:
			c.Benchmark(tb)
		default:
			tb.Fatalf(`unknown test runner type: %T`, tb)
		}
	}
}
