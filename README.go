/*

Package wordseq provides independently traversable word sequences.

The package is organized around a single idea:
a container that holds an ordered sequence of words should hand out a new,
stateless-to-the-outside traversal object every time someone asks for one,
and any number of such traversals must be able to run side by side without
stepping on each other's position.

The root package holds only the capability contracts (Iterator, Iterable),
so consumers can depend on the traversal behavior without knowing whether
the words come from a pre-split slice, a lazy re-scan of the source text,
a producer goroutine or an io.Reader.

	github.com/adamluzsi/wordseq/words      the word Sequence and its traversal strategies
	github.com/adamluzsi/wordseq/iterators  iterator implementations and combinators
	github.com/adamluzsi/wordseq/schema     explicit type metadata registration and records
	github.com/adamluzsi/wordseq/contracts  reusable behavior specifications for the contracts here

Resources

https://golang.org/pkg/encoding/json/#Decoder
https://en.wikipedia.org/wiki/Iterator_pattern

*/
package wordseq
