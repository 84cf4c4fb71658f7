/*

Package words provides an immutable word sequence with independently-stateful traversals.

A Sequence is built once from a source text and never mutated afterwards.
Every call to Iterate returns a fresh cursor with its own position,
so any number of traversals can be in flight over the same sequence
without affecting each other.

The same external contract is available through interchangeable strategies:

	words.New(text).Iterate()    eager tokenization, position cursor
	words.New(text).Generate()   producer goroutine, suspended between values
	words.Lazy(text).Iterate()   tokenization deferred to each advance
	words.FromReader(r)          streaming cursor over an io.Reader

A token is a maximal contiguous run of word characters,
that is Unicode letters, digits and the underscore.
Punctuation, spacing and any other rune act as token boundary only,
they are never part of a token.
Input without any word character yields a sequence of length zero,
whose cursors are immediately exhausted.
This is the normal end-of-sequence signal and not an error.

*/
package words
