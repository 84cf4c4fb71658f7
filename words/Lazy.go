package words

import (
	"github.com/adamluzsi/wordseq"
)

// Lazy returns a sequence over the text that defers tokenization to traversal time.
// Nothing is scanned up front: each advance of a cursor finds the next word run
// in the remaining text. Externally the cursors behave exactly like the ones of New.
func Lazy(text string) *LazySequence {
	return &LazySequence{Text: text}
}

type LazySequence struct {
	Text string
}

// Iterate begins a traversal with a fresh re-scan cursor.
func (s *LazySequence) Iterate() wordseq.Iterator[string] {
	return &lazyCursor{rest: s.Text}
}

type lazyCursor struct {
	rest   string
	value  string
	closed bool
}

func (c *lazyCursor) Close() error {
	c.closed = true
	return nil
}

func (c *lazyCursor) Err() error {
	return nil
}

func (c *lazyCursor) Next() bool {
	if c.closed {
		return false
	}

	loc := Pattern.FindStringIndex(c.rest)
	if loc == nil {
		c.rest = ``
		return false
	}

	c.value = c.rest[loc[0]:loc[1]]
	c.rest = c.rest[loc[1]:]
	return true
}

func (c *lazyCursor) Value() string {
	return c.value
}
