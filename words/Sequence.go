package words

import (
	"fmt"

	"github.com/adamluzsi/wordseq"
	"github.com/adamluzsi/wordseq/iterators"
)

// New returns a Sequence over the word tokens of the given text,
// extracted eagerly with the DefaultTokenizer.
func New(text string) *Sequence {
	return NewWith(text, DefaultTokenizer)
}

// NewWith returns a Sequence whose tokens are extracted with the given Tokenizer.
// The tokenizer runs once, at construction time.
func NewWith(text string, t Tokenizer) *Sequence {
	return &Sequence{text: text, words: t.Tokenize(text)}
}

// Sequence is an immutable, ordered collection of word tokens.
// Traversals never mutate it, and each traversal owns its position exclusively.
type Sequence struct {
	text  string
	words []string
}

// Len returns the token count.
func (s *Sequence) Len() int {
	return len(s.words)
}

// Words returns a copy of the token list in sequence order.
func (s *Sequence) Words() []string {
	ws := make([]string, len(s.words))
	copy(ws, s.words)
	return ws
}

func (s *Sequence) String() string {
	return fmt.Sprintf("words.Sequence(%q)", abbreviate(s.text, 30))
}

// Iterate begins a traversal.
// The returned cursor holds its own position starting at the first token,
// independent of every other cursor over this sequence.
func (s *Sequence) Iterate() wordseq.Iterator[string] {
	return iterators.Slice(s.words)
}

// Generate begins a traversal backed by a producer goroutine.
// The producer is suspended on each token until the cursor asks for the next one,
// and it terminates when the cursor is closed early.
// Externally it behaves exactly like the cursor Iterate returns.
func (s *Sequence) Generate() wordseq.Iterator[string] {
	in, out := iterators.Pipe[string]()

	go func() {
		defer in.Close()

		for _, w := range s.words {
			if !in.Value(w) {
				return
			}
		}
	}()

	return out
}

func abbreviate(text string, max int) string {
	rs := []rune(text)
	if len(rs) <= max {
		return text
	}
	return string(rs[:max-3]) + `...`
}
