package words

import (
	"regexp"
)

//go:generate mockgen -destination Tokenizer_mocks_test.go -source Tokenizer.go -package words_test

// Tokenizer splits a source text into its ordered word tokens.
// Implementations decide what counts as a token boundary.
type Tokenizer interface {
	Tokenize(text string) []string
}

// TokenizerFunc is a function type that implements the Tokenizer interface.
type TokenizerFunc func(text string) []string

func (fn TokenizerFunc) Tokenize(text string) []string {
	return fn(text)
}

// Pattern matches one maximal run of word characters:
// Unicode letters, digits and the underscore.
var Pattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// DefaultTokenizer is the Pattern based Tokenizer used by New.
var DefaultTokenizer Tokenizer = TokenizerFunc(Split)

// Split returns the word tokens of the text in source order.
// Text without any word character yields no tokens.
func Split(text string) []string {
	return Pattern.FindAllString(text, -1)
}
