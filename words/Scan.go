package words

import (
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/adamluzsi/wordseq"
	"github.com/adamluzsi/wordseq/iterators"
)

// FromReader returns a streaming word cursor over the reader's content.
// Tokens are produced as the input is consumed, so the full text never has to fit in memory.
// When the reader is an io.ReadCloser, closing the cursor closes the reader as well.
// Read failures surface through Err after Next reported false.
func FromReader(r io.Reader) wordseq.Iterator[string] {
	i := iterators.NewScanner[string](r)
	i.Split(ScanWordRuns)
	return i
}

// ScanWordRuns is a bufio.SplitFunc that returns each maximal word-character run of the input.
// It follows the shape of bufio.ScanWords with the boundary class inverted:
// anything that is not a letter, digit or underscore separates tokens.
// Runs that cross the read buffer boundary are kept whole by requesting more data.
func ScanWordRuns(data []byte, atEOF bool) (advance int, token []byte, err error) {
	// Skip everything before the run.
	start := 0
	for start < len(data) {
		if !atEOF && !utf8.FullRune(data[start:]) {
			return start, nil, nil
		}
		r, width := utf8.DecodeRune(data[start:])
		if isWordRune(r) {
			break
		}
		start += width
	}

	// Scan until the run ends.
	for i := start; i < len(data); {
		if !atEOF && !utf8.FullRune(data[i:]) {
			return start, nil, nil
		}
		r, width := utf8.DecodeRune(data[i:])
		if !isWordRune(r) {
			return i + width, data[start:i], nil
		}
		i += width
	}

	// A final word run terminated by the end of the input.
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	// Request more data.
	return start, nil, nil
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
