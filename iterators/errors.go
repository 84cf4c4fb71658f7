package iterators

import (
	"github.com/adamluzsi/wordseq"
)

const (
	// Break can be returned from a ForEach block to stop the iteration early without an error.
	Break wordseq.Error = `iterators:break`
)
