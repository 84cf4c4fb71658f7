package wordseq_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/wordseq"
)

var _ error = wordseq.Error(``)

func TestError_DeclarableAsConstant(t *testing.T) {
	const expected wordseq.Error = `arbitrary failure cause`

	var err error = expected
	require.Equal(t, `arbitrary failure cause`, err.Error())
	require.True(t, errors.Is(err, expected))
}
