package schema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/wordseq/fixtures"
	"github.com/adamluzsi/wordseq/schema"
)

var _ schema.Constraint = schema.ConstraintFunc(nil)

func TestNonBlank(t *testing.T) {
	t.Parallel()

	subject := schema.NonBlank()

	t.Run(`when the value holds visible characters`, func(t *testing.T) {
		require.Nil(t, subject.Check(`overlapping`))
	})

	t.Run(`when the value is empty`, func(t *testing.T) {
		require.Equal(t, schema.ErrBlank, subject.Check(``))
	})

	t.Run(`when the value is whitespace only`, func(t *testing.T) {
		require.Equal(t, schema.ErrBlank, subject.Check(" \t\n"))
	})

	t.Run(`when the value is not a string`, func(t *testing.T) {
		require.Equal(t, schema.WrongTypeError{Want: `string`, Got: `int`}, subject.Check(42))
	})
}

func TestPositive(t *testing.T) {
	t.Parallel()

	subject := schema.Positive()

	t.Run(`when the number is greater than zero`, func(t *testing.T) {
		require.Nil(t, subject.Check(1))
		require.Nil(t, subject.Check(uint8(2)))
		require.Nil(t, subject.Check(0.5))
	})

	t.Run(`when the number is zero`, func(t *testing.T) {
		require.Equal(t, schema.ErrNotPositive, subject.Check(0))
	})

	t.Run(`when the number is negative`, func(t *testing.T) {
		require.Equal(t, schema.ErrNotPositive, subject.Check(-3))
		require.Equal(t, schema.ErrNotPositive, subject.Check(-0.1))
	})

	t.Run(`when the value is not a number`, func(t *testing.T) {
		require.Equal(t, schema.WrongTypeError{Want: `number`, Got: `string`}, subject.Check(`one`))
	})
}

func TestNonNegative(t *testing.T) {
	t.Parallel()

	subject := schema.NonNegative()

	t.Run(`when the number is zero or above`, func(t *testing.T) {
		require.Nil(t, subject.Check(0))
		require.Nil(t, subject.Check(uint(0)))
		require.Nil(t, subject.Check(11))
		require.Nil(t, subject.Check(1.5))
	})

	t.Run(`when the number is negative`, func(t *testing.T) {
		require.Equal(t, schema.ErrNegative, subject.Check(-1))
	})

	t.Run(`when the value is not a number`, func(t *testing.T) {
		require.Equal(t, schema.WrongTypeError{Want: `number`, Got: `bool`}, subject.Check(true))
	})
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	subject := schema.OneOf(`noun`, `verb`, `adjective`)

	t.Run(`when the value is among the allowed ones`, func(t *testing.T) {
		require.Nil(t, subject.Check(`noun`))
		require.Nil(t, subject.Check(`adjective`))
		require.Nil(t, subject.Check(fixtures.RandomElementFromSlice([]string{`noun`, `verb`, `adjective`})))
	})

	t.Run(`when the value is not allowed`, func(t *testing.T) {
		require.Equal(t, schema.NotAllowedError{Value: `adverb`}, subject.Check(`adverb`))
	})

	t.Run(`when the value only differs in type`, func(t *testing.T) {
		require.Equal(t, schema.NotAllowedError{Value: 42}, schema.OneOf(42.0).Check(42))
	})
}

func TestConstraintFunc(t *testing.T) {
	t.Parallel()

	expected := errors.New(`boom`)
	var received interface{}

	subject := schema.ConstraintFunc(func(value interface{}) error {
		received = value
		return expected
	})

	require.Equal(t, expected, subject.Check(42))
	require.Equal(t, 42, received)
}
