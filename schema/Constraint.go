package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// Constraint guards the values a field accepts.
type Constraint interface {
	// Check returns nil when the value is acceptable, the violation cause otherwise.
	Check(value interface{}) error
}

// ConstraintFunc is a wrapper to convert standalone functions into a valid Constraint.
type ConstraintFunc func(value interface{}) error

// Check implements the Constraint interface.
func (fn ConstraintFunc) Check(value interface{}) error {
	return fn(value)
}

// NonBlank accepts strings that hold at least one non whitespace character.
func NonBlank() Constraint {
	return ConstraintFunc(func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return WrongTypeError{Want: `string`, Got: fmt.Sprintf(`%T`, value)}
		}
		if strings.TrimSpace(s) == `` {
			return ErrBlank
		}
		return nil
	})
}

// Positive accepts numbers greater than zero.
func Positive() Constraint {
	return ConstraintFunc(func(value interface{}) error {
		n, err := asNumber(value)
		if err != nil {
			return err
		}
		if n <= 0 {
			return ErrNotPositive
		}
		return nil
	})
}

// NonNegative accepts numbers greater than or equal to zero.
func NonNegative() Constraint {
	return ConstraintFunc(func(value interface{}) error {
		n, err := asNumber(value)
		if err != nil {
			return err
		}
		if n < 0 {
			return ErrNegative
		}
		return nil
	})
}

// OneOf accepts values equal to one of the allowed values.
func OneOf(values ...interface{}) Constraint {
	allowed := append([]interface{}{}, values...)
	return ConstraintFunc(func(value interface{}) error {
		for _, a := range allowed {
			if reflect.DeepEqual(a, value) {
				return nil
			}
		}
		return NotAllowedError{Value: value}
	})
}

// sign checks only need the magnitude class, so one float carries every numeric kind
func asNumber(value interface{}) (float64, error) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	default:
		return 0, WrongTypeError{Want: `number`, Got: fmt.Sprintf(`%T`, value)}
	}
}
