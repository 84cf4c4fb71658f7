package reflects

import (
	"reflect"
)

// BaseValueOf returns the value of the given interface with every pointer indirection removed.
func BaseValueOf(i interface{}) reflect.Value {
	v := reflect.ValueOf(i)

	for v.Type().Kind() == reflect.Ptr {
		v = v.Elem()
	}

	return v
}
