package reflects

import "reflect"

// BaseTypeOf returns the type of the given value with every pointer indirection removed.
func BaseTypeOf(i interface{}) reflect.Type {
	t := reflect.TypeOf(i)

	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}
