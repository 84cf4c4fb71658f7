package schema

import (
	"reflect"
	"sync"

	"github.com/adamluzsi/wordseq/reflects"
)

var (
	registryMutex sync.RWMutex
	registry      = make(map[reflect.Type]*Schema)
)

// Register binds the schema to the base type of T.
// It is meant to run once per type, during program initialization.
// The returned function removes the binding and is safe to call any number of times,
// which keeps cleanup simple in tests.
func Register(T interface{}, s *Schema) (func(), error) {
	key := reflects.BaseTypeOf(T)

	registryMutex.Lock()
	defer registryMutex.Unlock()

	if _, ok := registry[key]; ok {
		return nil, AlreadyRegisteredError{Type: reflects.SymbolicName(T)}
	}
	registry[key] = s

	var once sync.Once
	unregister := func() {
		once.Do(func() {
			registryMutex.Lock()
			defer registryMutex.Unlock()
			delete(registry, key)
		})
	}
	return unregister, nil
}

// RegisterStruct derives the schema of T from its struct tags and registers it.
func RegisterStruct(T interface{}) (func(), error) {
	s, err := FromStruct(T)
	if err != nil {
		return nil, err
	}
	return Register(T, s)
}

// Lookup returns the schema registered for the base type of T.
func Lookup(T interface{}) (*Schema, bool) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	s, ok := registry[reflects.BaseTypeOf(T)]
	return s, ok
}

// Validate checks the struct value against its registered schema:
// every tagged field's value must pass the constraints
// the schema holds for the field of that name.
func Validate(v interface{}) error {
	s, ok := Lookup(v)
	if !ok {
		return NotRegisteredError{Type: reflects.SymbolicName(v)}
	}

	rv := reflects.BaseValueOf(v)
	if rv.Kind() != reflect.Struct {
		return NotStructError{Got: rv.Type().String()}
	}

	for _, tf := range taggedFieldsOf(rv.Type()) {
		f, ok := s.LookupField(tf.name())
		if !ok {
			continue
		}
		if err := f.Check(rv.Field(tf.index).Interface()); err != nil {
			return err
		}
	}
	return nil
}
