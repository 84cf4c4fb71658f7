package schema

import (
	"github.com/adamluzsi/wordseq"
	"github.com/adamluzsi/wordseq/iterators"
)

// Record is a value holder shaped by a Schema.
// Values live in an internal key-value store that is only reachable
// through the accessors, so every write passes the schema's constraints.
type Record struct {
	schema *Schema
	values map[string]interface{}
}

// Schema returns the schema the record is bound to.
func (r *Record) Schema() *Schema { return r.schema }

// Set stores the value under the named field.
// Unknown fields and constraint violations are rejected,
// and a rejected Set leaves the store untouched.
func (r *Record) Set(field string, value interface{}) error {
	f, ok := r.schema.LookupField(field)
	if !ok {
		return UnknownFieldError{Schema: r.schema.Name(), Field: field}
	}
	if err := f.Check(value); err != nil {
		return err
	}

	r.values[field] = value
	return nil
}

// Lookup returns the stored value of the named field.
func (r *Record) Lookup(field string) (interface{}, bool) {
	value, ok := r.values[field]
	return value, ok
}

// Get returns the stored value of the named field, or nil when it was never set.
func (r *Record) Get(field string) interface{} {
	return r.values[field]
}

// Values returns a copy of the store.
func (r *Record) Values() map[string]interface{} {
	vs := make(map[string]interface{}, len(r.values))
	for k, v := range r.values {
		vs[k] = v
	}
	return vs
}

// FieldValue is one set field of a Record.
type FieldValue struct {
	Name  string
	Value interface{}
}

// Iterate begins a traversal over the set fields in schema declaration order.
// The traversal reflects the store as it stood when Iterate was called.
func (r *Record) Iterate() wordseq.Iterator[FieldValue] {
	fvs := make([]FieldValue, 0, len(r.values))
	for _, f := range r.schema.fields {
		if value, ok := r.values[f.Name()]; ok {
			fvs = append(fvs, FieldValue{Name: f.Name(), Value: value})
		}
	}
	return iterators.Slice(fvs)
}
