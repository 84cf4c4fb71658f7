package schema

import "strings"

// New returns an immutable Schema made of the given fields.
// Field names must be filled and unique within the schema.
func New(name string, fields ...Field) (*Schema, error) {
	if strings.TrimSpace(name) == `` {
		return nil, ErrBlankSchemaName
	}

	s := &Schema{
		name:   name,
		fields: append([]Field{}, fields...),
		index:  make(map[string]int, len(fields)),
	}

	for i, f := range s.fields {
		if strings.TrimSpace(f.Name()) == `` {
			return nil, ErrBlankFieldName
		}
		if _, ok := s.index[f.Name()]; ok {
			return nil, DuplicateFieldError{Field: f.Name()}
		}
		s.index[f.Name()] = i
	}

	return s, nil
}

// Schema is an immutable type metadata record:
// a name plus field definitions in declaration order.
type Schema struct {
	name   string
	fields []Field
	index  map[string]int
}

// Name returns the schema name.
func (s *Schema) Name() string { return s.name }

// Len returns the number of declared fields.
func (s *Schema) Len() int { return len(s.fields) }

// FieldNames returns the field names in declaration order.
func (s *Schema) FieldNames() []string {
	names := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		names = append(names, f.Name())
	}
	return names
}

// Fields returns a copy of the field definitions in declaration order.
func (s *Schema) Fields() []Field {
	return append([]Field{}, s.fields...)
}

// LookupField returns the named field definition.
func (s *Schema) LookupField(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// NewRecord returns an empty record bound to this schema.
func (s *Schema) NewRecord() *Record {
	return &Record{schema: s, values: make(map[string]interface{})}
}
