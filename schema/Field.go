package schema

// NewField returns an immutable field definition.
func NewField(name string, cs ...Constraint) Field {
	return Field{name: name, constraints: append([]Constraint{}, cs...)}
}

// Field is a named slot of a Schema, guarded by its constraints.
type Field struct {
	name        string
	constraints []Constraint
}

// Name returns the field name.
func (f Field) Name() string { return f.name }

// Constraints returns a copy of the field's constraints.
func (f Field) Constraints() []Constraint {
	return append([]Constraint{}, f.constraints...)
}

// Check runs the value through every constraint of the field.
// The first violation wins and is returned wrapped together with the field name.
func (f Field) Check(value interface{}) error {
	for _, c := range f.constraints {
		if err := c.Check(value); err != nil {
			return ConstraintError{Field: f.name, Cause: err}
		}
	}
	return nil
}
