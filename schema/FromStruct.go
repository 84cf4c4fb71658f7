package schema

import (
	"reflect"
	"strings"

	"github.com/adamluzsi/wordseq/reflects"
)

// FromStruct derives a Schema from the struct fields that carry the `field` tag.
//
//	type WordStat struct {
//		Word  string `field:"word,nonblank"`
//		Count int    `field:"count,nonnegative"`
//	}
//
// Fields keep their struct declaration order.
// Embedded, unexported, untagged and `field:"-"` fields are ignored.
// The tag's name part defaults to the lowered Go field name when left empty,
// and the schema itself is named after the type's symbolic name.
func FromStruct(T interface{}) (*Schema, error) {
	rt := reflects.BaseTypeOf(T)
	if rt.Kind() != reflect.Struct {
		return nil, NotStructError{Got: rt.String()}
	}

	fields := make([]Field, 0, rt.NumField())
	for _, tf := range taggedFieldsOf(rt) {
		f, err := tf.parse()
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	return New(reflects.SymbolicName(T), fields...)
}

type taggedField struct {
	index  int
	goName string
	tag    string
}

func taggedFieldsOf(rt reflect.Type) []taggedField {
	var tfs []taggedField
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.Anonymous || sf.PkgPath != `` {
			continue
		}
		tag, ok := sf.Tag.Lookup(`field`)
		if !ok || tag == `-` {
			continue
		}
		tfs = append(tfs, taggedField{index: i, goName: sf.Name, tag: tag})
	}
	return tfs
}

func (tf taggedField) name() string {
	name := strings.TrimSpace(strings.Split(tf.tag, `,`)[0])
	if name == `` {
		name = strings.ToLower(tf.goName)
	}
	return name
}

func (tf taggedField) parse() (Field, error) {
	parts := strings.Split(tf.tag, `,`)

	var cs []Constraint
	for _, opt := range parts[1:] {
		switch strings.TrimSpace(opt) {
		case `nonblank`:
			cs = append(cs, NonBlank())
		case `positive`:
			cs = append(cs, Positive())
		case `nonnegative`:
			cs = append(cs, NonNegative())
		default:
			return Field{}, UnknownConstraintError{Name: strings.TrimSpace(opt)}
		}
	}

	return NewField(tf.name(), cs...), nil
}
