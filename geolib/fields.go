package geolib

import (
	"bytes"
	"fmt"
)

// Field is one of the known geo columns which can be projected out of
// a database record.
type Field uint8

const (
	FieldCountry Field = iota + 1
	FieldCity
	FieldState
	FieldPostcode
	FieldLatitude
	FieldLongitude
	FieldAccuracyRadius
)

// DefaultFields are used by callers which do not specify any field
// explicitly.
var DefaultFields = []Field{FieldCountry, FieldCity}

// AllFields lists every known field in a stable order.
var AllFields = []Field{
	FieldCountry,
	FieldCity,
	FieldState,
	FieldPostcode,
	FieldLatitude,
	FieldLongitude,
	FieldAccuracyRadius,
}

// pathStep is either a map key or, if key is empty, an array index.
type pathStep struct {
	key   string
	index int
}

type fieldDescription struct {
	name string
	kind ValueKind
	path []pathStep
}

func key(name string) pathStep {
	return pathStep{key: name}
}

func index(idx int) pathStep {
	return pathStep{index: idx}
}

var fieldDescriptions = map[Field]fieldDescription{
	FieldCountry: {
		name: "country",
		kind: ValueString,
		path: []pathStep{key("country"), key("iso_code")},
	},
	FieldCity: {
		name: "city",
		kind: ValueString,
		path: []pathStep{key("city"), key("names"), key("en")},
	},
	FieldState: {
		name: "state",
		kind: ValueString,
		path: []pathStep{key("subdivisions"), index(0), key("iso_code")},
	},
	FieldPostcode: {
		name: "postcode",
		kind: ValueString,
		path: []pathStep{key("postal"), key("code")},
	},
	FieldLatitude: {
		name: "latitude",
		kind: ValueFloat,
		path: []pathStep{key("location"), key("latitude")},
	},
	FieldLongitude: {
		name: "longitude",
		kind: ValueFloat,
		path: []pathStep{key("location"), key("longitude")},
	},
	FieldAccuracyRadius: {
		name: "accuracy_radius",
		kind: ValueInt,
		path: []pathStep{key("location"), key("accuracy_radius")},
	},
}

var fieldNames = func() map[string]Field {
	rv := make(map[string]Field, len(fieldDescriptions))

	for k, v := range fieldDescriptions {
		rv[v.name] = k
	}

	return rv
}()

// String returns a canonical name of the field. This name is also used
// as a column name in tables.
func (f Field) String() string {
	return fieldDescriptions[f].name
}

// Kind returns a kind of values this field produces.
func (f Field) Kind() ValueKind {
	return fieldDescriptions[f].kind
}

// Known checks if field is one of the enumerated ones.
func (f Field) Known() bool {
	_, ok := fieldDescriptions[f]

	return ok
}

// MarshalJSON is to conform json.Marshaller interface.
func (f Field) MarshalJSON() ([]byte, error) {
	buf := bytes.Buffer{}

	buf.WriteByte('"')
	buf.WriteString(f.String())
	buf.WriteByte('"')

	return buf.Bytes(), nil
}

// ParseField returns a field by its canonical name.
func ParseField(name string) (Field, error) {
	if f, ok := fieldNames[name]; ok {
		return f, nil
	}

	return 0, &UnknownFieldError{Name: name}
}

// ParseFields converts a list of names into a list of fields. The very
// first unknown name fails the whole list.
func ParseFields(names []string) ([]Field, error) {
	rv := make([]Field, 0, len(names))

	for _, v := range names {
		f, err := ParseField(v)
		if err != nil {
			return nil, err
		}

		rv = append(rv, f)
	}

	return rv, nil
}

// FieldNames converts fields back to their names.
func FieldNames(fields []Field) []string {
	rv := make([]string, len(fields))

	for i, v := range fields {
		rv[i] = v.String()
	}

	return rv
}

func validateFields(fields []Field) error {
	if len(fields) == 0 {
		return ErrNoFields
	}

	for _, v := range fields {
		if !v.Known() {
			return &UnknownFieldError{Name: fmt.Sprintf("#%d", uint8(v))}
		}
	}

	return nil
}
