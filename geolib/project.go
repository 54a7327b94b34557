package geolib

import "math"

// Record is a nested geo record as it is decoded from the database:
// maps are map[string]interface{}, arrays are []interface{}. nil
// record means that there is nothing for a given address.
//
// Records are shared between readers, caches and workers so nobody is
// allowed to modify them.
type Record map[string]interface{}

// Row is a projection of a single record. Values are aligned with the
// fields they were projected for.
type Row struct {
	Fields []Field
	Values []Value
}

// Get returns a value for the given field or null if row has no such
// field.
func (r Row) Get(field Field) Value {
	for i, v := range r.Fields {
		if v == field {
			return r.Values[i]
		}
	}

	return Null()
}

// Project extracts given fields from the record. It never fails: absent
// keys, short arrays and unexpected types produce null values.
func Project(record Record, fields []Field) Row {
	rv := Row{
		Fields: fields,
		Values: make([]Value, len(fields)),
	}

	projectInto(record, fields, rv.Values)

	return rv
}

func projectInto(record Record, fields []Field, values []Value) {
	if record == nil {
		for i := range values {
			values[i] = Null()
		}

		return
	}

	for i, v := range fields {
		values[i] = projectField(record, v)
	}
}

func projectField(record Record, field Field) Value {
	desc, ok := fieldDescriptions[field]
	if !ok {
		return Null()
	}

	var current interface{} = map[string]interface{}(record)

	for _, step := range desc.path {
		current = walk(current, step)
		if current == nil {
			return Null()
		}
	}

	switch desc.kind {
	case ValueString:
		return toString(current)
	case ValueFloat:
		return toFloat(current)
	case ValueInt:
		return toInt(current)
	}

	return Null()
}

func walk(node interface{}, step pathStep) interface{} {
	if step.key != "" {
		switch value := node.(type) {
		case map[string]interface{}:
			return value[step.key]
		case Record:
			return value[step.key]
		}

		return nil
	}

	arr, ok := node.([]interface{})
	if !ok || step.index < 0 || step.index >= len(arr) {
		return nil
	}

	return arr[step.index]
}

func toString(value interface{}) Value {
	if s, ok := value.(string); ok {
		return NewString(s)
	}

	return Null()
}

func toFloat(value interface{}) Value {
	switch v := value.(type) {
	case float64:
		return NewFloat(v)
	case float32:
		return NewFloat(float64(v))
	}

	return Null()
}

func toInt(value interface{}) Value {
	switch v := value.(type) {
	case uint64:
		if v > math.MaxInt64 {
			return Null()
		}

		return NewInt(int64(v))
	case uint32:
		return NewInt(int64(v))
	case uint16:
		return NewInt(int64(v))
	case int:
		return NewInt(int64(v))
	case int64:
		return NewInt(v)
	case int32:
		return NewInt(int64(v))
	}

	return Null()
}
