package store

import (
	"strconv"
	"strings"
)

// Kind identifies the type held by a Value.
type Kind uint8

const (
	// KindInvalid is the Kind of the zero Value.
	KindInvalid Kind = iota
	// KindString holds quoted strings and undelimited words.
	KindString
	// KindInteger holds base-10 integers.
	KindInteger
	// KindFloat holds numbers with a decimal point.
	KindFloat
	// KindList holds a parenthesised list of values.
	KindList
	// KindArray holds a nested block of named fields.
	KindArray
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindList:
		return "list"
	case KindArray:
		return "array"
	default:
		return "invalid"
	}
}

// Value is a single typed store value. The zero Value is invalid.
type Value struct {
	kind    Kind
	str     string
	integer int64
	float   float64
	list    []Value
	array   *Record
}

// String creates a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Integer creates an integer value.
func Integer(i int64) Value { return Value{kind: KindInteger, integer: i} }

// Float creates a float value.
func Float(f float64) Value { return Value{kind: KindFloat, float: f} }

// List creates a list value holding a copy of values.
func List(values ...Value) Value {
	return Value{kind: KindList, list: append([]Value(nil), values...)}
}

// Array creates a nested block value. A nil record is treated as empty.
func Array(r *Record) Value {
	if r == nil {
		r = NewRecord()
	}
	return Value{kind: KindArray, array: r}
}

// Kind reports the type of the value.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether the value holds anything.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// AsString returns the string content of a string value.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsInt returns the integer held by the value. Strings that are entirely a
// base-10 integer count as numeric; floats, lists, arrays and other strings
// do not.
func (v Value) AsInt() (int64, bool) {
	switch v.kind {
	case KindInteger:
		return v.integer, true
	case KindString:
		i, err := strconv.ParseInt(strings.TrimSpace(v.str), 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// AsFloat returns the value of a float or integer value.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.float, true
	case KindInteger:
		return float64(v.integer), true
	default:
		return 0, false
	}
}

// AsList returns a copy of the elements of a list value.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return append([]Value(nil), v.list...), true
}

// AsRecord returns the nested record of an array value.
func (v Value) AsRecord() (*Record, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.array, true
}

func (v Value) clone() Value {
	switch v.kind {
	case KindList:
		out := make([]Value, len(v.list))
		for i, e := range v.list {
			out[i] = e.clone()
		}
		return Value{kind: KindList, list: out}
	case KindArray:
		return Value{kind: KindArray, array: v.array.Clone()}
	default:
		return v
	}
}

// Record is an insertion-ordered mapping of field names to values. Setting an
// existing name replaces its value in place. A nil *Record reads as empty.
type Record struct {
	keys   []string
	values map[string]Value
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]Value)}
}

// Len returns the number of fields.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.keys...)
}

// Set stores v under name. Invalid values are ignored.
func (r *Record) Set(name string, v Value) {
	if !v.IsValid() {
		return
	}
	if r.values == nil {
		r.values = make(map[string]Value)
	}
	if _, ok := r.values[name]; !ok {
		r.keys = append(r.keys, name)
	}
	r.values[name] = v
}

// Get returns the value stored under name.
func (r *Record) Get(name string) (Value, bool) {
	if r == nil {
		return Value{}, false
	}
	v, ok := r.values[name]
	return v, ok
}

// Has reports whether name is present.
func (r *Record) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Delete removes name and reports whether it was present.
func (r *Record) Delete(name string) bool {
	if r == nil {
		return false
	}
	if _, ok := r.values[name]; !ok {
		return false
	}
	delete(r.values, name)
	for i, k := range r.keys {
		if k == name {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
	return true
}

// Int returns the integer value of name. See Value.AsInt.
func (r *Record) Int(name string) (int64, bool) {
	v, ok := r.Get(name)
	if !ok {
		return 0, false
	}
	return v.AsInt()
}

// Text returns the string value of name.
func (r *Record) Text(name string) (string, bool) {
	v, ok := r.Get(name)
	if !ok {
		return "", false
	}
	return v.AsString()
}

// Path resolves a "/"-separated path through nested arrays, e.g.
// "xcall/function".
func (r *Record) Path(path string) (Value, bool) {
	parts := strings.Split(path, "/")
	cur := r
	for i, part := range parts {
		v, ok := cur.Get(part)
		if !ok {
			return Value{}, false
		}
		if i == len(parts)-1 {
			return v, true
		}
		if cur, ok = v.AsRecord(); !ok {
			return Value{}, false
		}
	}
	return Value{}, false
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	out := NewRecord()
	if r == nil {
		return out
	}
	for _, k := range r.keys {
		out.Set(k, r.values[k].clone())
	}
	return out
}

// Merge copies every field of src into r, recursing into arrays present on
// both sides. Fields from src win on conflict.
func (r *Record) Merge(src *Record) {
	for _, k := range src.Keys() {
		v := src.values[k]
		if dst, ok := r.Get(k); ok {
			dr, dok := dst.AsRecord()
			sr, sok := v.AsRecord()
			if dok && sok {
				dr.Merge(sr)
				continue
			}
		}
		r.Set(k, v.clone())
	}
}
