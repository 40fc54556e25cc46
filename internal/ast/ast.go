// Package ast defines the in-memory document tree produced by the parser
// and consumed by the printer. A Value is a tagged union over the seven
// JSON alternatives; containers own their children, so every document is
// a finite acyclic tree.
package ast

import "sort"

// Kind identifies which alternative a Value currently holds.
type Kind int

const (
	KindNull Kind = iota
	KindObject
	KindArray
	KindString
	KindNumber
	KindTrue
	KindFalse
)

// String returns the kind's name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindNull:
		return "null"
	}
	return "unknown"
}

// Value is a single JSON document node. Exactly one alternative is active
// at any time, selected by Kind. The zero Value is null.
type Value struct {
	kind Kind
	obj  map[string]Value
	arr  []Value
	str  string
	num  float64
}

// NewObject creates an empty object value.
func NewObject() Value {
	return Value{kind: KindObject, obj: make(map[string]Value)}
}

// NewArray creates an empty array value.
func NewArray() Value {
	return Value{kind: KindArray}
}

// NewString creates a string value holding the raw (unescaped) bytes of s.
func NewString(s string) Value {
	return Value{kind: KindString, str: s}
}

// NewNumber creates a number value. JSON integers and floats both map to
// float64; precision loss is possible above 2^53.
func NewNumber(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// NewBool creates a true or false value.
func NewBool(b bool) Value {
	if b {
		return Value{kind: KindTrue}
	}
	return Value{kind: KindFalse}
}

// NewNull creates a null value.
func NewNull() Value {
	return Value{kind: KindNull}
}

// Kind reports the active alternative.
func (v Value) Kind() Kind { return v.kind }

// Set inserts or replaces the member named key. Later writes win, matching
// map insertion semantics. It panics when v is not an object.
func (v Value) Set(key string, child Value) {
	if v.Kind() != KindObject {
		panic("ast: Set on non-object value")
	}
	v.obj[key] = child
}

// Get looks up the member named key.
func (v Value) Get(key string) (Value, bool) {
	if v.Kind() != KindObject {
		return Value{}, false
	}
	child, ok := v.obj[key]
	return child, ok
}

// Keys returns the object's member names in sorted byte order. Iteration
// order is sorted, not insertion order: the serialized form is canonical
// with respect to key order.
func (v Value) Keys() []string {
	if v.Kind() != KindObject {
		return nil
	}
	keys := make([]string, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Append adds an element to the end of an array value and returns the
// updated array. It panics when v is not an array.
func (v Value) Append(child Value) Value {
	if v.Kind() != KindArray {
		panic("ast: Append on non-array value")
	}
	v.arr = append(v.arr, child)
	return v
}

// Index returns the i'th array element.
func (v Value) Index(i int) Value {
	if v.Kind() != KindArray {
		panic("ast: Index on non-array value")
	}
	return v.arr[i]
}

// Elems returns the array's elements in append order.
func (v Value) Elems() []Value {
	if v.Kind() != KindArray {
		return nil
	}
	return v.arr
}

// Len returns the member count of an object or the element count of an
// array, and 0 for every other kind.
func (v Value) Len() int {
	switch v.Kind() {
	case KindObject:
		return len(v.obj)
	case KindArray:
		return len(v.arr)
	}
	return 0
}

// Str returns the string alternative's raw bytes.
func (v Value) Str() string { return v.str }

// Num returns the number alternative's value.
func (v Value) Num() float64 { return v.num }

// Bool returns true for the true alternative and false otherwise.
func (v Value) Bool() bool { return v.Kind() == KindTrue }

// Equal reports deep structural equality. Objects compare by key set and
// member values irrespective of insertion history, arrays positionally,
// strings byte-wise, numbers by float64 equality.
func (v Value) Equal(w Value) bool {
	if v.Kind() != w.Kind() {
		return false
	}
	switch v.Kind() {
	case KindObject:
		if len(v.obj) != len(w.obj) {
			return false
		}
		for k, vc := range v.obj {
			wc, ok := w.obj[k]
			if !ok || !vc.Equal(wc) {
				return false
			}
		}
		return true
	case KindArray:
		if len(v.arr) != len(w.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(w.arr[i]) {
				return false
			}
		}
		return true
	case KindString:
		return v.str == w.str
	case KindNumber:
		return v.num == w.num
	}
	// true, false and null carry no data.
	return true
}
