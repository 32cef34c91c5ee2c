package typeh

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Element marks values that represent UI element nodes, the structural
// capability browser-like hosts attach to DOM elements. A value implementing
// it with NodeType() == ElementNode satisfies the "element" type label.
type Element interface {
	NodeType() int
}

// ElementNode is the node type an element value must report to match the
// "element" label.
const ElementNode = 1

// maxSafeInteger is the largest integer a float64 represents exactly.
const maxSafeInteger = 1<<53 - 1

func isElementNode(v any) bool {
	el, ok := v.(Element)
	return ok && el.NodeType() == ElementNode
}

// isIterable reports whether the value supports iteration: any rangeable kind
// (slice, array, map, string, channel) or a type carrying an Iterator method.
func isIterable(v any) bool {
	if isNullish(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String, reflect.Chan:
		return true
	}
	_, ok := rv.Type().MethodByName("Iterator")
	return ok
}

// boolValue returns the truthiness of a boolean-kind value, named bool types
// included. Callers must have checked the kind already.
func boolValue(v any) bool {
	return reflect.ValueOf(v).Bool()
}

// floatValue converts any builtin numeric kind to float64.
func floatValue(v any) (float64, bool) {
	if isNullish(v) {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// IsCountable reports whether the value has a meaningful element count: a
// slice, array or map, or a non-nullish value exposing a Len() int method or
// an integer-valued Length field.
func IsCountable(v any) bool {
	if isNullish(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	if m, ok := rv.Type().MethodByName("Len"); ok {
		mt := m.Type
		if mt.NumIn() == 1 && mt.NumOut() == 1 && mt.Out(0).Kind() == reflect.Int {
			return true
		}
	}
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Struct {
		if f := rv.FieldByName("Length"); f.IsValid() {
			switch f.Kind() {
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
				reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
				return true
			}
		}
	}
	return false
}

// IsNumeric reports whether the value is an integer or a string that parses
// to a finite number. Note that float values are not numeric under this rule;
// it answers "can this be treated as a written-out number", not "is this a
// number".
func IsNumeric(v any) bool {
	switch {
	case RefinedType(v) == "int":
		f, ok := floatValue(v)
		return ok && !math.IsNaN(f-f)
	case CoarseType(v) == "string":
		s := strings.TrimSpace(reflect.ValueOf(v).String())
		f, err := strconv.ParseFloat(s, 64)
		return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	return false
}

// IsLong reports whether the value is an integer that is exactly
// representable: native integer kinds always are, float-kind values must be
// integral and within ±(2^53−1).
func IsLong(v any) bool {
	if RefinedType(v) != "int" {
		return false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64 {
		f := rv.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0) &&
			math.Trunc(f) == f && math.Abs(f) <= maxSafeInteger
	}
	return true
}

// IsScalar reports whether the value is a string, a boolean, or a finite
// number.
func IsScalar(v any) bool {
	if Matches("string|bool", v) {
		return true
	}
	if f, ok := floatValue(v); ok {
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	return false
}

// IsInfinite reports whether the value is exactly +Inf or -Inf.
func IsInfinite(v any) bool {
	if isNullish(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64 {
		return math.IsInf(rv.Float(), 0)
	}
	return false
}
