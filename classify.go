package typeh

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// undefined is the type of the Undefined sentinel.
type undefined struct{}

// Undefined marks a value that is absent rather than explicitly null, for
// callers that need to keep the two apart (a JSON null versus a missing key).
// CoarseType and RefinedType report it as "undefined"; every other nullish
// value is reported as "null". Both satisfy a nullable type expression.
var Undefined undefined

// classNames maps well-known object-like types to their classification label.
// Types absent from the table classify as "object".
var classNames = map[reflect.Type]string{
	reflect.TypeOf(time.Time{}):     "date",
	reflect.TypeOf(regexp.Regexp{}): "regexp",
}

// decimalText matches the textual form of a number with a nonzero chance of a
// fractional part: optional leading minus, digits, a dot, trailing digits.
var decimalText = regexp.MustCompile(`^-?\d+\.\d+$`)

// isNullish reports whether the value counts as null or undefined: an untyped
// nil, the Undefined sentinel, or a nil pointer, map, slice, func, channel or
// interface.
func isNullish(v any) bool {
	if v == nil {
		return true
	}
	if _, ok := v.(undefined); ok {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// CoarseType returns the runtime-level kind of a value: "null" or "undefined"
// for nullish input, the primitive kind for booleans, numbers, strings and
// functions, "array" for slices and arrays, a class-table name for well-known
// object types (date, regexp, error), and "object" for everything else.
func CoarseType(v any) string {
	if _, ok := v.(undefined); ok {
		return "undefined"
	}
	if isNullish(v) {
		return "null"
	}
	t := reflect.TypeOf(v)
	switch t.Kind() {
	case reflect.Func:
		return "function"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	}
	if _, ok := v.(error); ok {
		return "error"
	}
	if name, ok := className(t); ok {
		return name
	}
	return "object"
}

func className(t reflect.Type) (string, bool) {
	if name, ok := classNames[t]; ok {
		return name, true
	}
	if t.Kind() == reflect.Pointer {
		name, ok := classNames[t.Elem()]
		return name, ok
	}
	return "", false
}

// RefinedType returns the semantic type of a value. Nullish input yields
// "null" or "undefined". A declared named type yields its lower-cased type
// name (pointers are dereferenced one level). Builtin kinds yield "boolean",
// "string", "function", "array" or "object" — except numbers, which refine to
// "int" or "float": the value is "float" only when it is finite and either
// its decimal text carries a fractional part or it is not mathematically
// integral. By that rule 12.0 is "int", 12.5 is "float", and NaN and ±Inf
// remain "int" because they fail the finiteness guard.
func RefinedType(v any) string {
	if _, ok := v.(undefined); ok {
		return "undefined"
	}
	if isNullish(v) {
		return "null"
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	t := rv.Type()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if t.PkgPath() != "" {
			return strings.ToLower(t.Name())
		}
		return "int"
	case reflect.Float32, reflect.Float64:
		if t.PkgPath() != "" {
			return strings.ToLower(t.Name())
		}
		return refineFloat(rv.Float())
	}
	if t.PkgPath() != "" && t.Name() != "" {
		return strings.ToLower(t.Name())
	}
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Func:
		return "function"
	}
	return CoarseType(v)
}

// refineFloat decides between "int" and "float" for a builtin numeric value.
func refineFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "int"
	}
	text := strconv.FormatFloat(f, 'f', -1, 64)
	if decimalText.MatchString(text) || math.Trunc(f) != f {
		return "float"
	}
	return "int"
}
