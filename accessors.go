package typeh

// catalog is the closed set of type labels accessors are generated for.
// Adding a label here (plus its named wrappers below) is the whole change.
var catalog = []string{
	"int", "float", "string", "bool", "array", "object",
	"callable", "iterable", "mixed", "null", "false", "true",
}

// The three tables are built once at package init and never mutated after:
// enforcers reject non-matching values, optEnforcers additionally accept
// nullish values, predicates report a match without failing. "mixed" gets no
// predicate since it would never return false.
var (
	enforcers    = make(map[string]EnforceFunc, len(catalog))
	optEnforcers = make(map[string]EnforceFunc, len(catalog))
	predicates   = make(map[string]func(any) bool, len(catalog)-1)
)

func init() {
	for _, label := range catalog {
		enforcers[label] = Enforce(label)
		optEnforcers[label] = Enforce(nullableMarker + label)
		if label == "mixed" {
			continue
		}
		predicates[label] = predicate(label)
	}
}

func predicate(label string) func(any) bool {
	return func(v any) bool {
		return Matches(label, v)
	}
}

// Int validates that the value is an integer and returns it unchanged.
func Int(v any) (any, error) { return enforcers["int"](v) }

// OptInt is the nullable variant of Int.
func OptInt(v any) (any, error) { return optEnforcers["int"](v) }

// Float validates that the value is a fractional number and returns it unchanged.
func Float(v any) (any, error) { return enforcers["float"](v) }

// OptFloat is the nullable variant of Float.
func OptFloat(v any) (any, error) { return optEnforcers["float"](v) }

// String validates that the value is a string and returns it unchanged.
func String(v any) (any, error) { return enforcers["string"](v) }

// OptString is the nullable variant of String.
func OptString(v any) (any, error) { return optEnforcers["string"](v) }

// Bool validates that the value is a boolean and returns it unchanged.
func Bool(v any) (any, error) { return enforcers["bool"](v) }

// OptBool is the nullable variant of Bool.
func OptBool(v any) (any, error) { return optEnforcers["bool"](v) }

// Array validates that the value is a slice or array and returns it unchanged.
func Array(v any) (any, error) { return enforcers["array"](v) }

// OptArray is the nullable variant of Array.
func OptArray(v any) (any, error) { return optEnforcers["array"](v) }

// Object validates that the value is object-like and returns it unchanged.
func Object(v any) (any, error) { return enforcers["object"](v) }

// OptObject is the nullable variant of Object.
func OptObject(v any) (any, error) { return optEnforcers["object"](v) }

// Callable validates that the value is a function and returns it unchanged.
func Callable(v any) (any, error) { return enforcers["callable"](v) }

// OptCallable is the nullable variant of Callable.
func OptCallable(v any) (any, error) { return optEnforcers["callable"](v) }

// Iterable validates that the value supports iteration and returns it unchanged.
func Iterable(v any) (any, error) { return enforcers["iterable"](v) }

// OptIterable is the nullable variant of Iterable.
func OptIterable(v any) (any, error) { return optEnforcers["iterable"](v) }

// Mixed accepts any value; it exists so call sites stay uniform when a
// parameter genuinely takes anything.
func Mixed(v any) (any, error) { return enforcers["mixed"](v) }

// OptMixed is the nullable variant of Mixed.
func OptMixed(v any) (any, error) { return optEnforcers["mixed"](v) }

// Null validates that the value is nullish and returns it unchanged.
func Null(v any) (any, error) { return enforcers["null"](v) }

// OptNull is the nullable variant of Null.
func OptNull(v any) (any, error) { return optEnforcers["null"](v) }

// False validates that the value is the boolean false and returns it unchanged.
func False(v any) (any, error) { return enforcers["false"](v) }

// OptFalse is the nullable variant of False.
func OptFalse(v any) (any, error) { return optEnforcers["false"](v) }

// True validates that the value is the boolean true and returns it unchanged.
func True(v any) (any, error) { return enforcers["true"](v) }

// OptTrue is the nullable variant of True.
func OptTrue(v any) (any, error) { return optEnforcers["true"](v) }

// IsInt reports whether the value is an integer.
func IsInt(v any) bool { return predicates["int"](v) }

// IsFloat reports whether the value is a fractional number.
func IsFloat(v any) bool { return predicates["float"](v) }

// IsString reports whether the value is a string.
func IsString(v any) bool { return predicates["string"](v) }

// IsBool reports whether the value is a boolean.
func IsBool(v any) bool { return predicates["bool"](v) }

// IsArray reports whether the value is a slice or array.
func IsArray(v any) bool { return predicates["array"](v) }

// IsObject reports whether the value is object-like.
func IsObject(v any) bool { return predicates["object"](v) }

// IsCallable reports whether the value is a function.
func IsCallable(v any) bool { return predicates["callable"](v) }

// IsIterable reports whether the value supports iteration.
func IsIterable(v any) bool { return predicates["iterable"](v) }

// IsNull reports whether the value is nullish.
func IsNull(v any) bool { return predicates["null"](v) }

// IsFalse reports whether the value is the boolean false.
func IsFalse(v any) bool { return predicates["false"](v) }

// IsTrue reports whether the value is the boolean true.
func IsTrue(v any) bool { return predicates["true"](v) }
