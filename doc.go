// Package typeh classifies runtime values and validates them against
// declared type expressions.
//
// Given an arbitrary value it derives two labels: a coarse runtime kind
// ("string", "number", "function", "object", ...) and a refined semantic
// type that tells integers apart from floats and names declared types by
// their lower-cased type name. A type expression is one or more labels
// joined by "|", optionally prefixed with "?" to additionally accept nullish
// values:
//
//	typeh.Matches("int|float", 3.14)   // true
//	typeh.Matches("?string", nil)      // true
//	typeh.RefinedType(12.0)            // "int"
//	typeh.RefinedType(12.5)            // "float"
//
// # Architecture
//
// The package is two small layers. The classifier (classify.go) is a pure
// function from value to label, built on reflection with a fixed class table
// for well-known object types. The matcher (match.go) parses a type
// expression and compares its candidates against the classifier's output,
// first match wins. Everything else is generated from those two: the catalog
// accessors (Int, OptInt, IsInt, ...) are built once at package init from a
// fixed label list, so they are stable, allocation-free closures with no
// per-call setup. There is no other package state; every entry point is
// goroutine-safe.
//
// # Validation
//
// Validate returns the value unchanged or a *MismatchError naming the
// expression and the observed refined type. ValidateMap checks several
// values in one call:
//
//	err := typeh.ValidateMap(map[string]any{
//		"string": name,
//		"?int":   port,
//		"bool":   debug,
//	})
//
// Enforce builds the same kind of checker for an ad-hoc expression. All
// failures match ErrTypeMismatch via errors.Is and expose their detail via
// errors.As with *MismatchError.
//
// # Matching semantics
//
// Labels are case-insensitive. "mixed" matches anything. An unrecognized
// label never matches anything; it is not an error. Two labels carry
// special behavior: "callable" matches functions only, and "iterable" is
// terminal — its verdict ends the evaluation even when negative, so labels
// listed after it are never consulted (see Matches).
//
// # Script-host consumption
//
// FuncMap and Register expose every entry point as a name-to-function map
// for template engines and embedded-script hosts. The merge is strictly
// opt-in; importing the package has no ambient effect.
package typeh
