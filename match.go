package typeh

import (
	"sort"
	"strconv"
	"strings"
)

// nullableMarker prefixes a type expression to additionally permit nullish
// values.
const nullableMarker = "?"

// EnforceFunc validates a value against a fixed type expression, returning
// the value unchanged on success.
type EnforceFunc func(value any) (any, error)

// Matches reports whether the value satisfies the type expression: one or
// more pipe-separated type labels, optionally prefixed with "?" to also
// accept nullish values. Labels are matched case-insensitively, in order,
// first match wins.
//
// One candidate has non-local behavior: "iterable" decides the whole
// evaluation, so in an expression like "iterable|string" the labels after it
// are never consulted. This mirrors the behavior validated code in the wild
// depends on; order "iterable" last if the other labels should get a chance.
func Matches(expr string, value any) bool {
	if strings.HasPrefix(expr, nullableMarker) {
		expr = expr[len(nullableMarker):]
		if isNullish(value) {
			return true
		}
	}

	refined := RefinedType(value)
	coarse := CoarseType(value)

	for _, candidate := range strings.Split(expr, "|") {
		candidate = strings.ToLower(candidate)

		if candidate == "element" && isElementNode(value) {
			return true
		}
		if candidate == "callable" {
			// Named func types refine to their type name, so consult the
			// coarse kind too.
			if refined == "function" || coarse == "function" {
				return true
			}
			continue
		}
		if candidate == "iterable" {
			// Terminal candidate: the iterable verdict ends the evaluation
			// even when negative.
			return isIterable(value)
		}
		if coarse == "boolean" {
			if candidate == strconv.FormatBool(boolValue(value)) {
				return true
			}
			// Prefix shortcut: "bool" reaches "boolean" here. The coarse
			// kind is checked too so named bool types keep matching.
			if prefix4(candidate, refined) || prefix4(candidate, coarse) {
				return true
			}
		}
		if candidate == refined || candidate == coarse || candidate == "mixed" {
			return true
		}
	}

	return false
}

func prefix4(label, typ string) bool {
	return len(label) >= 4 && len(typ) >= 4 && label[:4] == typ[:4]
}

// Validate checks the value against the type expression and returns it
// unchanged (the same value, not a copy) when it matches. On mismatch it
// returns a *MismatchError carrying the expression and the value's refined
// type.
func Validate(expr string, value any) (any, error) {
	if !Matches(expr, value) {
		return nil, &MismatchError{Expected: expr, Actual: RefinedType(value)}
	}
	return value, nil
}

// ValidateMap validates several values at once, keyed by the type expression
// each must satisfy, and stops at the first failure. Keys are visited in
// sorted order so the reported failure is deterministic.
func ValidateMap(pairs map[string]any) error {
	exprs := make([]string, 0, len(pairs))
	for expr := range pairs {
		exprs = append(exprs, expr)
	}
	sort.Strings(exprs)

	for _, expr := range exprs {
		if _, err := Validate(expr, pairs[expr]); err != nil {
			return err
		}
	}
	return nil
}

// Enforce builds an enforcing function for an ad-hoc type expression, the
// free-form counterpart of the catalog accessors like Int or OptString.
//
//	port := typeh.Enforce("?int|string")
//	v, err := port(cfg["port"])
func Enforce(expr string) EnforceFunc {
	return func(value any) (any, error) {
		return Validate(expr, value)
	}
}
