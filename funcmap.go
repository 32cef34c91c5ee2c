package typeh

// FuncMap returns a freshly built map of every exported entry point keyed by
// a lowerCamel name, ready to merge into a text/template FuncMap or the
// global namespace of an embedded-script host. Building the map is the
// caller's explicit choice; importing the package alone registers nothing
// anywhere.
func FuncMap() map[string]any {
	return map[string]any{
		"coarseType":  CoarseType,
		"refinedType": RefinedType,
		"matches":     Matches,
		"validate":    Validate,
		"validateMap": ValidateMap,
		"enforce":     Enforce,

		"int":         Int,
		"optInt":      OptInt,
		"float":       Float,
		"optFloat":    OptFloat,
		"string":      String,
		"optString":   OptString,
		"bool":        Bool,
		"optBool":     OptBool,
		"array":       Array,
		"optArray":    OptArray,
		"object":      Object,
		"optObject":   OptObject,
		"callable":    Callable,
		"optCallable": OptCallable,
		"iterable":    Iterable,
		"optIterable": OptIterable,
		"mixed":       Mixed,
		"optMixed":    OptMixed,
		"null":        Null,
		"optNull":     OptNull,
		"false":       False,
		"optFalse":    OptFalse,
		"true":        True,
		"optTrue":     OptTrue,

		"isInt":      IsInt,
		"isFloat":    IsFloat,
		"isString":   IsString,
		"isBool":     IsBool,
		"isArray":    IsArray,
		"isObject":   IsObject,
		"isCallable": IsCallable,
		"isIterable": IsIterable,
		"isNull":     IsNull,
		"isFalse":    IsFalse,
		"isTrue":     IsTrue,

		"isCountable": IsCountable,
		"isNumeric":   IsNumeric,
		"isLong":      IsLong,
		"isScalar":    IsScalar,
		"isInfinite":  IsInfinite,
	}
}

// Register merges FuncMap into a caller-supplied namespace, overwriting
// colliding names.
func Register(dst map[string]any) {
	for name, fn := range FuncMap() {
		dst[name] = fn
	}
}
