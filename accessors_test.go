package typeh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jqrony/typeh"
)

func TestEnforcingAccessors(t *testing.T) {
	t.Parallel()

	t.Run("return matching values unchanged", func(t *testing.T) {
		v, err := typeh.Int(5)
		require.NoError(t, err)
		assert.Equal(t, 5, v)

		v, err = typeh.Float(3.14)
		require.NoError(t, err)
		assert.Equal(t, 3.14, v)

		v, err = typeh.String("Foo")
		require.NoError(t, err)
		assert.Equal(t, "Foo", v)

		v, err = typeh.Bool(true)
		require.NoError(t, err)
		assert.Equal(t, true, v)

		v, err = typeh.Array([]int{1})
		require.NoError(t, err)
		assert.Equal(t, any([]int{1}), v)

		v, err = typeh.Object(map[string]int{"a": 1})
		require.NoError(t, err)
		assert.Equal(t, any(map[string]int{"a": 1}), v)
	})

	t.Run("reject mismatching values with expression and refined type", func(t *testing.T) {
		_, err := typeh.Int("5")
		require.Error(t, err)

		var mismatch *typeh.MismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, "int", mismatch.Expected)
		assert.Equal(t, "string", mismatch.Actual)
	})

	t.Run("reject nullish values", func(t *testing.T) {
		_, err := typeh.String(nil)
		assert.ErrorIs(t, err, typeh.ErrTypeMismatch)

		_, err = typeh.Int(typeh.Undefined)
		assert.ErrorIs(t, err, typeh.ErrTypeMismatch)
	})

	t.Run("opt variants accept nullish values", func(t *testing.T) {
		_, err := typeh.OptString(nil)
		assert.NoError(t, err)

		_, err = typeh.OptInt(typeh.Undefined)
		assert.NoError(t, err)

		v, err := typeh.OptInt(7)
		require.NoError(t, err)
		assert.Equal(t, 7, v)

		_, err = typeh.OptInt("7")
		assert.ErrorIs(t, err, typeh.ErrTypeMismatch)
	})

	t.Run("true and false enforce the exact boolean", func(t *testing.T) {
		_, err := typeh.True(true)
		assert.NoError(t, err)

		_, err = typeh.True(false)
		assert.ErrorIs(t, err, typeh.ErrTypeMismatch)

		_, err = typeh.False(false)
		assert.NoError(t, err)

		_, err = typeh.False(0)
		assert.ErrorIs(t, err, typeh.ErrTypeMismatch)
	})

	t.Run("null enforces nullish input", func(t *testing.T) {
		_, err := typeh.Null(nil)
		assert.NoError(t, err)

		_, err = typeh.Null(0)
		assert.ErrorIs(t, err, typeh.ErrTypeMismatch)
	})

	t.Run("mixed accepts everything", func(t *testing.T) {
		for _, v := range []any{nil, typeh.Undefined, "x", 0, 3.14, false, []int{}} {
			_, err := typeh.Mixed(v)
			assert.NoError(t, err, "value %#v", v)
		}
	})

	t.Run("callable and iterable enforce their capability", func(t *testing.T) {
		_, err := typeh.Callable(func() {})
		assert.NoError(t, err)

		_, err = typeh.Callable("fn")
		assert.ErrorIs(t, err, typeh.ErrTypeMismatch)

		_, err = typeh.Iterable([]int{1})
		assert.NoError(t, err)

		_, err = typeh.Iterable(42)
		assert.ErrorIs(t, err, typeh.ErrTypeMismatch)
	})
}

func TestPredicateAccessors(t *testing.T) {
	t.Parallel()

	t.Run("report matches without failing", func(t *testing.T) {
		assert.True(t, typeh.IsInt(5))
		assert.False(t, typeh.IsInt("5"))
		assert.True(t, typeh.IsFloat(3.14))
		assert.False(t, typeh.IsFloat(3))
		assert.True(t, typeh.IsString("hi"))
		assert.True(t, typeh.IsBool(false))
		assert.True(t, typeh.IsArray([]string{}))
		assert.True(t, typeh.IsObject(map[string]any{}))
		assert.True(t, typeh.IsCallable(testTime))
		assert.True(t, typeh.IsIterable("chars"))
		assert.True(t, typeh.IsNull(nil))
		assert.False(t, typeh.IsNull(0))
		assert.True(t, typeh.IsTrue(true))
		assert.True(t, typeh.IsFalse(false))
		assert.False(t, typeh.IsTrue(1))
	})

	t.Run("treat integral floats as int", func(t *testing.T) {
		assert.True(t, typeh.IsInt(12.0))
		assert.False(t, typeh.IsFloat(12.0))
		assert.True(t, typeh.IsFloat(12.5))
	})

	t.Run("never fail on nullish input", func(t *testing.T) {
		assert.False(t, typeh.IsInt(nil))
		assert.False(t, typeh.IsString(typeh.Undefined))
		assert.False(t, typeh.IsNull(typeh.Undefined))
	})
}
