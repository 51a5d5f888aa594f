package yini_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	yini "github.com/yini-lang/yini-go"
)

func TestValueKinds(t *testing.T) {
	assert.Equal(t, yini.KindString, yini.String("x").Kind())
	assert.Equal(t, yini.KindInt, yini.Int(1).Kind())
	assert.Equal(t, yini.KindFloat, yini.Float(1.5).Kind())
	assert.Equal(t, yini.KindBool, yini.Bool(true).Kind())
	assert.Equal(t, yini.KindArray, yini.Array().Kind())

	assert.True(t, yini.String("x").IsString())
	assert.True(t, yini.Int(1).IsInt())
	assert.True(t, yini.Float(1.5).IsFloat())
	assert.True(t, yini.Bool(true).IsBool())
	assert.True(t, yini.Array().IsArray())
	assert.False(t, yini.Int(1).IsString())

	assert.Equal(t, "string", yini.KindString.String())
	assert.Equal(t, "array", yini.KindArray.String())

	// The zero Value is the empty string.
	var zero yini.Value
	assert.True(t, zero.IsString())
}

func TestAsString(t *testing.T) {
	for _, test := range []struct {
		in   yini.Value
		want string
	}{
		{yini.String("hello"), "hello"},
		{yini.Int(-12), "-12"},
		{yini.Float(2.5), "2.5"},
		{yini.Float(3), "3.0"},
		{yini.Bool(true), "true"},
		{yini.Bool(false), "false"},
	} {
		got, err := test.in.AsString()
		require.NoError(t, err)
		assert.Equal(t, test.want, got)
	}

	_, err := yini.Array(yini.Int(1)).AsString()
	var typeErr *yini.TypeError
	require.ErrorAs(t, err, &typeErr)
}

func TestAsInt(t *testing.T) {
	for _, test := range []struct {
		in   yini.Value
		want int64
	}{
		{yini.Int(42), 42},
		{yini.Float(3.9), 3},
		{yini.Float(-3.9), -3},
		{yini.String("17"), 17},
		{yini.String("-8"), -8},
	} {
		got, err := test.in.AsInt()
		require.NoError(t, err)
		assert.Equal(t, test.want, got)
	}

	var typeErr *yini.TypeError
	for _, v := range []yini.Value{
		yini.String("potato"),
		yini.Bool(true),
		yini.Array(),
	} {
		_, err := v.AsInt()
		require.ErrorAs(t, err, &typeErr)
	}
}

func TestAsFloat(t *testing.T) {
	for _, test := range []struct {
		in   yini.Value
		want float64
	}{
		{yini.Float(2.25), 2.25},
		{yini.Int(4), 4.0},
		{yini.String("1.5"), 1.5},
		{yini.String("10"), 10.0},
	} {
		got, err := test.in.AsFloat()
		require.NoError(t, err)
		assert.Equal(t, test.want, got)
	}

	var typeErr *yini.TypeError
	for _, v := range []yini.Value{
		yini.String("n/a"),
		yini.Bool(false),
		yini.Array(),
	} {
		_, err := v.AsFloat()
		require.ErrorAs(t, err, &typeErr)
	}
}

func TestAsBool(t *testing.T) {
	trueSpellings := []string{"true", "TRUE", "True", "yes", "YES", "Yes", "on", "ON", "On", "1"}
	for _, s := range trueSpellings {
		got, err := yini.String(s).AsBool()
		require.NoError(t, err, "spelling %q", s)
		assert.True(t, got, "spelling %q", s)
	}

	falseSpellings := []string{"false", "FALSE", "False", "no", "NO", "No", "off", "OFF", "Off", "0"}
	for _, s := range falseSpellings {
		got, err := yini.String(s).AsBool()
		require.NoError(t, err, "spelling %q", s)
		assert.False(t, got, "spelling %q", s)
	}

	got, err := yini.Bool(true).AsBool()
	require.NoError(t, err)
	assert.True(t, got)

	got, err = yini.Int(3).AsBool()
	require.NoError(t, err)
	assert.True(t, got)

	got, err = yini.Int(0).AsBool()
	require.NoError(t, err)
	assert.False(t, got)

	var typeErr *yini.TypeError
	for _, v := range []yini.Value{
		yini.String("maybe"),
		yini.Float(1.0),
		yini.Array(yini.Bool(true)),
	} {
		_, err := v.AsBool()
		require.ErrorAs(t, err, &typeErr)
	}
}

func TestAsArray(t *testing.T) {
	elems, err := yini.Array(yini.Int(1), yini.String("x")).AsArray()
	require.NoError(t, err)
	require.Len(t, elems, 2)
	assert.True(t, elems[0].Equal(yini.Int(1)))
	assert.True(t, elems[1].Equal(yini.String("x")))

	_, err = yini.String("[not an array]").AsArray()
	var typeErr *yini.TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, yini.KindArray, typeErr.Want)
	assert.Equal(t, yini.KindString, typeErr.Got)
}

func TestValueEqual(t *testing.T) {
	assert.True(t, yini.Int(1).Equal(yini.Int(1)))
	assert.False(t, yini.Int(1).Equal(yini.Float(1)))
	assert.False(t, yini.String("1").Equal(yini.Int(1)))
	assert.True(t, yini.Array(yini.Int(1), yini.Int(2)).Equal(yini.Array(yini.Int(1), yini.Int(2))))
	assert.False(t, yini.Array(yini.Int(1)).Equal(yini.Array(yini.Int(2))))
	assert.False(t, yini.Array(yini.Int(1)).Equal(yini.Array(yini.Int(1), yini.Int(1))))
}

func TestValueOf(t *testing.T) {
	v, err := yini.ValueOf([]any{int64(1), "two", true, 2.5})
	require.NoError(t, err)
	assert.True(t, v.Equal(yini.Array(yini.Int(1), yini.String("two"), yini.Bool(true), yini.Float(2.5))))

	_, err = yini.ValueOf(struct{}{})
	require.Error(t, err)
}

func TestInterfaceRoundTrip(t *testing.T) {
	orig := yini.Array(yini.Int(7), yini.Array(yini.String("a")), yini.Bool(false))
	back, err := yini.ValueOf(orig.Interface())
	require.NoError(t, err)
	assert.True(t, orig.Equal(back))
}

func TestCoercionNeverMutates(t *testing.T) {
	doc, err := yini.Parse("k = [1]")
	require.NoError(t, err)
	v, err := doc.Get("k")
	require.NoError(t, err)

	_, err = v.AsInt()
	var typeErr *yini.TypeError
	require.True(t, errors.As(err, &typeErr))

	after, err := doc.Get("k")
	require.NoError(t, err)
	assert.True(t, v.Equal(after))
}
