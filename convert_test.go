package adapt

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastNumbers(t *testing.T) {
	i32, err := Cast[string, int32]("100")
	require.NoError(t, err)
	assert.Equal(t, int32(100), i32)

	i64, err := Cast[string, int64]("100")
	require.NoError(t, err)
	assert.Equal(t, int64(100), i64)

	f32, err := Cast[string, float32]("100")
	require.NoError(t, err)
	assert.Equal(t, float32(100), f32)

	f64, err := Cast[string, float64]("100")
	require.NoError(t, err)
	assert.Equal(t, float64(100), f64)

	i8, err := Cast[string, int8]("5")
	require.NoError(t, err)
	assert.Equal(t, int8(5), i8)

	p, err := Cast[string, *int16]("-3")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, int16(-3), *p)

	_, err = Cast[string, int]("abc")
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestCastBool(t *testing.T) {
	for text, want := range map[string]bool{"true": true, "false": false, "garbage": false, "TrUe": true} {
		v, err := Cast[string, bool](text)
		require.NoError(t, err)
		assert.Equal(t, want, v, text)

		p, err := Cast[string, *bool](text)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, want, *p, text)
	}
}

func TestCastChar(t *testing.T) {
	c, err := Cast[string, Char]("Test")
	require.NoError(t, err)
	assert.Equal(t, Char('T'), c)

	p, err := Cast[string, *Char]("Test")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, Char('T'), *p)

	p, err = Cast[string, *Char]("")
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = Cast[*string, *Char](nil)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = Cast[*string, *Char](ptr("xyz"))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, Char('x'), *p)
}

func TestCastEnum(t *testing.T) {
	c, err := Cast[string, Color]("BLUE")
	require.NoError(t, err)
	assert.Equal(t, Blue, c)

	_, err = Cast[string, Color]("blue")
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)

	s, err := Cast[Color, string](Green)
	require.NoError(t, err)
	assert.Equal(t, "GREEN", s)
}

func TestCastIdentity(t *testing.T) {
	v, err := Cast[bool, bool](true)
	require.NoError(t, err)
	assert.True(t, v)

	type Custom struct{ A []int }
	in := Custom{A: []int{1}}
	out, err := Cast[Custom, Custom](in)
	require.NoError(t, err)
	assert.Same(t, &in.A[0], &out.A[0])

	i, err := Cast[*int, int](ptr(42))
	require.NoError(t, err)
	assert.Equal(t, 42, i)

	pi, err := Cast[int, *int](42)
	require.NoError(t, err)
	require.NotNil(t, pi)
	assert.Equal(t, 42, *pi)
}

func TestCastDate(t *testing.T) {
	r := NewRegistry(WithLocation(time.UTC))
	d, err := CastWithRegistry[string, time.Time](r, "20130717")
	require.NoError(t, err)
	assert.Equal(t, 2013, d.Year())
	assert.Equal(t, time.July, d.Month())
	assert.Equal(t, 17, d.Day())

	d, err = CastWithRegistry[string, time.Time](r, "17-07-2013")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2013, 7, 17, 0, 0, 0, 0, time.UTC), d)

	d, err = CastWithRegistry[string, time.Time](r, "notadate")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	s, err := CastWithRegistry[time.Time, string](r, time.Date(2013, 7, 17, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2013-07-17 12:00:00", s)
}

func TestCastNotFound(t *testing.T) {
	_, err := Cast[string, complex128]("1+2i")
	var notFound *AdapterNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, stringType, notFound.From)
}

func TestTo(t *testing.T) {
	v, err := To[int64]("12")
	require.NoError(t, err)
	assert.Equal(t, int64(12), v)

	id, err := To[uuid.UUID]("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	require.NoError(t, err)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", id.String())

	d, err := To[time.Duration]("2s")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, d)

	_, err = To[int64](nil)
	assert.ErrorIs(t, err, TypeNotFoundErr)

	s, err := To[string](uint32(9))
	require.NoError(t, err)
	assert.Equal(t, "9", s)
}

func TestGetAdapter(t *testing.T) {
	toFloat, err := GetAdapter[string, float64]()
	require.NoError(t, err)
	for text, want := range map[string]float64{"1.5": 1.5, "-2": -2, "1e3": 1000} {
		v, err := toFloat(text)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}

	_, err = GetAdapter[string, chan int]()
	var notFound *AdapterNotFoundError
	require.ErrorAs(t, err, &notFound)

	assert.Panics(t, func() {
		MustGetAdapterWithRegistry[string, chan int](Default())
	})
	assert.NotPanics(t, func() {
		MustGetAdapterWithRegistry[string, int](Default())
	})
}

func TestRegistryConvert(t *testing.T) {
	r := NewRegistry()
	v, err := r.Convert("100", intType)
	require.NoError(t, err)
	assert.Equal(t, 100, v)

	v, err = r.Convert("100", typeFor[*int]())
	require.NoError(t, err)
	require.IsType(t, (*int)(nil), v)
	assert.Equal(t, 100, *v.(*int))

	v, err = r.Convert((*string)(nil), typeFor[*Char]())
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = r.Convert(nil, intType)
	assert.ErrorIs(t, err, TypeNotFoundErr)
	_, err = r.Convert("1", nil)
	assert.ErrorIs(t, err, TypeNotFoundErr)
}

func TestReflectConvert(t *testing.T) {
	r := NewRegistry()
	v, err := ReflectConvert(r, reflect.ValueOf("7"), int16Type)
	require.NoError(t, err)
	assert.Equal(t, int16(7), v.Interface())

	v, err = ReflectConvert(r, reflect.Value{}, int16Type)
	require.NoError(t, err)
	assert.Equal(t, int16(0), v.Interface())

	v, err = ReflectConvert(r, reflect.ValueOf(""), charType)
	require.NoError(t, err)
	assert.Equal(t, Char(0), v.Interface())

	_, err = ReflectConvert(r, reflect.ValueOf("7"), nil)
	assert.ErrorIs(t, err, TypeNotFoundErr)

	// 转换函数返回了错误的类型时不做隐式转换
	require.NoError(t, r.Register(stringType, int8Type, func(from any, _ reflect.Type) (any, error) {
		return int64(300), nil
	}))
	_, err = ReflectConvert(r, reflect.ValueOf("7"), int8Type)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid result")
	_, err = CastWithRegistry[string, int8](r, "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid result")
}
