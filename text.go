// Copyright © 2025 tjj
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package adapt

import (
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// Char 单个字符。rune 是 int32 的别名，与 32 位整数无法区分，故单独定义
type Char rune

func (c Char) String() string {
	return string(rune(c))
}

var (
	boolType     = typeFor[bool]()
	int8Type     = typeFor[int8]()
	int16Type    = typeFor[int16]()
	int32Type    = typeFor[int32]()
	int64Type    = typeFor[int64]()
	intType      = typeFor[int]()
	uint8Type    = typeFor[uint8]()
	uint16Type   = typeFor[uint16]()
	uint32Type   = typeFor[uint32]()
	uint64Type   = typeFor[uint64]()
	uintType     = typeFor[uint]()
	float32Type  = typeFor[float32]()
	float64Type  = typeFor[float64]()
	stringType   = typeFor[string]()
	charType     = typeFor[Char]()
	timeType     = typeFor[time.Time]()
	durationType = typeFor[time.Duration]()
	uuidType     = typeFor[uuid.UUID]()
)

// textOf 取出文本，第二个返回值为 false 表示没有文本（nil 或 nil 指针）
func textOf(from any) (string, bool) {
	switch v := from.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	}
	if rv := reflect.ValueOf(from); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", false
	}
	text, err := cast.ToStringE(from)
	if err != nil {
		return "", false
	}
	return text, true
}

// 宽松解析：只有忽略大小写等于 "true" 时为 true，其余（包括没有文本）都为 false
func stringToBool(from any, _ reflect.Type) (any, error) {
	text, ok := textOf(from)
	return ok && strings.EqualFold(text, "true"), nil
}

type iSigned interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type iUnsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type iFloat interface {
	~float32 | ~float64
}

func stringToSigned[T iSigned](from any, _ reflect.Type) (any, error) {
	toType := typeFor[T]()
	text, _ := textOf(from)
	i64, err := strconv.ParseInt(text, 10, int(8*toType.Size()))
	if err != nil {
		return nil, formatErr(text, toType, err)
	}
	return T(i64), nil
}

func stringToUnsigned[T iUnsigned](from any, _ reflect.Type) (any, error) {
	toType := typeFor[T]()
	text, _ := textOf(from)
	ui64, err := strconv.ParseUint(text, 10, int(8*toType.Size()))
	if err != nil {
		return nil, formatErr(text, toType, err)
	}
	return T(ui64), nil
}

func stringToFloat[T iFloat](from any, _ reflect.Type) (any, error) {
	toType := typeFor[T]()
	text, _ := textOf(from)
	// 浮点数允许首尾空白，整数不允许
	f64, err := strconv.ParseFloat(strings.TrimSpace(text), int(8*toType.Size()))
	if err != nil {
		return nil, formatErr(text, toType, err)
	}
	return T(f64), nil
}

// 取第一个字符，空串或没有文本时返回 nil
func stringToChar(from any, _ reflect.Type) (any, error) {
	text, ok := textOf(from)
	if !ok || text == "" {
		return nil, nil
	}
	r, _ := utf8.DecodeRuneInString(text)
	return Char(r), nil
}

func stringToDuration(from any, _ reflect.Type) (any, error) {
	text, _ := textOf(from)
	if strings.ContainsAny(text, "nuµmsh") {
		d, err := time.ParseDuration(text)
		if err != nil {
			return nil, formatErr(text, durationType, err)
		}
		return d, nil
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, formatErr(text, durationType, err)
	}
	return time.Duration(v), nil
}

func stringToUUID(from any, _ reflect.Type) (any, error) {
	text, _ := textOf(from)
	id, err := uuid.Parse(text)
	if err != nil {
		return nil, formatErr(text, uuidType, err)
	}
	return id, nil
}

// 标量转回文本，nil 仍为 nil
func scalarToString(from any, _ reflect.Type) (any, error) {
	if from == nil {
		return nil, nil
	}
	text, err := cast.ToStringE(from)
	if err != nil {
		return nil, &AdapterNotFoundError{From: reflect.TypeOf(from), To: stringType}
	}
	return text, nil
}

func timeToString(from any, _ reflect.Type) (any, error) {
	t, ok := from.(time.Time)
	if !ok {
		return nil, nil
	}
	return t.Format(time.DateTime), nil
}
