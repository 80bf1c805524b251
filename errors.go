// Copyright © 2025 tjj
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package adapt

import (
	"reflect"
)

type strErr string

func (e strErr) Error() string {
	return string(e)
}

// TypeNotFoundErr 查询或注册时 from 或 to 类型为 nil
const TypeNotFoundErr = strErr("type not found: from or to type is <nil>")

// AdapterNotFoundError 没有精确匹配、相同类型或枚举泛化匹配的转换函数
type AdapterNotFoundError struct {
	From reflect.Type
	To   reflect.Type
}

func (e *AdapterNotFoundError) Error() string {
	return "adapter not found: no adapter for types <" + getTypeString(e.From) + "> to <" + getTypeString(e.To) + ">"
}

// FormatError 已注册的转换函数拒绝了输入
type FormatError struct {
	Text string
	To   reflect.Type
	Err  error
}

func (e *FormatError) Error() string {
	msg := "invalid format: can't convert \"" + e.Text + "\" to <" + getTypeString(e.To) + ">"
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func formatErr(text string, toType reflect.Type, err error) error {
	return &FormatError{Text: text, To: toType, Err: err}
}

func getTypeString(typ reflect.Type) string {
	if typ == nil {
		return "nil"
	}
	return typ.String()
}
