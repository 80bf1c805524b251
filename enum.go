// Copyright © 2025 tjj
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package adapt

import (
	"fmt"
	"reflect"
)

// Enum 枚举类型需实现的接口，成员名为 String() 的返回值
//
//	type Color int
//
//	const (
//		Red Color = iota
//		Green
//	)
//
//	func (c Color) String() string { return [...]string{"RED", "GREEN"}[c] }
//	func (Color) EnumMembers() []adapt.Enum { return []adapt.Enum{Red, Green} }
type Enum interface {
	fmt.Stringer
	EnumMembers() []Enum
}

// EnumType 所有枚举类型的泛化标记，注册到该类型的转换函数对所有枚举类型生效
var EnumType = typeFor[Enum]()

// IsEnum 判断 typ 是否为具体的枚举类型（指针与接口不算）
func IsEnum(typ reflect.Type) bool {
	if typ == nil {
		return false
	}
	switch typ.Kind() {
	case reflect.Interface, reflect.Pointer:
		return false
	default:
		return typ.Implements(EnumType)
	}
}

func enumMembers(typ reflect.Type) []Enum {
	if !IsEnum(typ) {
		return nil
	}
	return reflect.Zero(typ).Interface().(Enum).EnumMembers()
}

func stringToEnum(from any, toType reflect.Type) (any, error) {
	text, ok := textOf(from)
	if !IsEnum(toType) {
		return nil, formatErr(text, toType, strErr("not an enum type"))
	}
	if ok {
		for _, member := range enumMembers(toType) {
			if member.String() == text && reflect.TypeOf(member) == toType {
				return member, nil
			}
		}
	}
	return nil, formatErr(text, toType, strErr("no enum member named \""+text+"\""))
}

func enumToString(from any, _ reflect.Type) (any, error) {
	if from == nil {
		return nil, nil
	}
	e, ok := from.(Enum)
	if !ok {
		return nil, &AdapterNotFoundError{From: reflect.TypeOf(from), To: stringType}
	}
	return e.String(), nil
}
