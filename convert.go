// Copyright © 2025 tjj
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package adapt

import (
	"reflect"
)

func invalidResultErr(resType, toType reflect.Type) error {
	return strErr("invalid result: adapter returned <" + getTypeString(resType) + ">, want <" + getTypeString(toType) + ">")
}

// Cast 将类型F转为T，F、T 为静态类型
func Cast[F any, T any](from F) (to T, err error) {
	return CastWithRegistry[F, T](Default(), from)
}

// To 将任意值按其动态类型转为T
func To[T any](from any) (to T, err error) {
	return ToWithRegistry[T](Default(), from)
}

// GetAdapter 获取实例化的转换方法，调用返回的函数对比直接调用 Cast 少了查找的步骤
func GetAdapter[F any, T any]() (func(from F) (to T, err error), error) {
	return GetAdapterWithRegistry[F, T](Default())
}

// CastWithRegistry 将类型F转为T，F、T 为静态类型
func CastWithRegistry[F any, T any](r *Registry, from F) (to T, err error) {
	fromType, toType := typeFor[F](), typeFor[T]()
	fn, err := r.Lookup(fromType, toType)
	if err != nil {
		return to, err
	}
	return applyTyped[T](fn, from, fromType, toType)
}

// ToWithRegistry 将任意值按其动态类型转为T，from 为 nil 时无法确定类型，返回 TypeNotFoundErr
func ToWithRegistry[T any](r *Registry, from any) (to T, err error) {
	if from == nil {
		return to, TypeNotFoundErr
	}
	fromType, toType := reflect.TypeOf(from), typeFor[T]()
	fn, err := r.Lookup(fromType, toType)
	if err != nil {
		return to, err
	}
	return applyTyped[T](fn, from, fromType, toType)
}

// GetAdapterWithRegistry 获取实例化的转换方法，找不到时返回错误
func GetAdapterWithRegistry[F any, T any](r *Registry) (func(from F) (to T, err error), error) {
	fromType, toType := typeFor[F](), typeFor[T]()
	fn, err := r.Lookup(fromType, toType)
	if err != nil {
		return nil, err
	}
	return func(from F) (to T, err error) {
		return applyTyped[T](fn, from, fromType, toType)
	}, nil
}

// MustGetAdapterWithRegistry 同 GetAdapterWithRegistry，找不到时会 panic
func MustGetAdapterWithRegistry[F any, T any](r *Registry) func(from F) (to T, err error) {
	fn, err := GetAdapterWithRegistry[F, T](r)
	if err != nil {
		panic(err)
	}
	return fn
}

// Convert 按 from 的动态类型查找并调用转换函数。
// 指针形式的标量会先解引用，结果在 toType 为指针形式时重新取地址；没有值时返回 nil
func (r *Registry) Convert(from any, toType reflect.Type) (any, error) {
	if from == nil || toType == nil {
		return nil, TypeNotFoundErr
	}
	fromType := reflect.TypeOf(from)
	fn, err := r.Lookup(fromType, toType)
	if err != nil {
		return nil, err
	}
	return apply(fn, from, fromType, toType)
}

// ReflectConvert 以反射的方式，需输入待转换的值与要转换的类型
func ReflectConvert(r *Registry, from reflect.Value, toType reflect.Type) (reflect.Value, error) {
	if toType == nil {
		return reflect.Value{}, TypeNotFoundErr
	}
	if !from.IsValid() {
		return reflect.Zero(toType), nil
	}
	fromType := from.Type()
	fn, err := r.Lookup(fromType, toType)
	if err != nil {
		return reflect.Value{}, err
	}
	res, err := apply(fn, from.Interface(), fromType, toType)
	if err != nil {
		return reflect.Value{}, err
	}
	if res == nil {
		return reflect.Zero(toType), nil
	}
	v := reflect.ValueOf(res)
	if v.Type() != toType {
		return reflect.Value{}, invalidResultErr(v.Type(), toType)
	}
	return v, nil
}

func apply(fn Func, from any, fromType, toType reflect.Type) (any, error) {
	if fromType == toType {
		return from, nil
	}
	res, err := fn(unbox(from, fromType), Normalize(toType))
	if err != nil || res == nil {
		return nil, err
	}
	// 按指针形式注册的转换函数也会被值形式查到，结果统一先解引用
	if resType := reflect.TypeOf(res); resType != Normalize(resType) && Normalize(resType) == Normalize(toType) {
		res = unbox(res, resType)
	}
	return box(res, toType), nil
}

func applyTyped[T any](fn Func, from any, fromType, toType reflect.Type) (to T, err error) {
	res, err := apply(fn, from, fromType, toType)
	if err != nil || res == nil {
		return to, err
	}
	to, ok := res.(T)
	if !ok {
		return to, invalidResultErr(reflect.TypeOf(res), toType)
	}
	return to, nil
}

// unbox 对指针形式的标量解引用，nil 指针视为没有值
func unbox(from any, fromType reflect.Type) any {
	if Normalize(fromType) == fromType {
		return from
	}
	v := reflect.ValueOf(from)
	if v.IsNil() {
		return nil
	}
	return v.Elem().Interface()
}

// box 在目标为指针形式的标量时，为结果分配新的地址
func box(res any, toType reflect.Type) any {
	if res == nil || Normalize(toType) == toType {
		return res
	}
	v := reflect.ValueOf(res)
	if v.Type() != toType.Elem() {
		return res
	}
	ptr := reflect.New(toType.Elem())
	ptr.Elem().Set(v)
	return ptr.Interface()
}
