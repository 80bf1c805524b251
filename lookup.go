// Copyright © 2025 tjj
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package adapt

import (
	"log/slog"
	"reflect"
	"unsafe"
)

type pairKey struct {
	fromTypePtr unsafe.Pointer
	toTypePtr   unsafe.Pointer
}

func newPairKey(fromType, toType reflect.Type) pairKey {
	return pairKey{fromTypePtr: typePtr(fromType), toTypePtr: typePtr(toType)}
}

type adapterValue struct {
	from reflect.Type
	to   reflect.Type
	fn   Func // 为 nil 时表示禁止转换
}

type resolution struct {
	generation uint64
	fn         Func
	err        error
}

// 指针形式的标量类型与值类型共用一个转换函数，只读，不需要加锁
var pointerToValueMap = map[reflect.Type]reflect.Type{
	typeFor[*bool]():     boolType,
	typeFor[*int8]():     int8Type,
	typeFor[*int16]():    int16Type,
	typeFor[*int32]():    int32Type,
	typeFor[*int64]():    int64Type,
	typeFor[*int]():      intType,
	typeFor[*uint8]():    uint8Type,
	typeFor[*uint16]():   uint16Type,
	typeFor[*uint32]():   uint32Type,
	typeFor[*uint64]():   uint64Type,
	typeFor[*uint]():     uintType,
	typeFor[*float32]():  float32Type,
	typeFor[*float64]():  float64Type,
	typeFor[*string]():   stringType,
	typeFor[*Char]():     charType,
	typeFor[*struct{}](): typeFor[struct{}](),
}

// Normalize 将指针形式的标量类型（如 *int）规整为值类型（int），其余类型原样返回
func Normalize(typ reflect.Type) reflect.Type {
	if v, ok := pointerToValueMap[typ]; ok {
		return v
	}
	return typ
}

// Lookup 查找 fromType 到 toType 的转换函数。
// 依次尝试：相同类型、精确匹配、将枚举类型泛化为 EnumType 后再匹配
func (r *Registry) Lookup(fromType, toType reflect.Type) (Func, error) {
	if fromType == nil || toType == nil {
		return nil, TypeNotFoundErr
	}
	key := newPairKey(fromType, toType)
	gen := r.generation.Load()
	if v, ok := r.resolved.Load(key); ok {
		if res := v.(*resolution); res.generation == gen {
			return res.fn, res.err
		}
	}
	fn, err := r.resolve(fromType, toType)
	r.resolved.Store(key, &resolution{generation: gen, fn: fn, err: err})
	if err != nil {
		r.logger.Debug("adapter not found",
			slog.String("from", fromType.String()),
			slog.String("to", toType.String()))
	}
	return fn, err
}

func (r *Registry) resolve(fromType, toType reflect.Type) (Func, error) {
	from, to := Normalize(fromType), Normalize(toType)
	if from == to {
		return Identity, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if v, ok := r.adapterMap[newPairKey(from, to)]; ok {
		if v.fn == nil {
			return nil, &AdapterNotFoundError{From: fromType, To: toType}
		}
		return v.fn, nil
	}
	genericFrom, genericTo := from, to
	if IsEnum(genericFrom) {
		genericFrom = EnumType
	}
	if IsEnum(genericTo) {
		genericTo = EnumType
	}
	if genericFrom != from || genericTo != to {
		if v, ok := r.adapterMap[newPairKey(genericFrom, genericTo)]; ok && v.fn != nil {
			return v.fn, nil
		}
	}
	return nil, &AdapterNotFoundError{From: fromType, To: toType}
}

// Identity 类型相同时使用的转换函数，原样返回
func Identity(from any, _ reflect.Type) (any, error) {
	return from, nil
}
