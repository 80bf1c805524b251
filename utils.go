// Copyright © 2025 tjj
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package adapt

import (
	"reflect"
	"unsafe"
)

func typeFor[T any]() reflect.Type {
	var v T
	if t := reflect.TypeOf(v); t != nil {
		return t // optimize for T being a non-interface kind
	}
	return reflect.TypeOf((*T)(nil)).Elem() // only for an interface kind
}

// typePtr 取 reflect.Type 底层的 *rtype 指针，作为 map 的 key 比接口比较更快
func typePtr(t reflect.Type) unsafe.Pointer {
	return noEscape((*eface)(unsafe.Pointer(&t)).ptr)
}

type eface struct {
	typ unsafe.Pointer
	ptr unsafe.Pointer
}

//go:nosplit
func noEscape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}
