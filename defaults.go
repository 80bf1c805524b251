// Copyright © 2025 tjj
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package adapt

import (
	"reflect"
)

func adapter(fromType, toType reflect.Type, fn Func) adapterValue {
	return adapterValue{from: fromType, to: toType, fn: fn}
}

// defaultAdapters 默认的转换器：文本转标量、日期、枚举，以及标量转回文本
func defaultAdapters(r *Registry) []adapterValue {
	return []adapterValue{
		adapter(stringType, boolType, stringToBool),
		adapter(stringType, int8Type, stringToSigned[int8]),
		adapter(stringType, int16Type, stringToSigned[int16]),
		adapter(stringType, int32Type, stringToSigned[int32]),
		adapter(stringType, int64Type, stringToSigned[int64]),
		adapter(stringType, intType, stringToSigned[int]),
		adapter(stringType, uint8Type, stringToUnsigned[uint8]),
		adapter(stringType, uint16Type, stringToUnsigned[uint16]),
		adapter(stringType, uint32Type, stringToUnsigned[uint32]),
		adapter(stringType, uint64Type, stringToUnsigned[uint64]),
		adapter(stringType, uintType, stringToUnsigned[uint]),
		adapter(stringType, float32Type, stringToFloat[float32]),
		adapter(stringType, float64Type, stringToFloat[float64]),
		adapter(stringType, charType, stringToChar),
		adapter(stringType, timeType, r.stringToDate),
		adapter(stringType, durationType, stringToDuration),
		adapter(stringType, uuidType, stringToUUID),
		adapter(stringType, EnumType, stringToEnum),

		adapter(boolType, stringType, scalarToString),
		adapter(int8Type, stringType, scalarToString),
		adapter(int16Type, stringType, scalarToString),
		adapter(int32Type, stringType, scalarToString),
		adapter(int64Type, stringType, scalarToString),
		adapter(intType, stringType, scalarToString),
		adapter(uint8Type, stringType, scalarToString),
		adapter(uint16Type, stringType, scalarToString),
		adapter(uint32Type, stringType, scalarToString),
		adapter(uint64Type, stringType, scalarToString),
		adapter(uintType, stringType, scalarToString),
		adapter(float32Type, stringType, scalarToString),
		adapter(float64Type, stringType, scalarToString),
		adapter(charType, stringType, scalarToString),
		adapter(durationType, stringType, scalarToString),
		adapter(uuidType, stringType, scalarToString),
		adapter(timeType, stringType, timeToString),
		adapter(EnumType, stringType, enumToString),
	}
}
